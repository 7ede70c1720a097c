// Package paths implements the dotted path algebra used to address
// properties within a store.
package paths

import (
	"strings"
)

// Separator delimits the segments of a property path.
const Separator = "."

// Join concatenates two property paths. An empty
// path on either side yields the other path, so
// Join(p, "") == Join("", p) == p and no separator
// is ever introduced next to an empty path.
func Join(a, b string) string {
	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	return a + Separator + b
}

// IsSimple reports whether p is a single
// path segment: non-empty and free of the
// separator.
func IsSimple(p string) bool {
	return p != "" && !strings.Contains(p, Separator)
}

// First returns the first segment of p. A path
// without a separator is its own first segment.
func First(p string) string {
	if i := strings.Index(p, Separator); i >= 0 {
		return p[:i]
	}

	return p
}

// InSubtree reports whether key belongs to the subtree rooted at
// root and returns key relative to root. The subtree contains root
// itself, whose relative path is "", and every key that extends root
// by whole segments. A key that merely shares a byte prefix with
// root, like "ab.c" against root "a", is not part of the subtree.
// An empty root contains every key.
func InSubtree(key, root string) (string, bool) {
	if root == "" {
		return key, true
	}

	if key == root {
		return "", true
	}

	if strings.HasPrefix(key, root+Separator) {
		return key[len(root)+len(Separator):], true
	}

	return "", false
}
