package props

import (
	"strings"

	"github.com/dotterel/dotterel/props/paths"
	"go.uber.org/zap"
)

// View is a read-only window onto the subtree of a store rooted at a
// fixed path. Every path passed to a view method is interpreted
// relative to that root. Views are cheap values holding no data of
// their own: copying one or navigating to another never touches the
// table, and every method locks the owning store only for the
// duration of the call.
//
// The zero value is a detached view. It has no owner and its methods
// other than Path, ID and HasOwner panic.
type View struct {
	owner *Store
	path  string
	id    string
}

// Path returns the view's root path within the store.
func (view View) Path() string {
	return view.path
}

// ID returns the view's identity path: the logical name of the
// subtree, independent of the path records are stored under.
func (view View) ID() string {
	return view.id
}

// HasOwner reports whether the view is attached to a store.
func (view View) HasOwner() bool {
	return view.owner != nil
}

// Subtree returns a view of the subtree at path relative to this
// view. The identity path is left unchanged.
func (view View) Subtree(path string) View {
	return View{owner: view.owner, path: paths.Join(view.path, path), id: view.id}
}

// SubtreeForID is like Subtree except it also extends the identity
// path with subID. It is how a structurally-indexed region, like an
// array slot, descends while picking up a logical name distinct from
// its path.
func (view View) SubtreeForID(path, subID string) View {
	return View{owner: view.owner, path: paths.Join(view.path, path), id: paths.Join(view.id, subID)}
}

// WithID returns a view of the same subtree whose identity path is
// extended with subID.
func (view View) WithID(subID string) View {
	return View{owner: view.owner, path: view.path, id: paths.Join(view.id, subID)}
}

// Record returns a copy of the record at path relative to the view.
// Reading a path nothing was ever stored at yields an undefined
// record and, unless the store disables it, materializes the record
// in the table.
func (view View) Record(path string) Record {
	store := view.owner

	store.mu.Lock()
	defer store.mu.Unlock()

	return *store.record(paths.Join(view.path, path), false)
}

// ListKeysRecursive returns the paths of the properties in the
// view's subtree, relative to the view's root and in ascending
// order of their full path. The view's own record contributes the
// empty path. Undefined records are skipped unless withUndefined
// is set.
func (view View) ListKeysRecursive(withUndefined bool) []string {
	store := view.owner

	store.mu.Lock()
	defer store.mu.Unlock()

	keys := []string{}
	iter := store.table.Iterator()

	// Seek
	hasMore := false
	for hasMore = iter.Next(); hasMore && iter.Key().(string) < view.path; hasMore = iter.Next() {
	}

	for ; hasMore; hasMore = iter.Next() {
		key := iter.Key().(string)

		rel, ok := paths.InSubtree(key, view.path)

		if !ok {
			// keys sharing a byte prefix with the root, like "ab"
			// under "a", sort within the subtree's key range without
			// belonging to it
			if !strings.HasPrefix(key, view.path) {
				break
			}

			continue
		}

		if !withUndefined && !iter.Value().(*Record).Defined() {
			continue
		}

		keys = append(keys, rel)
	}

	return keys
}

// ListKeys returns the first segments of the paths returned by
// ListKeysRecursive with consecutive duplicates collapsed, so each
// immediate child of the view's root is named once. The view's own
// record contributes an empty segment.
func (view View) ListKeys(withUndefined bool) []string {
	keys := []string{}

	for _, key := range view.ListKeysRecursive(withUndefined) {
		child := paths.First(key)

		if len(keys) > 0 && keys[len(keys)-1] == child {
			continue
		}

		keys = append(keys, child)
	}

	return keys
}

// RWView is a read-write View. Its navigation methods return
// read-write views of the same store, so write capability flows
// from the root view it was derived from; discard it by using the
// embedded View.
type RWView struct {
	View
}

// Subtree returns a read-write view of the subtree at path relative
// to this view.
func (view RWView) Subtree(path string) RWView {
	return RWView{view.View.Subtree(path)}
}

// SubtreeForID is like Subtree except it also extends the identity
// path with subID.
func (view RWView) SubtreeForID(path, subID string) RWView {
	return RWView{view.View.SubtreeForID(path, subID)}
}

// WithID returns a read-write view of the same subtree whose
// identity path is extended with subID.
func (view RWView) WithID(subID string) RWView {
	return RWView{view.View.WithID(subID)}
}

// SetRecord replaces the whole record at path relative to the view,
// value, defined flag and origin alike.
func (view RWView) SetRecord(path string, record Record) {
	store := view.owner
	full := paths.Join(view.path, path)

	store.mu.Lock()
	defer store.mu.Unlock()

	*store.record(full, true) = record

	store.logger.Debug("set record",
		zap.String("path", full),
		zap.String("id", paths.Join(view.id, path)),
		zap.Bool("defined", record.Defined()))
}

// Undefine marks the record at path relative to the view undefined.
// The record stays in the table and keeps its last value and origin
// until the next store.
func (view RWView) Undefine(path string) {
	store := view.owner
	full := paths.Join(view.path, path)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.record(full, true).Undefine()

	store.logger.Debug("undefine",
		zap.String("path", full),
		zap.String("id", paths.Join(view.id, path)))
}
