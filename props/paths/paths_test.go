package paths_test

import (
	"testing"

	"github.com/dotterel/dotterel/props/paths"
	"github.com/google/go-cmp/cmp"
)

func TestJoin(t *testing.T) {
	testCases := map[string]struct {
		a      string
		b      string
		result string
	}{
		"both-empty": {
			a:      "",
			b:      "",
			result: "",
		},
		"left-empty": {
			a:      "",
			b:      "owner.timeout",
			result: "owner.timeout",
		},
		"right-empty": {
			a:      "owner.timeout",
			b:      "",
			result: "owner.timeout",
		},
		"simple": {
			a:      "owner",
			b:      "timeout",
			result: "owner.timeout",
		},
		"nested": {
			a:      "net.server",
			b:      "listen.port",
			result: "net.server.listen.port",
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			diff := cmp.Diff(testCase.result, paths.Join(testCase.a, testCase.b))

			if diff != "" {
				t.Fatalf(diff)
			}
		})
	}
}

func TestIsSimple(t *testing.T) {
	testCases := map[string]struct {
		p      string
		result bool
	}{
		"empty": {
			p:      "",
			result: false,
		},
		"simple": {
			p:      "timeout",
			result: true,
		},
		"nested": {
			p:      "owner.timeout",
			result: false,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			diff := cmp.Diff(testCase.result, paths.IsSimple(testCase.p))

			if diff != "" {
				t.Fatalf(diff)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	testCases := map[string]struct {
		p      string
		result string
	}{
		"empty": {
			p:      "",
			result: "",
		},
		"simple": {
			p:      "timeout",
			result: "timeout",
		},
		"nested": {
			p:      "owner.timeout.ms",
			result: "owner",
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			diff := cmp.Diff(testCase.result, paths.First(testCase.p))

			if diff != "" {
				t.Fatalf(diff)
			}
		})
	}
}

func TestInSubtree(t *testing.T) {
	testCases := map[string]struct {
		key  string
		root string
		rel  string
		ok   bool
	}{
		"root-itself": {
			key:  "a",
			root: "a",
			rel:  "",
			ok:   true,
		},
		"child": {
			key:  "a.b",
			root: "a",
			rel:  "b",
			ok:   true,
		},
		"descendant": {
			key:  "a.b.c",
			root: "a",
			rel:  "b.c",
			ok:   true,
		},
		"sibling": {
			key:  "b",
			root: "a",
			rel:  "",
			ok:   false,
		},
		"shared-byte-prefix": {
			key:  "ab.c",
			root: "a",
			rel:  "",
			ok:   false,
		},
		"empty-root-contains-all": {
			key:  "a.b",
			root: "",
			rel:  "a.b",
			ok:   true,
		},
		"empty-root-empty-key": {
			key:  "",
			root: "",
			rel:  "",
			ok:   true,
		},
		"key-above-root": {
			key:  "a",
			root: "a.b",
			rel:  "",
			ok:   false,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			rel, ok := paths.InSubtree(testCase.key, testCase.root)

			diff := cmp.Diff(testCase.rel, rel)

			if diff != "" {
				t.Fatalf(diff)
			}

			if ok != testCase.ok {
				t.Fatalf("expected ok to be %t, got %t", testCase.ok, ok)
			}
		})
	}
}
