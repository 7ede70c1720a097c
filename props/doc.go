// Package props implements a thread-safe property store addressed by
// dotted paths.
//
// A store is a single flat table mapping full paths to records, kept
// in ascending lexicographic order of the path. The hierarchy implied
// by the dots is not materialized anywhere: "a.b" names a record of
// its own and, at the same time, acts as the root of the subtree
// containing every path that extends it.
//
//	- ""            (the root record)
//	- net           "on"
//	- net.retries   "3"
//	- net.timeout   "2s"
//	- owner.name    "dotterel"
//
// Views are how the table is read and written. A view is a cheap
// value pairing a store with a root path, and every path passed to a
// view is interpreted relative to that root, so a component handed a
// view of "net" reads "timeout" without knowing where its subtree
// is mounted. Views come in a read-only and a read-write flavor and
// navigating from one view to another never touches the table.
//
// Each view also carries an identity path: a logical name for the
// subtree, independent of where it is stored, for callers that reuse
// one path shape for many logical instances. The identity never
// affects which records are touched. Navigation extends path and
// identity independently.
//
// Records are soft state. Setting a value defines the record,
// undefining it keeps the record in the table with its last value
// and provenance but marks it undefined, and reading a path that was
// never written materializes an undefined record there. Typed access
// goes through the codecs registered in the codec package; the only
// operation that returns an error is Get, which distinguishes a
// property that is not defined from one whose value does not parse.
//
// A single mutex guards the table. Every view operation locks it for
// the duration of that operation only, so concurrent reads and
// writes through any number of views are safe, while sequences of
// operations that must be atomic need coordination above the store.
package props
