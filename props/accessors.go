package props

import (
	"github.com/dotterel/dotterel/props/paths"
	"go.uber.org/zap"
)

var _ Viewer = View{}
var _ Viewer = RWView{}

// Viewer is the read surface the typed accessors are built on,
// satisfied by View and RWView alike.
type Viewer interface {
	// Record returns a copy of the record at path relative to the view
	Record(path string) Record
	// Path returns the view's root path within the store
	Path() string
}

// Get returns the value at path relative to view, decoded as a T.
// It is the only accessor that fails: the error is an *Error whose
// kind tells a property that is not defined apart from one whose
// value does not decode, and whose Path names the property in full.
func Get[T any](view Viewer, path string) (T, error) {
	record := view.Record(path)

	var zero T

	if !record.Defined() {
		return zero, &Error{Path: paths.Join(view.Path(), path), Err: ErrUndefined}
	}

	value, ok := GetAs[T](record)

	if !ok {
		return zero, &Error{Path: paths.Join(view.Path(), path), Err: ErrBadFormat}
	}

	return value, nil
}

// GetDefault returns the value at path relative to view decoded as a
// T, or def when the property is undefined or its value does not
// decode.
func GetDefault[T any](view Viewer, path string, def T) T {
	value, ok := GetAs[T](view.Record(path))

	if !ok {
		return def
	}

	return value
}

// GetOptional returns the value at path relative to view decoded as
// a T. ok reports whether a value decoded, defined whether the
// record held one at all, which tells a missing property apart from
// a malformed one.
func GetOptional[T any](view Viewer, path string) (value T, defined bool, ok bool) {
	record := view.Record(path)

	value, ok = GetAs[T](record)

	return value, record.Defined(), ok
}

// GetValue returns the value of the property at the view's own path
// decoded as a T. It returns false when the property is undefined or
// its value does not decode.
func GetValue[T any](view Viewer) (T, bool) {
	return GetAs[T](view.Record(""))
}

// GetValueDefault is GetDefault for the property at the view's own
// path.
func GetValueDefault[T any](view Viewer, def T) T {
	return GetDefault[T](view, "", def)
}

// Set encodes value and stores it at path relative to view. It never
// fails: a value that cannot be encoded is stored as InvalidValue,
// leaving the property defined so the bad write is visible to the
// next read. Provenance already attached to the record is retained;
// SetRecord replaces it.
func Set[T any](view RWView, path string, value T) {
	store := view.owner
	full := paths.Join(view.path, path)

	store.mu.Lock()
	defer store.mu.Unlock()

	record := store.record(full, true)

	SetAs[T](record, value)

	store.logger.Debug("set",
		zap.String("path", full),
		zap.String("id", paths.Join(view.id, path)),
		zap.String("value", record.Value()))
}

// SetValue is Set for the property at the view's own path.
func SetValue[T any](view RWView, value T) {
	Set[T](view, "", value)
}
