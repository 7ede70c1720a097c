package props

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefined indicates that a property holds no value, either
	// because nothing was ever stored at its path or because the
	// record was undefined.
	ErrUndefined = errors.New("property is not defined")
	// ErrBadFormat indicates that a property holds a value that could
	// not be decoded as the requested type.
	ErrBadFormat = errors.New("property has a bad format")
)

// Error is the error returned by typed reads. Path is the fully
// qualified path of the property within the store, joined from the
// view's root, so that callers far above the store can still name
// the property that failed.
type Error struct {
	Path string
	Err  error
}

// Error implements error.Error
func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.Err, err.Path)
}

// Unwrap exposes the error kind, ErrUndefined or ErrBadFormat,
// to errors.Is.
func (err *Error) Unwrap() error {
	return err.Err
}
