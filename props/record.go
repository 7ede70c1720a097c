package props

import (
	"github.com/dotterel/dotterel/props/codec"
)

// InvalidValue is stored by typed writes whose value could not be
// encoded. The record still becomes defined so the failed write
// stays visible to readers and in listings.
const InvalidValue = "<invalid>"

// Origin describes where a property value came from, such as the
// file, flag or expression that produced it. It is carried along
// with the value but never interpreted by the store.
type Origin struct {
	// Source names the producer of the value
	Source string
	// Detail locates the value within the source
	Detail string
}

// Record is a single entry of a property table: a string value, a
// flag telling whether the value is currently defined and the origin
// of the value. The zero value is an undefined record.
//
// Undefining a record is soft: the last value and origin remain
// readable for diagnostics until the next store.
type Record struct {
	value   string
	defined bool
	origin  Origin
}

// Value returns the stored string form of the record, which may be
// stale if the record is undefined.
func (record Record) Value() string {
	return record.value
}

// Defined reports whether the record currently holds a value.
func (record Record) Defined() bool {
	return record.defined
}

// Origin returns the provenance attached to the record.
func (record Record) Origin() Origin {
	return record.origin
}

// SetValue stores value and defines the record. The origin is left
// as it was.
func (record *Record) SetValue(value string) {
	record.value = value
	record.defined = true
}

// SetValueOrigin stores value along with its provenance and defines
// the record.
func (record *Record) SetValueOrigin(value string, origin Origin) {
	record.value = value
	record.defined = true
	record.origin = origin
}

// Undefine marks the record undefined without clearing the value or
// the origin.
func (record *Record) Undefine() {
	record.defined = false
}

// GetAs decodes the record's value as a T. It returns the zero value
// and false when the record is undefined or when the value cannot be
// decoded.
func GetAs[T any](record Record) (T, bool) {
	if !record.defined {
		var zero T

		return zero, false
	}

	return codec.Decode[T](record.value)
}

// SetAs encodes value into the record and defines it. A value that
// cannot be encoded is stored as InvalidValue.
func SetAs[T any](record *Record, value T) {
	record.SetValue(encode[T](value))
}

func encode[T any](value T) string {
	s, ok := codec.Encode[T](value)

	if !ok {
		return InvalidValue
	}

	return s
}
