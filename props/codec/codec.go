// Package codec converts typed values to and from the string form
// stored in a property table. Codecs for the common scalar types are
// registered by default and packages can register their own with
// Register.
package codec

import (
	"reflect"
	"sync"
)

// Codec converts values of a single type to and from their string
// form. Implementations report failure through the boolean result
// instead of an error: a decode that fails yields the zero value
// and false, an encode that fails yields "" and false.
type Codec[T any] interface {
	// Encode returns the string form of value
	Encode(value T) (string, bool)
	// Decode parses s back into a value
	Decode(s string) (T, bool)
}

// Func adapts a pair of conversion functions
// to the Codec interface
type Func[T any] struct {
	EncodeFunc func(value T) (string, bool)
	DecodeFunc func(s string) (T, bool)
}

// Encode implements Codec.Encode
func (f Func[T]) Encode(value T) (string, bool) {
	return f.EncodeFunc(value)
}

// Decode implements Codec.Decode
func (f Func[T]) Decode(s string) (T, bool) {
	return f.DecodeFunc(s)
}

var registry = struct {
	sync.RWMutex
	codecs map[reflect.Type]interface{}
}{codecs: map[reflect.Type]interface{}{}}

// Register binds c as the process-wide codec for T, replacing any
// codec previously registered for T. Registration usually happens
// from init functions, before stores are shared between goroutines.
func Register[T any](c Codec[T]) {
	registry.Lock()
	defer registry.Unlock()

	registry.codecs[reflect.TypeFor[T]()] = c
}

// For returns the codec registered for T. It returns
// false when no codec was registered for T.
func For[T any]() (Codec[T], bool) {
	registry.RLock()
	defer registry.RUnlock()

	c, ok := registry.codecs[reflect.TypeFor[T]()]

	if !ok {
		return nil, false
	}

	return c.(Codec[T]), true
}

// Encode converts value to its string form using the codec
// registered for T. It returns false when no codec is registered
// for T or when that codec cannot encode value.
func Encode[T any](value T) (string, bool) {
	c, ok := For[T]()

	if !ok {
		return "", false
	}

	return c.Encode(value)
}

// Decode parses s using the codec registered for T. It returns the
// zero value and false when no codec is registered for T or when
// that codec cannot decode s.
func Decode[T any](s string) (T, bool) {
	c, ok := For[T]()

	if !ok {
		var zero T

		return zero, false
	}

	return c.Decode(s)
}
