package codec

import (
	"strconv"
	"time"
)

func init() {
	Register[string](Func[string]{
		EncodeFunc: func(value string) (string, bool) { return value, true },
		DecodeFunc: func(s string) (string, bool) { return s, true },
	})

	Register[bool](Func[bool]{
		EncodeFunc: func(value bool) (string, bool) { return strconv.FormatBool(value), true },
		DecodeFunc: func(s string) (bool, bool) {
			b, err := strconv.ParseBool(s)

			return b, err == nil
		},
	})

	Register[int](intCodec[int](strconv.IntSize))
	Register[int8](intCodec[int8](8))
	Register[int16](intCodec[int16](16))
	Register[int32](intCodec[int32](32))
	Register[int64](intCodec[int64](64))

	Register[uint](uintCodec[uint](strconv.IntSize))
	Register[uint8](uintCodec[uint8](8))
	Register[uint16](uintCodec[uint16](16))
	Register[uint32](uintCodec[uint32](32))
	Register[uint64](uintCodec[uint64](64))

	Register[float32](floatCodec[float32](32))
	Register[float64](floatCodec[float64](64))

	Register[time.Duration](Func[time.Duration]{
		EncodeFunc: func(value time.Duration) (string, bool) { return value.String(), true },
		DecodeFunc: func(s string) (time.Duration, bool) {
			d, err := time.ParseDuration(s)

			return d, err == nil
		},
	})

	Register[time.Time](Func[time.Time]{
		EncodeFunc: func(value time.Time) (string, bool) { return value.Format(time.RFC3339Nano), true },
		DecodeFunc: func(s string) (time.Time, bool) {
			t, err := time.Parse(time.RFC3339Nano, s)

			return t, err == nil
		},
	})
}

func intCodec[T int | int8 | int16 | int32 | int64](bits int) Func[T] {
	return Func[T]{
		EncodeFunc: func(value T) (string, bool) {
			return strconv.FormatInt(int64(value), 10), true
		},
		DecodeFunc: func(s string) (T, bool) {
			i, err := strconv.ParseInt(s, 10, bits)

			return T(i), err == nil
		},
	}
}

func uintCodec[T uint | uint8 | uint16 | uint32 | uint64](bits int) Func[T] {
	return Func[T]{
		EncodeFunc: func(value T) (string, bool) {
			return strconv.FormatUint(uint64(value), 10), true
		},
		DecodeFunc: func(s string) (T, bool) {
			u, err := strconv.ParseUint(s, 10, bits)

			return T(u), err == nil
		},
	}
}

func floatCodec[T float32 | float64](bits int) Func[T] {
	return Func[T]{
		EncodeFunc: func(value T) (string, bool) {
			return strconv.FormatFloat(float64(value), 'g', -1, bits), true
		},
		DecodeFunc: func(s string) (T, bool) {
			f, err := strconv.ParseFloat(s, bits)

			return T(f), err == nil
		},
	}
}
