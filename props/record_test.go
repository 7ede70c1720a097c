package props_test

import (
	"testing"

	"github.com/dotterel/dotterel/props"
	"github.com/google/go-cmp/cmp"
)

// recordState flattens a record into exported fields so tests can
// diff whole records with cmp.
type recordState struct {
	Value   string
	Defined bool
	Origin  props.Origin
}

func stateOf(record props.Record) recordState {
	return recordState{
		Value:   record.Value(),
		Defined: record.Defined(),
		Origin:  record.Origin(),
	}
}

func TestRecordZeroValue(t *testing.T) {
	var record props.Record

	diff := cmp.Diff(recordState{}, stateOf(record))

	if diff != "" {
		t.Fatalf(diff)
	}
}

func TestRecordSetValue(t *testing.T) {
	var record props.Record

	record.SetValueOrigin("8080", props.Origin{Source: "flags", Detail: "--port"})
	record.SetValue("9090")

	diff := cmp.Diff(recordState{
		Value:   "9090",
		Defined: true,
		Origin:  props.Origin{Source: "flags", Detail: "--port"},
	}, stateOf(record))

	if diff != "" {
		t.Fatalf(diff)
	}
}

func TestRecordUndefine(t *testing.T) {
	var record props.Record

	record.SetValueOrigin("8080", props.Origin{Source: "conf", Detail: "net.port"})
	record.Undefine()

	// soft delete: the last value and origin stay readable
	diff := cmp.Diff(recordState{
		Value:   "8080",
		Defined: false,
		Origin:  props.Origin{Source: "conf", Detail: "net.port"},
	}, stateOf(record))

	if diff != "" {
		t.Fatalf(diff)
	}
}

func TestRecordGetAs(t *testing.T) {
	defined := func(value string) props.Record {
		var record props.Record

		record.SetValue(value)

		return record
	}

	type result struct {
		Value int
		OK    bool
	}

	testCases := map[string]struct {
		record props.Record
		result result
	}{
		"undefined": {
			record: props.Record{},
			result: result{0, false},
		},
		"defined-good": {
			record: defined("42"),
			result: result{42, true},
		},
		"defined-malformed": {
			record: defined("forty-two"),
			result: result{0, false},
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			value, ok := props.GetAs[int](testCase.record)

			diff := cmp.Diff(testCase.result, result{value, ok})

			if diff != "" {
				t.Fatalf(diff)
			}
		})
	}
}

func TestRecordSetAs(t *testing.T) {
	var record props.Record

	record.SetValueOrigin("old", props.Origin{Source: "conf"})

	props.SetAs[int](&record, 42)

	diff := cmp.Diff(recordState{
		Value:   "42",
		Defined: true,
		Origin:  props.Origin{Source: "conf"},
	}, stateOf(record))

	if diff != "" {
		t.Fatalf(diff)
	}
}

func TestRecordSetAsEncodeFailure(t *testing.T) {
	type unregistered struct{ a int }

	var record props.Record

	props.SetAs[unregistered](&record, unregistered{})

	// a failed encode still defines the record so the bad write is
	// visible on the next read
	diff := cmp.Diff(recordState{
		Value:   props.InvalidValue,
		Defined: true,
	}, stateOf(record))

	if diff != "" {
		t.Fatalf(diff)
	}
}
