package gen

import (
	"github.com/dotterel/dotterel/props/model"
	"github.com/dotterel/dotterel/props/paths"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/leanovate/gopter/gen"
)

// Commands returns a generator that generates a range of store
// commands covering every operation.
func Commands(storeModel *model.StoreModel) gopter.Gen {
	return gen.OneGenOf(
		SetCommand(),
		SetInt64Command(),
		SetRecordCommand(),
		UndefineCommand(),
		ClearCommand(),
		RecordCommand(),
		GetInt64Command(),
		ListKeysRecursiveCommand(),
		ListKeysCommand(),
		LenCommand(),
	)
}

// Path returns a generator that generates property paths out of a
// small set of segments, so that generated operations frequently
// collide and nest. "al" shares a byte prefix with "alpha" without
// being an ancestor of it.
func Path() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("", "alpha", "beta", "al"),
		gen.OneConstOf("", "x", "y", "x.y"),
	).Map(func(values []interface{}) string {
		return paths.Join(values[0].(string), values[1].(string))
	})
}

// Value returns a generator that generates property values, some of
// which parse as int64 and some of which do not.
func Value() gopter.Gen {
	return gen.OneConstOf("", "0", "17", "-3", "true", "not a number", "9999999999999999999")
}

// SetCommand returns a generator that generates string set commands
func SetCommand() gopter.Gen {
	return gopter.CombineGens(Path(), Value()).Map(func(values []interface{}) commands.Command {
		return setCommand{path: values[0].(string), value: values[1].(string)}
	})
}

// SetInt64Command returns a generator that generates typed set
// commands exercising the codec path
func SetInt64Command() gopter.Gen {
	return gopter.CombineGens(Path(), gen.Int64()).Map(func(values []interface{}) commands.Command {
		return setInt64Command{path: values[0].(string), value: values[1].(int64)}
	})
}

// SetRecordCommand returns a generator that generates whole-record
// overwrite commands, defined and undefined alike
func SetRecordCommand() gopter.Gen {
	return gopter.CombineGens(
		Path(),
		Value(),
		gen.Bool(),
		gen.OneConstOf("", "conf", "flags"),
		gen.OneConstOf("", "line 1", "line 2"),
	).Map(func(values []interface{}) commands.Command {
		return setRecordCommand{
			path: values[0].(string),
			record: model.RecordModel{
				Value:   values[1].(string),
				Defined: values[2].(bool),
				Source:  values[3].(string),
				Detail:  values[4].(string),
			},
		}
	})
}

// UndefineCommand returns a generator that generates undefine
// commands
func UndefineCommand() gopter.Gen {
	return gopter.CombineGens(Path()).Map(func(values []interface{}) commands.Command {
		return undefineCommand{path: values[0].(string)}
	})
}

// ClearCommand returns a generator that generates clear commands
func ClearCommand() gopter.Gen {
	return gopter.CombineGens().Map(func([]interface{}) commands.Command {
		return clearCommand{}
	})
}

// RecordCommand returns a generator that generates record read
// commands, which also exercise read materialization
func RecordCommand() gopter.Gen {
	return gopter.CombineGens(Path()).Map(func(values []interface{}) commands.Command {
		return recordCommand{path: values[0].(string)}
	})
}

// GetInt64Command returns a generator that generates typed read
// commands exercising the error taxonomy
func GetInt64Command() gopter.Gen {
	return gopter.CombineGens(Path()).Map(func(values []interface{}) commands.Command {
		return getInt64Command{path: values[0].(string)}
	})
}

// ListKeysRecursiveCommand returns a generator that generates
// subtree enumeration commands
func ListKeysRecursiveCommand() gopter.Gen {
	return gopter.CombineGens(Path(), gen.Bool()).Map(func(values []interface{}) commands.Command {
		return listKeysRecursiveCommand{root: values[0].(string), withUndefined: values[1].(bool)}
	})
}

// ListKeysCommand returns a generator that generates immediate-child
// enumeration commands
func ListKeysCommand() gopter.Gen {
	return gopter.CombineGens(Path(), gen.Bool()).Map(func(values []interface{}) commands.Command {
		return listKeysCommand{root: values[0].(string), withUndefined: values[1].(bool)}
	})
}

// LenCommand returns a generator that generates record count
// commands
func LenCommand() gopter.Gen {
	return gopter.CombineGens().Map(func([]interface{}) commands.Command {
		return lenCommand{}
	})
}
