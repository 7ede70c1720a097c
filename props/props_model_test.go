package props_test

import (
	"testing"

	"github.com/dotterel/dotterel/props"
	"github.com/dotterel/dotterel/props/model"
	command_gen "github.com/dotterel/dotterel/props/model/gen"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
)

// TestStoreSystem drives random command sequences against a real
// store and the model side by side, diffing all observable state
// after every mutation.
func TestStoreSystem(t *testing.T) {
	var cbCommands = &commands.ProtoCommands{
		NewSystemUnderTestFunc: func(initialState commands.State) commands.SystemUnderTest {
			return props.New(props.StoreConfig{})
		},
		InitialStateGen: gopter.CombineGens().Map(func([]interface{}) *model.StoreModel {
			return model.NewStoreModel()
		}),
		InitialPreConditionFunc: func(state commands.State) bool {
			return true
		},
		GenCommandFunc: func(state commands.State) gopter.Gen {
			return command_gen.Commands(state.(*model.StoreModel))
		},
	}

	parameters := gopter.DefaultTestParametersWithSeed(1234)
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	properties.Property("", commands.Prop(cbCommands))
	properties.TestingRun(t)
}
