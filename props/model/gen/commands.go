package gen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dotterel/dotterel/props"
	"github.com/dotterel/dotterel/props/model"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
)

func storeModelPostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	diff := StoreModelDiff(result.(*props.Store), state.(*model.StoreModel))

	if diff != "" {
		fmt.Printf("Diff: %s\n", diff)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	return &gopter.PropResult{Status: gopter.PropTrue}
}

type setCommand struct {
	path  string
	value string
}

func (command setCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	props.Set[string](store.Root(""), command.path, command.value)
	return store
}

func (command setCommand) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Set(command.path, command.value)
	return state
}

func (command setCommand) PreCondition(state commands.State) bool {
	return true
}

func (command setCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return storeModelPostCondition(state, result)
}

func (command setCommand) String() string {
	return fmt.Sprintf("Set(%#v, %#v)", command.path, command.value)
}

type setInt64Command struct {
	path  string
	value int64
}

func (command setInt64Command) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	props.Set[int64](store.Root(""), command.path, command.value)
	return store
}

func (command setInt64Command) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Set(command.path, strconv.FormatInt(command.value, 10))
	return state
}

func (command setInt64Command) PreCondition(state commands.State) bool {
	return true
}

func (command setInt64Command) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return storeModelPostCondition(state, result)
}

func (command setInt64Command) String() string {
	return fmt.Sprintf("SetInt64(%#v, %d)", command.path, command.value)
}

type setRecordCommand struct {
	path   string
	record model.RecordModel
}

func (command setRecordCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)

	var record props.Record

	record.SetValueOrigin(command.record.Value, props.Origin{
		Source: command.record.Source,
		Detail: command.record.Detail,
	})

	if !command.record.Defined {
		record.Undefine()
	}

	store.Root("").SetRecord(command.path, record)

	return store
}

func (command setRecordCommand) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).SetRecord(command.path, command.record)
	return state
}

func (command setRecordCommand) PreCondition(state commands.State) bool {
	return true
}

func (command setRecordCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return storeModelPostCondition(state, result)
}

func (command setRecordCommand) String() string {
	return fmt.Sprintf("SetRecord(%#v, %#v)", command.path, command.record)
}

type undefineCommand struct {
	path string
}

func (command undefineCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	store.Root("").Undefine(command.path)
	return store
}

func (command undefineCommand) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Undefine(command.path)
	return state
}

func (command undefineCommand) PreCondition(state commands.State) bool {
	return true
}

func (command undefineCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return storeModelPostCondition(state, result)
}

func (command undefineCommand) String() string {
	return fmt.Sprintf("Undefine(%#v)", command.path)
}

type clearCommand struct {
}

func (command clearCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	store.Clear()
	return store
}

func (command clearCommand) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Clear()
	return state
}

func (command clearCommand) PreCondition(state commands.State) bool {
	return true
}

func (command clearCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return storeModelPostCondition(state, result)
}

func (command clearCommand) String() string {
	return "Clear()"
}

type recordResult struct {
	record model.RecordModel
	store  *props.Store
}

type recordCommand struct {
	path string
}

func (command recordCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	return recordResult{record: RecordModelOf(store.RootView("").Record(command.path)), store: store}
}

func (command recordCommand) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Record(command.path)
	return state
}

func (command recordCommand) PreCondition(state commands.State) bool {
	return true
}

func (command recordCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	storeModel := state.(*model.StoreModel)
	res := result.(recordResult)

	diff := cmp.Diff(storeModel.LastResponse(), res.record)

	if diff != "" {
		fmt.Printf("Diff: %s\n", diff)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	// the read itself materializes
	return storeModelPostCondition(state, res.store)
}

func (command recordCommand) String() string {
	return fmt.Sprintf("Record(%#v)", command.path)
}

type getInt64Result struct {
	value int64
	err   string
	store *props.Store
}

type getInt64Command struct {
	path string
}

func (command getInt64Command) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)

	value, err := props.Get[int64](store.RootView(""), command.path)

	return getInt64Result{value: value, err: errKind(err), store: store}
}

func (command getInt64Command) NextState(state commands.State) commands.State {
	state.(*model.StoreModel).Record(command.path)
	return state
}

func (command getInt64Command) PreCondition(state commands.State) bool {
	return true
}

func (command getInt64Command) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	storeModel := state.(*model.StoreModel)
	record := storeModel.Peek(command.path)
	res := result.(getInt64Result)

	expected := getInt64Result{store: res.store}

	if !record.Defined {
		expected.err = "undefined"
	} else if value, err := strconv.ParseInt(record.Value, 10, 64); err != nil {
		expected.err = "bad format"
	} else {
		expected.value = value
	}

	if expected.value != res.value || expected.err != res.err {
		fmt.Printf("Diff: expected (%d, %s), got (%d, %s)\n", expected.value, expected.err, res.value, res.err)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	return storeModelPostCondition(state, res.store)
}

func (command getInt64Command) String() string {
	return fmt.Sprintf("GetInt64(%#v)", command.path)
}

func errKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, props.ErrUndefined):
		return "undefined"
	case errors.Is(err, props.ErrBadFormat):
		return "bad format"
	}

	return err.Error()
}

type listKeysRecursiveCommand struct {
	root          string
	withUndefined bool
}

func (command listKeysRecursiveCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	return store.RootView("").Subtree(command.root).ListKeysRecursive(command.withUndefined)
}

func (command listKeysRecursiveCommand) NextState(state commands.State) commands.State {
	return state
}

func (command listKeysRecursiveCommand) PreCondition(state commands.State) bool {
	return true
}

func (command listKeysRecursiveCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	diff := cmp.Diff(state.(*model.StoreModel).KeysRecursive(command.root, command.withUndefined), result)

	if diff != "" {
		fmt.Printf("Diff: %s\n", diff)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (command listKeysRecursiveCommand) String() string {
	return fmt.Sprintf("ListKeysRecursive(%#v, %t)", command.root, command.withUndefined)
}

type listKeysCommand struct {
	root          string
	withUndefined bool
}

func (command listKeysCommand) Run(sut commands.SystemUnderTest) commands.Result {
	store := sut.(*props.Store)
	return store.RootView("").Subtree(command.root).ListKeys(command.withUndefined)
}

func (command listKeysCommand) NextState(state commands.State) commands.State {
	return state
}

func (command listKeysCommand) PreCondition(state commands.State) bool {
	return true
}

func (command listKeysCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	diff := cmp.Diff(state.(*model.StoreModel).Keys(command.root, command.withUndefined), result)

	if diff != "" {
		fmt.Printf("Diff: %s\n", diff)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (command listKeysCommand) String() string {
	return fmt.Sprintf("ListKeys(%#v, %t)", command.root, command.withUndefined)
}

type lenCommand struct {
}

func (command lenCommand) Run(sut commands.SystemUnderTest) commands.Result {
	return sut.(*props.Store).Len()
}

func (command lenCommand) NextState(state commands.State) commands.State {
	return state
}

func (command lenCommand) PreCondition(state commands.State) bool {
	return true
}

func (command lenCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	diff := cmp.Diff(state.(*model.StoreModel).Len(), result)

	if diff != "" {
		fmt.Printf("Diff: %s\n", diff)
		return &gopter.PropResult{Status: gopter.PropFalse}
	}

	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (command lenCommand) String() string {
	return "Len()"
}
