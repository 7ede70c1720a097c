package gen

import (
	"fmt"

	"github.com/dotterel/dotterel/props"
	"github.com/dotterel/dotterel/props/model"
	"github.com/google/go-cmp/cmp"
)

// RecordModelOf flattens a record into its model form.
func RecordModelOf(record props.Record) model.RecordModel {
	return model.RecordModel{
		Value:   record.Value(),
		Defined: record.Defined(),
		Source:  record.Origin().Source,
		Detail:  record.Origin().Detail,
	}
}

// StoreModelDiff compares every piece of observable store state
// against the model: record count, the recursive listing of every
// path ever touched and each record.
func StoreModelDiff(store *props.Store, storeModel *model.StoreModel) string {
	if store.Len() != storeModel.Len() {
		return fmt.Sprintf("model has %d records, store has %d", storeModel.Len(), store.Len())
	}

	root := store.RootView("")
	keys := root.ListKeysRecursive(true)

	if diff := cmp.Diff(storeModel.KeysRecursive("", true), keys); diff != "" {
		return diff
	}

	for _, key := range keys {
		if diff := cmp.Diff(storeModel.Peek(key), RecordModelOf(root.Record(key))); diff != "" {
			return fmt.Sprintf("record %#v: %s", key, diff)
		}
	}

	return ""
}
