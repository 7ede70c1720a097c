// Package model implements an executable description of property
// store behavior for model-based tests. The model keeps records in a
// plain map and re-derives ordering and subtree membership from
// scratch on every query, so it shares no code with the real store.
package model

import (
	"sort"
	"strings"
)

// RecordModel mirrors the observable state of a single record.
type RecordModel struct {
	Value   string
	Defined bool
	Source  string
	Detail  string
}

// StoreModel mirrors the observable state of a store: every record
// ever touched, keyed by full path.
type StoreModel struct {
	records  map[string]RecordModel
	response interface{}
}

// NewStoreModel creates an empty store model
func NewStoreModel() *StoreModel {
	return &StoreModel{records: map[string]RecordModel{}}
}

// LastResponse returns what the most recent modeled read returned.
func (storeModel *StoreModel) LastResponse() interface{} {
	return storeModel.response
}

// Set models a typed write of an already-encoded value: the record
// becomes defined with that value, keeping its origin.
func (storeModel *StoreModel) Set(path string, value string) {
	record := storeModel.records[path]
	record.Value = value
	record.Defined = true
	storeModel.records[path] = record
}

// SetRecord models a whole-record overwrite.
func (storeModel *StoreModel) SetRecord(path string, record RecordModel) {
	storeModel.records[path] = record
}

// Undefine models a soft delete: the record stays with its last
// value and origin, marked undefined.
func (storeModel *StoreModel) Undefine(path string) {
	record := storeModel.records[path]
	record.Defined = false
	storeModel.records[path] = record
}

// Clear models the administrative reset.
func (storeModel *StoreModel) Clear() {
	storeModel.records = map[string]RecordModel{}
}

// Record models a record read, including the materialization it
// leaves behind.
func (storeModel *StoreModel) Record(path string) RecordModel {
	record := storeModel.records[path]
	storeModel.records[path] = record
	storeModel.response = record

	return record
}

// Peek returns the record at path without materializing anything.
func (storeModel *StoreModel) Peek(path string) RecordModel {
	return storeModel.records[path]
}

// Len returns the number of records ever touched.
func (storeModel *StoreModel) Len() int {
	return len(storeModel.records)
}

// KeysRecursive models subtree enumeration: every record inside the
// subtree rooted at root, as a path relative to root, ascending by
// full path.
func (storeModel *StoreModel) KeysRecursive(root string, withUndefined bool) []string {
	full := []string{}

	for path := range storeModel.records {
		full = append(full, path)
	}

	sort.Strings(full)

	keys := []string{}

	for _, path := range full {
		rel, ok := relativeTo(path, root)

		if !ok {
			continue
		}

		if !withUndefined && !storeModel.records[path].Defined {
			continue
		}

		keys = append(keys, rel)
	}

	return keys
}

// Keys models immediate-child enumeration: the first segment of
// every recursive key, consecutive duplicates collapsed.
func (storeModel *StoreModel) Keys(root string, withUndefined bool) []string {
	keys := []string{}

	for _, key := range storeModel.KeysRecursive(root, withUndefined) {
		child := key

		if i := strings.Index(key, "."); i >= 0 {
			child = key[:i]
		}

		if len(keys) > 0 && keys[len(keys)-1] == child {
			continue
		}

		keys = append(keys, child)
	}

	return keys
}

func relativeTo(path, root string) (string, bool) {
	if root == "" {
		return path, true
	}

	if path == root {
		return "", true
	}

	if strings.HasPrefix(path, root+".") {
		return path[len(root)+1:], true
	}

	return "", false
}
