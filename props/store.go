package props

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreConfig contains configuration
// for a property store
type StoreConfig struct {
	// Logger is used by the store and every view attached to it.
	// Defaults to the global zap logger.
	Logger *zap.Logger
	// DisableReadMaterialize keeps reads from inserting undefined
	// records for the paths they touch. By default reading any path
	// materializes a record there, so the table remembers every
	// property that was ever asked for.
	DisableReadMaterialize bool
}

// Store is a property table addressed by dotted paths. It keeps the
// records in ascending lexicographic order of their full path and
// guards them with a single mutex, so any number of goroutines may
// use it, and any views of it, concurrently.
type Store struct {
	mu              sync.Mutex
	table           *treemap.Map
	logger          *zap.Logger
	readMaterialize bool
}

// New creates an empty property store
func New(config StoreConfig) *Store {
	store := &Store{logger: config.Logger}

	if store.logger == nil {
		store.logger = zap.L()
	}

	store.logger = store.logger.With(zap.String("store", uuid.New().String()))
	store.table = treemap.NewWith(func(a, b interface{}) int {
		return strings.Compare(a.(string), b.(string))
	})
	store.readMaterialize = !config.DisableReadMaterialize

	return store
}

// Root returns a read-write view of the whole table. The view's
// identity path is id, which tags the view's write logging and is
// reported by ID.
func (store *Store) Root(id string) RWView {
	return RWView{View{owner: store, id: id}}
}

// RootView is like Root except it returns a read-only view.
func (store *Store) RootView(id string) View {
	return store.Root(id).View
}

// Clear removes every record from the table. It is an administrative
// reset: views remain usable afterwards, but sequences of operations
// spanning a Clear still need coordination above the store.
func (store *Store) Clear() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.logger.Debug("clear", zap.Int("records", store.table.Size()))

	store.table.Clear()
}

// Len returns the number of records in the table, defined or not.
// With read materialization enabled it grows with every path ever
// touched.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.table.Size()
}

// record returns the record at path, materializing an undefined
// record there per the store's materialization policy. The caller
// must hold store.mu.
func (store *Store) record(path string, forWrite bool) *Record {
	if value, ok := store.table.Get(path); ok {
		return value.(*Record)
	}

	record := &Record{}

	if forWrite || store.readMaterialize {
		store.table.Put(path, record)
	}

	return record
}
