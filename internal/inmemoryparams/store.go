// Package inmemoryparams provides a simple, thread-safe, in-memory
// implementation of the paramstore.Store interface. It is suitable for
// single-process runs and tests; values do not survive the process.
package inmemoryparams

import (
	"context"
	"sync"

	"github.com/vk/scriptpipe/internal/paramstore"
	"github.com/zclconf/go-cty/cty"
)

// Store implements paramstore.Store using a map and a mutex for
// thread-safe concurrent access.
type Store struct {
	mu     sync.RWMutex
	values map[string]cty.Value
}

// New creates a new, empty in-memory parameter store.
func New() paramstore.Store {
	return &Store{values: make(map[string]cty.Value)}
}

// Get retrieves a previously saved value by key.
func (s *Store) Get(ctx context.Context, key string) (cty.Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	if !ok {
		return cty.NilVal, false, nil
	}
	return val, true, nil
}

// Put saves a value under the given key. Overwriting is not an error;
// the latest run wins.
func (s *Store) Put(ctx context.Context, key string, value cty.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
