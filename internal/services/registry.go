// Package services holds the singleton service instances the autofill
// stage draws from. A service is registered once at process start as a
// capsule-typed value; an input whose declared type matches a registered
// service's type exactly is filled with that instance.
package services

import (
	"fmt"
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// Entry is one registered service singleton.
type Entry struct {
	Name  string
	Type  cty.Type
	Value cty.Value
}

// Registry maps service names to singleton instances.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

// New creates an empty service registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a service singleton. Registering the same name twice is
// a programmer error and panics.
func (r *Registry) Register(name string, ty cty.Type, value cty.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("service '%s' already registered", name))
	}
	r.entries[name] = Entry{Name: name, Type: ty, Value: value}
	r.order = append(r.order, name)
}

// Lookup returns the named service entry.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}

// ByType returns the instance of the first registered service whose type
// equals the given type exactly. Registration order makes the answer
// deterministic when several services share a type.
func (r *Registry) ByType(ty cty.Type) (cty.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if entry := r.entries[name]; entry.Type.Equals(ty) {
			return entry.Value, true
		}
	}
	return cty.NilVal, false
}
