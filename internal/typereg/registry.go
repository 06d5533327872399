// Package typereg resolves the textual type names used in script
// directives to cty types, and converts raw directive tokens into values
// of those types. It is the concrete implementation of the type-lookup
// and conversion capability the directive parser depends on.
package typereg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// Registry maps textual type names to cty types. A fresh registry knows
// the built-in primitive names; callers extend it with capsule types for
// the opaque service objects their scripts accept.
type Registry struct {
	mu    sync.RWMutex
	types map[string]cty.Type
}

// New creates a registry seeded with the built-in type vocabulary.
// Numeric names all map to cty.Number; scripts do not distinguish
// integer widths.
func New() *Registry {
	r := &Registry{types: map[string]cty.Type{}}
	for _, name := range []string{"bool", "boolean"} {
		r.types[name] = cty.Bool
	}
	for _, name := range []string{"byte", "short", "int", "integer", "long", "float", "double", "number"} {
		r.types[name] = cty.Number
	}
	for _, name := range []string{"char", "string", "str", "text"} {
		r.types[name] = cty.String
	}
	for _, name := range []string{"object", "any"} {
		r.types[name] = cty.DynamicPseudoType
	}
	return r
}

// Register adds a named type to the registry. Registering a name twice
// is a programmer error and panics, matching the behaviour of the
// handler registries elsewhere in the binary.
func (r *Registry) Register(name string, ty cty.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, exists := r.types[key]; exists {
		panic(fmt.Sprintf("type '%s' already registered", name))
	}
	r.types[key] = ty
}

// RegisterCapsule creates a capsule type wrapping the given Go type,
// registers it under the given name, and returns it. Capsule types carry
// opaque service instances through the cty value space so the autofill
// stage can match them against declared input types.
func (r *Registry) RegisterCapsule(name string, goType reflect.Type) cty.Type {
	ty := cty.Capsule(name, goType)
	r.Register(name, ty)
	return ty
}

// Lookup resolves a type name from a directive's type token. Lookup is
// case-insensitive so that `String count` and `string count` declare the
// same parameter.
func (r *Registry) Lookup(name string) (cty.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ty, ok := r.types[strings.ToLower(name)]
	return ty, ok
}
