// Package scriptmodule binds a script's parameter metadata to the
// concrete argument values of a single run.
//
// A Module is owned exclusively by the execution that created it; it is
// never shared between concurrent runs. Concurrent executions of the
// same script each get their own Module bound to the shared, read-only
// metadata.
package scriptmodule

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/scriptpipe/internal/scriptinfo"
	"github.com/zclconf/go-cty/cty"
)

// Module maps parameter names to current values for one run, together
// with a resolved marker per input. A value present without a resolved
// marker is populated but not yet confirmed; the engine may only consume
// resolved inputs.
type Module struct {
	info     *scriptinfo.Info
	values   map[string]cty.Value
	resolved map[string]bool
}

// New creates an empty module bound to the given script metadata.
func New(info *scriptinfo.Info) *Module {
	return &Module{
		info:     info,
		values:   make(map[string]cty.Value),
		resolved: make(map[string]bool),
	}
}

// Info returns the script metadata this module is bound to.
func (m *Module) Info() *scriptinfo.Info { return m.info }

// Value returns the current value for the named parameter.
func (m *Module) Value(name string) (cty.Value, bool) {
	val, ok := m.values[name]
	return val, ok
}

// SetInput populates the named input without marking it resolved.
func (m *Module) SetInput(name string, value cty.Value) {
	m.values[name] = value
}

// SetOutput records a value produced by the script.
func (m *Module) SetOutput(name string, value cty.Value) {
	m.values[name] = value
}

// ResolveInput marks the named input as final for this run. Pipeline
// stages must not clear the marker once another stage has set it.
func (m *Module) ResolveInput(name string) {
	m.resolved[name] = true
}

// Resolved reports whether the named input has been marked final.
func (m *Module) Resolved(name string) bool {
	return m.resolved[name]
}

// UnresolvedInputError reports required inputs the pipeline left
// unresolved. It is deliberately distinct from the parse errors the
// extractor records: the engine raises this at invocation time.
type UnresolvedInputError struct {
	Names []string
}

func (e *UnresolvedInputError) Error() string {
	return fmt.Sprintf("unresolved required input(s): %s", strings.Join(e.Names, ", "))
}

// RequireResolved verifies that every required input is resolved,
// returning an UnresolvedInputError naming the stragglers otherwise.
// The execution engine must not begin until this passes.
func (m *Module) RequireResolved(ctx context.Context) error {
	var missing []string
	for _, item := range m.info.Inputs(ctx) {
		if item.Required && !m.Resolved(item.Name) {
			missing = append(missing, item.Name)
		}
	}
	if len(missing) > 0 {
		return &UnresolvedInputError{Names: missing}
	}
	return nil
}
