// Package process defines the pre-execution pipeline that resolves a
// module's input values before the script engine runs it.
//
// Stages are registered statically at startup and applied in descending
// priority order. Each stage independently decides which inputs it can
// contribute to; a stage whose backing service is unavailable treats
// itself as a no-op rather than failing the pipeline. A stage marks an
// input resolved only when it is confident the value is final for the
// run, and no stage may un-resolve an input another stage resolved —
// stages are cooperative, and the runner relies on that contract rather
// than enforcing it with locks.
package process

import (
	"context"

	"github.com/vk/scriptpipe/internal/scriptmodule"
)

// Stage is one unit of pre-execution processing applied to a module. A
// stage mutates the module's inputs as a side effect and reports nothing
// back; declining to act is always acceptable.
type Stage interface {
	// Name identifies the stage in logs.
	Name() string
	// Priority orders the stage within the pipeline; higher runs earlier.
	Priority() float64
	// Process inspects and mutates the module's inputs.
	Process(ctx context.Context, m *scriptmodule.Module)
}
