// Package defaults applies declared default values to inputs no other
// source resolved. It sits near the bottom of the pipeline: a default is
// the value of last resort before an input is reported unresolved.
package defaults

import (
	"context"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptmodule"
)

// Stage resolves inputs from their declared `value=` defaults.
type Stage struct{}

// New creates the defaults stage.
func New() *Stage { return &Stage{} }

func (s *Stage) Name() string      { return "defaults" }
func (s *Stage) Priority() float64 { return process.PriorityLow }

// Process sets and resolves every still-unresolved input that declares a
// default. The default already has the item's type; no conversion is
// needed.
func (s *Stage) Process(ctx context.Context, m *scriptmodule.Module) {
	logger := ctxlog.FromContext(ctx)

	for _, item := range m.Info().Inputs(ctx) {
		if m.Resolved(item.Name) || item.Default == nil {
			continue
		}
		m.SetInput(item.Name, *item.Default)
		m.ResolveInput(item.Name)
		logger.Debug("Resolved input from declared default.", "input", item.Name)
	}
}
