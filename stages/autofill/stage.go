// Package autofill fills module inputs whose declared type matches a
// registered singleton service instance. It runs first in the pipeline
// so that service-typed inputs never reach the value-harvesting stages.
package autofill

import (
	"context"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/vk/scriptpipe/internal/services"
)

// Stage auto-fills service-typed inputs.
type Stage struct {
	registry *services.Registry
}

// New creates the autofill stage over the given service registry. A nil
// registry makes the stage a no-op.
func New(registry *services.Registry) *Stage {
	return &Stage{registry: registry}
}

func (s *Stage) Name() string      { return "autofill" }
func (s *Stage) Priority() float64 { return process.PriorityVeryHigh }

// Process fills every auto-fillable, still-unresolved input whose
// declared type exactly equals a registered service's type, and marks it
// resolved: a singleton of the right type is final by definition.
func (s *Stage) Process(ctx context.Context, m *scriptmodule.Module) {
	if s.registry == nil {
		return // no service registry available
	}
	logger := ctxlog.FromContext(ctx)

	for _, item := range m.Info().Inputs(ctx) {
		if !item.AutoFill || m.Resolved(item.Name) {
			continue
		}
		instance, ok := s.registry.ByType(item.Type)
		if !ok {
			continue
		}
		m.SetInput(item.Name, instance)
		m.ResolveInput(item.Name)
		logger.Debug("Auto-filled input from service.",
			"input", item.Name, "type", item.Type.FriendlyName())
	}
}
