// Package values injects caller-provided parameter values (typically
// from the CLI's values file) into a module. It runs above the
// persistence and defaults stages so explicit values always win.
package values

import (
	"context"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Stage resolves inputs from an explicit name/value binding set.
type Stage struct {
	values map[string]cty.Value
}

// New creates the stage over the given bindings. Nil or empty bindings
// make the stage a no-op.
func New(values map[string]cty.Value) *Stage {
	return &Stage{values: values}
}

func (s *Stage) Name() string      { return "values" }
func (s *Stage) Priority() float64 { return process.PriorityHigh }

// Process sets and resolves every still-unresolved input that has a
// binding convertible to its declared type. A binding that cannot
// convert is logged and skipped; the input stays pending for the
// remaining stages.
func (s *Stage) Process(ctx context.Context, m *scriptmodule.Module) {
	if len(s.values) == 0 {
		return
	}
	logger := ctxlog.FromContext(ctx)

	for _, item := range m.Info().Inputs(ctx) {
		if m.Resolved(item.Name) {
			continue
		}
		raw, ok := s.values[item.Name]
		if !ok {
			continue
		}
		val, err := convert.Convert(raw, item.Type)
		if err != nil {
			logger.Warn("Provided value does not fit the declared input type.",
				"input", item.Name, "type", item.Type.FriendlyName(), "error", err)
			continue
		}
		m.SetInput(item.Name, val)
		m.ResolveInput(item.Name)
		logger.Debug("Resolved input from provided values.", "input", item.Name)
	}
}
