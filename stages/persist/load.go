// Package persist contains the two stages that connect the pipeline to
// the persistent parameter store: LoadStage fills still-pending inputs
// from values saved by earlier runs, and SaveStage writes the run's
// resolved values back.
package persist

import (
	"context"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/paramstore"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// LoadStage fills persisted inputs from the parameter store.
type LoadStage struct {
	store paramstore.Store
}

// NewLoad creates the load stage over the given store. A nil store makes
// the stage a no-op.
func NewLoad(store paramstore.Store) *LoadStage {
	return &LoadStage{store: store}
}

func (s *LoadStage) Name() string      { return "persist-load" }
func (s *LoadStage) Priority() float64 { return process.PriorityNormal }

// Process fills every persisted, still-unresolved input that has a saved
// value convertible to its declared type. By this point every
// higher-confidence source has had its chance, so the saved value is
// final for the run and the input is marked resolved.
func (s *LoadStage) Process(ctx context.Context, m *scriptmodule.Module) {
	if s.store == nil {
		return // no store available
	}
	logger := ctxlog.FromContext(ctx)

	for _, item := range m.Info().Inputs(ctx) {
		if !item.Persisted || m.Resolved(item.Name) {
			continue
		}
		saved, ok, err := s.store.Get(ctx, item.StoreKey())
		if err != nil {
			logger.Warn("Could not read persisted value.",
				"input", item.Name, "key", item.StoreKey(), "error", err)
			continue
		}
		if !ok {
			continue
		}
		val := saved
		if item.Type != cty.DynamicPseudoType {
			val, err = convert.Convert(saved, item.Type)
			if err != nil {
				logger.Warn("Persisted value no longer fits the declared input type.",
					"input", item.Name, "type", item.Type.FriendlyName(), "error", err)
				continue
			}
		}
		m.SetInput(item.Name, val)
		m.ResolveInput(item.Name)
		logger.Debug("Resolved input from persisted value.", "input", item.Name)
	}
}
