package persist

import (
	"context"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/paramstore"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptmodule"
)

// SaveStage writes the resolved values of persisted inputs back to the
// parameter store. It runs last in the chain, after every
// value-harvesting stage has had its chance to populate the inputs.
type SaveStage struct {
	store paramstore.Store
}

// NewSave creates the save stage over the given store. A nil store makes
// the stage a no-op.
func NewSave(store paramstore.Store) *SaveStage {
	return &SaveStage{store: store}
}

func (s *SaveStage) Name() string { return "persist-save" }

// Priority places the save stage below every other stage in the chain.
func (s *SaveStage) Priority() float64 { return process.PriorityVeryLow - 1 }

// Process saves the current value of every persisted input, however it
// was populated. It never mutates the module.
func (s *SaveStage) Process(ctx context.Context, m *scriptmodule.Module) {
	if s.store == nil {
		return // no store available
	}
	logger := ctxlog.FromContext(ctx)

	for _, item := range m.Info().Inputs(ctx) {
		if !item.Persisted {
			continue
		}
		val, ok := m.Value(item.Name)
		if !ok {
			continue // nothing was populated for this input
		}
		if err := s.store.Put(ctx, item.StoreKey(), val); err != nil {
			logger.Warn("Could not persist input value.",
				"input", item.Name, "key", item.StoreKey(), "error", err)
		}
	}
}
