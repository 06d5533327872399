package app

import (
	"github.com/vk/scriptpipe/internal/paramstore"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/services"
	"github.com/vk/scriptpipe/stages/autofill"
	"github.com/vk/scriptpipe/stages/defaults"
	"github.com/vk/scriptpipe/stages/persist"
	"github.com/vk/scriptpipe/stages/values"
	"github.com/zclconf/go-cty/cty"
)

// defaultStages is the definitive list of pre-execution stages compiled
// into the scriptpipe binary, in registration order. The runner reorders
// them by priority; registration order only breaks ties.
func defaultStages(svc *services.Registry, store paramstore.Store, provided map[string]cty.Value) []process.Stage {
	return []process.Stage{
		autofill.New(svc),
		values.New(provided),
		persist.NewLoad(store),
		defaults.New(),
		persist.NewSave(store),
	}
}
