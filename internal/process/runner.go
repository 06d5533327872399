package process

import (
	"context"
	"sort"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/scriptmodule"
)

// Runner sequences pipeline stages and executes them against a module.
type Runner struct {
	stages []Stage
}

// NewRunner creates a runner over the given stages. Registration order
// is remembered: it is the tiebreak between stages of equal priority.
func NewRunner(stages ...Stage) *Runner {
	r := &Runner{}
	for _, s := range stages {
		r.Register(s)
	}
	return r
}

// Register appends a stage to the pipeline.
func (r *Runner) Register(s Stage) {
	r.stages = append(r.stages, s)
}

// Run invokes every stage's Process against the module, in descending
// priority order. The sort is stable, so stages sharing a priority run
// in the order they were registered. This ordering is the only guarantee
// a stage may rely on.
func (r *Runner) Run(ctx context.Context, m *scriptmodule.Module) {
	logger := ctxlog.FromContext(ctx)

	ordered := make([]Stage, len(r.stages))
	copy(ordered, r.stages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() > ordered[j].Priority()
	})

	for _, stage := range ordered {
		logger.Debug("Running pre-execution stage.",
			"stage", stage.Name(), "priority", stage.Priority())
		stage.Process(ctx, m)
	}
}
