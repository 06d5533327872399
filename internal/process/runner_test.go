package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/scriptpipe/internal/scriptinfo"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/vk/scriptpipe/internal/typereg"
	"github.com/zclconf/go-cty/cty"
)

// recordingStage appends its name to a shared trace when processed.
type recordingStage struct {
	name     string
	priority float64
	trace    *[]string
	process  func(m *scriptmodule.Module)
}

func (s *recordingStage) Name() string      { return s.name }
func (s *recordingStage) Priority() float64 { return s.priority }
func (s *recordingStage) Process(_ context.Context, m *scriptmodule.Module) {
	*s.trace = append(*s.trace, s.name)
	if s.process != nil {
		s.process(m)
	}
}

func newModule(t *testing.T) *scriptmodule.Module {
	t.Helper()
	return scriptmodule.New(scriptinfo.NewFromSource(typereg.New(), "test.py", "# @int count\n"))
}

func TestStagesRunInDescendingPriorityOrder(t *testing.T) {
	var trace []string
	runner := NewRunner(
		&recordingStage{name: "low", priority: 1, trace: &trace},
		&recordingStage{name: "high", priority: 10, trace: &trace},
		&recordingStage{name: "mid", priority: 5, trace: &trace},
	)
	runner.Run(context.Background(), newModule(t))

	assert.Equal(t, []string{"high", "mid", "low"}, trace)
}

func TestEqualPrioritiesKeepRegistrationOrder(t *testing.T) {
	var trace []string
	runner := NewRunner()
	for _, name := range []string{"first", "second", "third"} {
		runner.Register(&recordingStage{name: name, priority: PriorityNormal, trace: &trace})
	}
	runner.Run(context.Background(), newModule(t))

	assert.Equal(t, []string{"first", "second", "third"}, trace)
}

func TestResolvedInputIsNotRevisited(t *testing.T) {
	var trace []string
	m := newModule(t)

	resolver := func(val int64) func(*scriptmodule.Module) {
		return func(m *scriptmodule.Module) {
			if m.Resolved("count") {
				return // another stage already resolved this input
			}
			m.SetInput("count", cty.NumberIntVal(val))
			m.ResolveInput("count")
		}
	}

	runner := NewRunner(
		&recordingStage{name: "late", priority: 1, trace: &trace, process: resolver(2)},
		&recordingStage{name: "early", priority: 10, trace: &trace, process: resolver(1)},
	)
	runner.Run(context.Background(), m)

	val, ok := m.Value("count")
	assert.True(t, ok)
	assert.True(t, val.RawEquals(cty.NumberIntVal(1)), "the higher-priority stage's value wins")
}

func TestNamedPriorityBands(t *testing.T) {
	assert.Greater(t, PriorityVeryHigh, PriorityHigh)
	assert.Greater(t, PriorityHigh, PriorityNormal)
	assert.Greater(t, PriorityNormal, PriorityLow)
	assert.Greater(t, PriorityLow, PriorityVeryLow)
}
