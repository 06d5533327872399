package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/scriptpipe/internal/scriptinfo"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/vk/scriptpipe/internal/testutil"
	"github.com/vk/scriptpipe/internal/typereg"
	"github.com/zclconf/go-cty/cty"
)

func newModule(t *testing.T, source string) *scriptmodule.Module {
	t.Helper()
	info := scriptinfo.NewFromSource(typereg.New(), "test.py", source)
	return scriptmodule.New(info)
}

func TestResolvesBoundInputs(t *testing.T) {
	ctx, _ := testutil.LogContext()
	m := newModule(t, "// @int count\n// @string greeting\n")

	stage := New(map[string]cty.Value{
		"count":    cty.NumberIntVal(7),
		"greeting": cty.StringVal("hello"),
		"unused":   cty.True,
	})
	stage.Process(ctx, m)

	require.True(t, m.Resolved("count"))
	val, _ := m.Value("count")
	assert.True(t, val.RawEquals(cty.NumberIntVal(7)))

	require.True(t, m.Resolved("greeting"))
	val, _ = m.Value("greeting")
	assert.True(t, val.RawEquals(cty.StringVal("hello")))
}

func TestConvertsToDeclaredType(t *testing.T) {
	ctx, _ := testutil.LogContext()
	m := newModule(t, "// @int count\n")

	New(map[string]cty.Value{"count": cty.StringVal("42")}).Process(ctx, m)

	require.True(t, m.Resolved("count"))
	val, _ := m.Value("count")
	assert.True(t, val.RawEquals(cty.NumberIntVal(42)))
}

func TestUnconvertibleValueIsSkipped(t *testing.T) {
	ctx, logs := testutil.LogContext()
	m := newModule(t, "// @int count\n")

	New(map[string]cty.Value{"count": cty.StringVal("not a number")}).Process(ctx, m)

	assert.False(t, m.Resolved("count"), "bad binding must leave the input pending")
	_, ok := m.Value("count")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "does not fit")
}

func TestLeavesResolvedAndUnboundInputsAlone(t *testing.T) {
	ctx, _ := testutil.LogContext()
	m := newModule(t, "// @int count\n// @string greeting\n")
	m.SetInput("count", cty.NumberIntVal(1))
	m.ResolveInput("count")

	New(map[string]cty.Value{"count": cty.NumberIntVal(99)}).Process(ctx, m)

	val, _ := m.Value("count")
	assert.True(t, val.RawEquals(cty.NumberIntVal(1)))
	assert.False(t, m.Resolved("greeting"))
}

func TestEmptyBindingsAreNoOp(t *testing.T) {
	ctx, _ := testutil.LogContext()
	m := newModule(t, "// @int count\n")

	New(nil).Process(ctx, m)

	assert.False(t, m.Resolved("count"))
}
