// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestNewDefaults(t *testing.T) {
	item := New("count", cty.Number)

	assert.Equal(t, Input, item.Kind)
	assert.Equal(t, VisibilityNormal, item.Visibility)
	assert.True(t, item.Persisted)
	assert.True(t, item.Required)
	assert.True(t, item.AutoFill)
	assert.Nil(t, item.Default)
}

func TestIOKindMembership(t *testing.T) {
	assert.True(t, New("a", cty.Number).IsInput())
	assert.False(t, New("a", cty.Number).IsOutput())

	out := New("b", cty.Number)
	out.Kind = Output
	assert.False(t, out.IsInput())
	assert.True(t, out.IsOutput())

	both := New("c", cty.Number)
	both.Kind = Both
	assert.True(t, both.IsInput())
	assert.True(t, both.IsOutput())
}

func TestParseIOKind(t *testing.T) {
	kind, ok := ParseIOKind("output")
	assert.True(t, ok)
	assert.Equal(t, Output, kind)

	kind, ok = ParseIOKind("Both")
	assert.True(t, ok)
	assert.Equal(t, Both, kind)

	_, ok = ParseIOKind("int")
	assert.False(t, ok, "a type token is not an I/O kind keyword")
}

func TestParseVisibility(t *testing.T) {
	vis, ok := ParseVisibility("invisible")
	assert.True(t, ok)
	assert.Equal(t, VisibilityInvisible, vis)

	_, ok = ParseVisibility("sometimes")
	assert.False(t, ok)
}

func TestStoreKey(t *testing.T) {
	item := New("count", cty.Number)
	assert.Equal(t, "count", item.StoreKey())

	item.PersistKey = "custom.key"
	assert.Equal(t, "custom.key", item.StoreKey())
}

func TestEqual(t *testing.T) {
	a := New("count", cty.Number)
	b := New("count", cty.Number)
	assert.True(t, a.Equal(b))

	min := cty.NumberIntVal(1)
	a.Min = &min
	assert.False(t, a.Equal(b))

	otherMin := cty.NumberIntVal(1)
	b.Min = &otherMin
	assert.True(t, a.Equal(b))

	b.Choices = []cty.Value{cty.NumberIntVal(1)}
	assert.False(t, a.Equal(b))
}
