// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Item struct, the fully parsed representation of a
// single parameter declaration from a script header.

package param

import (
	"github.com/zclconf/go-cty/cty"
)

// Item is the metadata record for one script input or output.
//
// The bound fields (Min, Max, SoftMin, SoftMax, Default) are pointers so
// that "not declared" is distinguishable from any legitimate value; when
// present they always hold a value of the item's Type.
type Item struct {
	// Name identifies the parameter. It is unique within one script's
	// metadata and doubles as the variable name the engine binds.
	Name string

	// Type is the value type resolved from the directive's type token.
	Type cty.Type

	// Kind records whether the parameter is an input, an output, or both.
	Kind IOKind

	Label       string
	Description string
	Visibility  Visibility

	// Style is a free-form widget style hint for interactive harvesting.
	Style string

	// Columns is a UI width hint for text-style widgets.
	Columns int

	// Callback and Initializer name routines the surrounding framework
	// invokes when the value changes or before first display.
	Callback    string
	Initializer string

	// Persisted controls whether the resolved value is written back to
	// the parameter store after the pipeline runs.
	Persisted bool

	// PersistKey overrides the storage key. When empty the item's name
	// is used.
	PersistKey string

	// Required marks inputs that must be resolved before the engine may
	// begin execution.
	Required bool

	// AutoFill permits the autofill stage to populate this input from a
	// registered singleton service of the matching type.
	AutoFill bool

	Default *cty.Value

	Min     *cty.Value
	Max     *cty.Value
	SoftMin *cty.Value
	SoftMax *cty.Value

	// StepSize is the increment hint for numeric widgets; zero means
	// unset.
	StepSize float64

	// Choices is the ordered set of allowed values, each of the item's
	// Type. Empty means unconstrained.
	Choices []cty.Value
}

// New returns an Item with the defaults every declaration starts from:
// an input parameter of normal visibility that is required, persisted,
// and eligible for auto-filling.
func New(name string, ty cty.Type) *Item {
	return &Item{
		Name:       name,
		Type:       ty,
		Kind:       Input,
		Visibility: VisibilityNormal,
		Persisted:  true,
		Required:   true,
		AutoFill:   true,
	}
}

// IsInput reports whether the item is consumed by the script.
func (it *Item) IsInput() bool {
	return it.Kind == Input || it.Kind == Both
}

// IsOutput reports whether the item is produced by the script.
func (it *Item) IsOutput() bool {
	return it.Kind == Output || it.Kind == Both
}

// StoreKey returns the key under which the item's value is persisted:
// the explicit PersistKey when set, otherwise the item's name.
func (it *Item) StoreKey() string {
	if it.PersistKey != "" {
		return it.PersistKey
	}
	return it.Name
}

// Equal reports whether two items carry identical metadata. It is used
// to verify that re-extraction of an unchanged script reproduces the
// same parameter set.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.Name != other.Name ||
		!it.Type.Equals(other.Type) ||
		it.Kind != other.Kind ||
		it.Label != other.Label ||
		it.Description != other.Description ||
		it.Visibility != other.Visibility ||
		it.Style != other.Style ||
		it.Columns != other.Columns ||
		it.Callback != other.Callback ||
		it.Initializer != other.Initializer ||
		it.Persisted != other.Persisted ||
		it.PersistKey != other.PersistKey ||
		it.Required != other.Required ||
		it.AutoFill != other.AutoFill ||
		it.StepSize != other.StepSize {
		return false
	}
	if !boundEqual(it.Default, other.Default) ||
		!boundEqual(it.Min, other.Min) ||
		!boundEqual(it.Max, other.Max) ||
		!boundEqual(it.SoftMin, other.SoftMin) ||
		!boundEqual(it.SoftMax, other.SoftMax) {
		return false
	}
	if len(it.Choices) != len(other.Choices) {
		return false
	}
	for i := range it.Choices {
		if !it.Choices[i].RawEquals(other.Choices[i]) {
			return false
		}
	}
	return true
}

func boundEqual(a, b *cty.Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.RawEquals(*b)
}
