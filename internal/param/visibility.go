// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import "strings"

// Visibility is a UI hint controlling how an input is presented when
// values are harvested interactively.
type Visibility int

const (
	// VisibilityNormal inputs are shown as editable widgets.
	VisibilityNormal Visibility = iota
	// VisibilityTransient inputs are shown but their values are never
	// persisted between runs.
	VisibilityTransient
	// VisibilityInvisible inputs are hidden entirely.
	VisibilityInvisible
	// VisibilityMessage inputs render as informational text.
	VisibilityMessage
)

// String returns the attribute value for the visibility level.
func (v Visibility) String() string {
	switch v {
	case VisibilityTransient:
		return "TRANSIENT"
	case VisibilityInvisible:
		return "INVISIBLE"
	case VisibilityMessage:
		return "MESSAGE"
	default:
		return "NORMAL"
	}
}

// ParseVisibility interprets an attribute value as a visibility level,
// case-insensitively. The second result is false for unknown levels.
func ParseVisibility(value string) (Visibility, bool) {
	switch strings.ToUpper(value) {
	case "NORMAL":
		return VisibilityNormal, true
	case "TRANSIENT":
		return VisibilityTransient, true
	case "INVISIBLE":
		return VisibilityInvisible, true
	case "MESSAGE":
		return VisibilityMessage, true
	default:
		return VisibilityNormal, false
	}
}
