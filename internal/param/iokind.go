// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package param

import "strings"

// IOKind classifies a parameter as consumed by the script, produced by
// it, or both.
type IOKind int

const (
	Input IOKind = iota
	Output
	Both
)

// String returns the directive keyword for the kind.
func (k IOKind) String() string {
	switch k {
	case Output:
		return "OUTPUT"
	case Both:
		return "BOTH"
	default:
		return "INPUT"
	}
}

// ParseIOKind interprets a directive token as an I/O kind keyword. The
// match is case-insensitive. The second result is false when the token
// is not one of the recognised keywords.
func ParseIOKind(token string) (IOKind, bool) {
	switch strings.ToUpper(token) {
	case "INPUT":
		return Input, true
	case "OUTPUT":
		return Output, true
	case "BOTH":
		return Both, true
	default:
		return Input, false
	}
}
