// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package param provides the typed metadata model for a single script
// parameter. Its core purpose is to give the directive parser a
// strongly-typed target to populate, and the pre-execution pipeline a
// stable contract to read.
//
// # Core Concepts
//
//   - Item: the metadata record for one declared input or output of a
//     script. It carries the parameter's name, its resolved cty type, its
//     I/O kind, and the optional behavioural attributes recognised by the
//     directive grammar (label, bounds, choices, persistence flags, and
//     so on).
//
//   - IOKind: whether an item is consumed by the script, produced by it,
//     or both. A two-token directive defaults to Input.
//
//   - Visibility: a UI hint controlling how prominently an input should
//     be presented when values are harvested interactively.
//
// Items are created once during metadata extraction and are not mutated
// afterwards; the concrete value bound to a parameter for a given run
// lives on the run's module, never on the Item itself.
package param
