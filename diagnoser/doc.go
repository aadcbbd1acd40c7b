// SPDX-License-Identifier: MIT
//
// Package diagnoser implements the diagnoser builder (spec.md §4.7,
// component C7) and the linear diagnoser walk (spec.md §4.8, component
// C8). A Diagnoser is a compiled index over a pruned behavioral space: one
// node per silent closure (carrying that closure's subscripted
// decorations and overall diagnosis), one edge per observable BS
// transition leaving a closure's exit nodes, relabeled with the
// concatenation of the exit's decoration and the transition's own
// relevance. Walking a Diagnoser under a linear observation (C8) is then a
// single forward pass maintaining a frontier of (node, accumulated-regex)
// pairs, equivalent in the result it produces to running C5 directly over
// the observation-filtered space (spec.md §8 invariant I5) but reusable
// across many observations without rebuilding the closure structure.
package diagnoser
