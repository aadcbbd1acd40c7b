// SPDX-License-Identifier: MIT
//
// Package bspace builds the behavioral space (BS) of a frozen network: the
// reachability graph over joint configurations (state vector plus link
// buffer contents), with an optional linear-observation filter (spec.md
// §4.1/§4.2, components C2/C3).
//
// A Space is an arena: nodes and edges are referenced by integer index, not
// by pointer or name, per spec.md §9's "arena-owning graph with integer
// indices" design note. This keeps deep-copying (required before C5/C6
// mutate a working copy) a matter of copying two slices, and keeps node
// deduplication during construction a single map lookup on a value-equality
// key rather than pointer comparison.
//
// Construction explores depth-first using an explicit LIFO stack rather
// than recursion, matching spec.md §5's requirement that the stack
// discipline be preserved — it is observable in the concrete discovery
// order baked into a BS's node indices, which in turn shapes the textual
// (not just semantic) form of regexes extracted downstream.
package bspace
