// SPDX-License-Identifier: MIT
//
// Package prune implements the behavioral-space pruner (spec.md §4.3,
// component C4): a backward-reachability mark-and-sweep from every
// acceptance node, followed by renaming survivors to consecutive integers
// in discovery order.
//
// Grounded on algorithms/dfs.go's hook-driven, already-visited-skips-re-
// enqueue traversal shape, run backward (over incoming edges) and seeded
// from every acceptance node instead of a single source — the "already-
// kept nodes are not re-enqueued" rule spec.md §4.3 calls out is exactly
// that visited-set discipline, which is also what guarantees termination
// on the behavioral space's cycles.
package prune
