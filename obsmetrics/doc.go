// SPDX-License-Identifier: MIT
//
// Package obsmetrics instruments the diagnosis pipeline with Prometheus
// collectors: how many nodes/edges a behavioral-space build discovered
// and how long it took, pruning's survivor ratio, and per-task diagnosis
// latency.
//
// Grounded on jinterlante1206-AleutianLocal's promauto-registered
// collectors (services/trace/graph/hld_*.go,
// services/trace/agent/mcts/crs/persistence.go's
// backupDurationHistogram), this package deliberately instruments at the
// call boundary — a caller wraps a bspace.Build/prune.Prune/diagnoser.Walk
// call with the matching Observe* function — rather than threading an
// OnVisit-style hook callback through bspace/prune/diagnoser's own
// traversal loops the way algorithms.DFS's OnVisit does. Those packages'
// DFS/BFS-shaped loops are the part of this repository spec.md's
// determinism invariants (I1-I6) bind most tightly; keeping them free of
// an optional, side-effecting hook removes one more thing a future change
// there needs to reason about. See DESIGN.md for the full tradeoff.
package obsmetrics
