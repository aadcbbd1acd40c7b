// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: the package's collectors, registered once at import time via
// promauto — the same auto-registration style
// jinterlante1206-AleutianLocal's persistence.go uses for its backup
// duration histogram.

package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// bsNodesDiscovered and bsEdgesDiscovered record the size of every
	// behavioral space a C2/C3 build produces, broken down by whether the
	// build was filtered to a single observation (C3) or not (C2).
	bsNodesDiscovered = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fadiag_bspace_nodes_discovered",
		Help:    "Number of nodes in a behavioral space produced by a single build.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"filtered"})

	bsEdgesDiscovered = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fadiag_bspace_edges_discovered",
		Help:    "Number of edges in a behavioral space produced by a single build.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"filtered"})

	bsBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fadiag_bspace_build_duration_seconds",
		Help:    "Wall-clock time to build a behavioral space.",
		Buckets: prometheus.DefBuckets,
	}, []string{"filtered"})

	// pruneSurvivorRatio is survivors/pre-prune-nodes, in (0,1]; a ratio
	// near 0 flags a network whose behavioral space is mostly dead ends.
	pruneSurvivorRatio = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fadiag_prune_survivor_ratio",
		Help:    "Fraction of behavioral-space nodes surviving C4 pruning.",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	pruneDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fadiag_prune_duration_seconds",
		Help:    "Wall-clock time for C4 backward-reachability pruning.",
		Buckets: prometheus.DefBuckets,
	})

	// diagnosisLatency is keyed by task (rundb.Task values: T1-T5) so a
	// single diagnosis invocation's end-to-end cost can be told apart from
	// a standalone extract-only or build-only call.
	diagnosisLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fadiag_diagnosis_duration_seconds",
		Help:    "Wall-clock time for a diagnosis task, by task-matrix entry.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})
)
