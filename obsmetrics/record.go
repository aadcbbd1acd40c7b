// SPDX-License-Identifier: MIT
// File: record.go
// Role: call-boundary recording functions — a caller wraps its own
// bspace.Build/BuildFiltered, prune.Prune, or diagnoser.Walk invocation
// with the matching Observe* call.

package obsmetrics

import (
	"strconv"
	"time"

	"github.com/katalvlaran/fadiag/bspace"
)

// ObserveBuild records the size of a freshly built behavioral space and
// how long the build took. filtered should be true for a BuildFiltered
// (C3) call and false for a Build (C2) call.
func ObserveBuild(sp *bspace.Space, filtered bool, duration time.Duration) {
	label := strconv.FormatBool(filtered)
	bsNodesDiscovered.WithLabelValues(label).Observe(float64(len(sp.Nodes)))
	bsEdgesDiscovered.WithLabelValues(label).Observe(float64(len(sp.Edges)))
	bsBuildDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// ObservePrune records the survivor ratio and duration of a C4 pruning
// pass. before is the space as it stood prior to Prune; after is its
// result. before must have at least one node — ObservePrune is meant to
// be called only once Prune has already succeeded.
func ObservePrune(before, after *bspace.Space, duration time.Duration) {
	if len(before.Nodes) == 0 {
		return
	}
	ratio := float64(len(after.Nodes)) / float64(len(before.Nodes))
	pruneSurvivorRatio.Observe(ratio)
	pruneDuration.Observe(duration.Seconds())
}

// ObserveDiagnosis records the wall-clock duration of one task-matrix
// invocation (rundb.Task's T1-T5 values, passed as a plain string to keep
// this package independent of rundb).
func ObserveDiagnosis(task string, duration time.Duration) {
	diagnosisLatency.WithLabelValues(task).Observe(duration.Seconds())
}
