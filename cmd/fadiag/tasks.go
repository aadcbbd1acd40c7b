// SPDX-License-Identifier: MIT
// File: tasks.go
// Role: the task-entry layer — spec.md §6's T1-T5 task matrix, wired
// straight to the core packages and instrumented via obsmetrics. Kept
// free of cobra/zerolog/rundb so it can be exercised directly in tests.

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/diagnoser"
	"github.com/katalvlaran/fadiag/extract"
	"github.com/katalvlaran/fadiag/network"
	"github.com/katalvlaran/fadiag/obsmetrics"
	"github.com/katalvlaran/fadiag/prune"
	"github.com/katalvlaran/fadiag/rundb"
)

// RunT1 builds and prunes the unfiltered behavioral space of net (C2 → C4).
func RunT1(net *network.Network) (*bspace.Space, error) {
	taskStart := time.Now()

	buildStart := time.Now()
	sp, err := bspace.Build(net)
	if err != nil {
		return nil, fmt.Errorf("fadiag: T1 build: %w", err)
	}
	obsmetrics.ObserveBuild(sp, false, time.Since(buildStart))

	pruneStart := time.Now()
	pruned, err := prune.Prune(sp)
	if err != nil {
		return nil, fmt.Errorf("fadiag: T1 prune: %w", err)
	}
	obsmetrics.ObservePrune(sp, pruned, time.Since(pruneStart))
	obsmetrics.ObserveDiagnosis(string(rundb.TaskBuildBS), time.Since(taskStart))

	return pruned, nil
}

// RunT2 builds and prunes the observation-filtered behavioral space of net
// (C3 → C4).
func RunT2(net *network.Network, observation []string) (*bspace.Space, error) {
	taskStart := time.Now()

	buildStart := time.Now()
	sp, err := bspace.BuildFiltered(net, observation)
	if err != nil {
		return nil, fmt.Errorf("fadiag: T2 build filtered: %w", err)
	}
	obsmetrics.ObserveBuild(sp, true, time.Since(buildStart))

	pruneStart := time.Now()
	pruned, err := prune.Prune(sp)
	if err != nil {
		return nil, fmt.Errorf("fadiag: T2 prune: %w", err)
	}
	obsmetrics.ObservePrune(sp, pruned, time.Since(pruneStart))
	obsmetrics.ObserveDiagnosis(string(rundb.TaskPrune), time.Since(taskStart))

	return pruned, nil
}

// RunT3 extracts a diagnosis regex directly from a pruned,
// observation-filtered space (C5).
func RunT3(prunedFiltered *bspace.Space) (string, error) {
	start := time.Now()
	regex, err := extract.Extract(prunedFiltered)
	obsmetrics.ObserveDiagnosis(string(rundb.TaskExtract), time.Since(start))
	if err != nil {
		return "", fmt.Errorf("fadiag: T3 extract: %w", err)
	}

	return regex, nil
}

// RunT4 compiles a pruned (unfiltered) space into a Diagnoser (C7).
func RunT4(prunedBS *bspace.Space) (*diagnoser.Diagnoser, error) {
	start := time.Now()
	d, err := diagnoser.Build(prunedBS)
	obsmetrics.ObserveDiagnosis(string(rundb.TaskBuildDiagnoser), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fadiag: T4 build diagnoser: %w", err)
	}

	return d, nil
}

// RunT5 walks a linear observation over a Diagnoser (C8).
func RunT5(d *diagnoser.Diagnoser, observation []string) string {
	start := time.Now()
	regex := diagnoser.Walk(d, observation)
	obsmetrics.ObserveDiagnosis(string(rundb.TaskDiagnose), time.Since(start))

	return regex
}
