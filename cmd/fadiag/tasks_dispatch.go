// SPDX-License-Identifier: MIT
// File: tasks_dispatch.go
// Role: resolves a rundb.Task name (as might be replayed from a cached
// Run, or supplied by an external driver) to the T1-T5 entry point it
// names; anything outside that matrix is ErrNotImplemented.

package main

import (
	"fmt"

	"github.com/katalvlaran/fadiag/rundb"
)

// KnownTask reports whether task names one of the T1-T5 task-matrix
// entries this binary implements.
func KnownTask(task rundb.Task) bool {
	switch task {
	case rundb.TaskBuildBS, rundb.TaskPrune, rundb.TaskExtract, rundb.TaskBuildDiagnoser, rundb.TaskDiagnose:
		return true
	default:
		return false
	}
}

// checkKnownTask is the task-entry layer's precondition: every
// cobra-wired subcommand corresponds to exactly one of T1-T5, so a task
// name reaching this point that isn't one of them (e.g. a stale or
// forward-incompatible cached Run) is rejected with ErrNotImplemented
// rather than silently ignored.
func checkKnownTask(task rundb.Task) error {
	if !KnownTask(task) {
		return fmt.Errorf("fadiag: task %q: %w", task, ErrNotImplemented)
	}

	return nil
}
