// SPDX-License-Identifier: MIT
// File: types.go

package rundb

import "time"

// Task names the task-matrix entry (spec.md §6, T1–T5) a Run recorded.
type Task string

const (
	TaskBuildBS        Task = "T1" // C2 → C4: build and prune the unfiltered behavioral space
	TaskPrune          Task = "T2" // C3 → C4: build and prune the observation-filtered space
	TaskExtract        Task = "T3" // C5: direct extraction
	TaskBuildDiagnoser Task = "T4" // C7: diagnoser builder
	TaskDiagnose       Task = "T5" // C8: linear diagnosis
)

// Run is one cached task invocation: its identity, what it was run
// against, and the regex it produced. Diagnoser-shaped results (T1/T2/T4)
// are not themselves serializable (bspace.Space and diagnoser.Diagnoser
// carry *network.Transition pointers back into a specific in-memory
// network.Network), so Run caches only the reusable textual artifact a
// run ultimately produces — the diagnosis regex — keyed by what was asked
// for.
type Run struct {
	ID          string    `json:"id"`
	NetworkName string    `json:"network_name"`
	Task        Task      `json:"task"`
	Observation []string  `json:"observation,omitempty"`
	Diagnosis   string    `json:"diagnosis"`
	CreatedAt   time.Time `json:"created_at"`
}
