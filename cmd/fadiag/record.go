// SPDX-License-Identifier: MIT
// File: record.go
// Role: persists one task invocation's result into the run cache under a
// freshly minted run id.

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/fadiag/rundb"
)

// recordRun stores run in the cache under a new uuid and returns the id.
// A nil db (cache never opened) is a no-op, not an error.
func recordRun(task rundb.Task, networkName string, observation []string, diagnosis string) (string, error) {
	if db == nil {
		return "", nil
	}
	if err := checkKnownTask(task); err != nil {
		return "", err
	}

	run := rundb.Run{
		ID:          uuid.NewString(),
		NetworkName: networkName,
		Task:        task,
		Observation: observation,
		Diagnosis:   diagnosis,
		CreatedAt:   time.Now().UTC(),
	}

	if err := db.Put(run); err != nil {
		log.Error().Err(err).Str("run_id", run.ID).Str("network", networkName).Msg("failed to cache run")

		return "", fmt.Errorf("fadiag: caching run: %w", err)
	}

	return run.ID, nil
}
