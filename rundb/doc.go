// SPDX-License-Identifier: MIT
//
// Package rundb is the on-disk cache of run identifiers spec.md §1 names
// as an external collaborator ("on-disk caching of run identifiers") and
// §6 lists as a contract-only concern: a run identifier (a
// github.com/google/uuid v4) maps to the task that produced it, the
// network name and observation it ran against, and the diagnosis regex it
// produced, so a prior run can be looked up by its id (DB.Get).
//
// Backed by github.com/dgraph-io/badger/v4, grounded on
// jinterlante1206-AleutianLocal's use of the same library for its own
// run/session persistence (services/trace/agent/mcts/crs/journal.go):
// that file wraps badger behind a project-internal abstraction this
// module cannot import, so rundb talks to badger/v4's own transaction API
// directly instead, at the same open-a-directory/update-in-a-
// transaction/iterate-over-all-keys granularity that file's wrapper
// exposes.
package rundb
