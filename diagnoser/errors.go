// SPDX-License-Identifier: MIT
// File: errors.go

package diagnoser

import "errors"

// ErrDanglingExit is returned by Build if an observable BS edge leaving a
// closure exit node targets a node that is not itself an entry node.
// Build never produces this for a BS that came out of bspace/prune — every
// observable edge's target is by definition an entry node (spec.md §4.5) —
// so seeing it means the Space passed in was not closure.EntryNodes-
// consistent (e.g. hand-assembled or corrupted).
var ErrDanglingExit = errors.New("diagnoser: observable edge targets a node that is not an entry node")
