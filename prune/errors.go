// SPDX-License-Identifier: MIT
package prune

import "errors"

// ErrEmptySpace is returned when a behavioral space is empty before pruning
// begins, or becomes empty (no surviving acceptance node) after it — the
// caller supplied an input whose reachable behavior cannot reach
// acceptance (spec.md §4.3).
var ErrEmptySpace = errors.New("prune: space is empty")
