// SPDX-License-Identifier: MIT
package main

import "errors"

// ErrNotImplemented is returned for any task name outside the T1-T5 task
// matrix spec.md §6 defines.
var ErrNotImplemented = errors.New("fadiag: task not implemented")
