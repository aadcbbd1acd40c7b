// SPDX-License-Identifier: MIT
// File: errors.go

package rundb

import "errors"

// ErrRunNotFound indicates no run with the given id exists in the cache.
var ErrRunNotFound = errors.New("rundb: run not found")
