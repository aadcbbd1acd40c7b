// SPDX-License-Identifier: MIT
// Package: fadiag/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy:
//   - Only sentinel variables are exported.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Context (the offending name) is attached with %w at the call site,
//     never baked into the sentinel text itself.

package network

import "errors"

// ErrUnresolvedReference indicates a name (state, link, behavior, or initial
// state) used by the network does not resolve to an existing entity.
var ErrUnresolvedReference = errors.New("network: unresolved reference")

// ErrObservationIncompatible indicates a label of a linear observation is not
// the observability label of any transition in the network.
var ErrObservationIncompatible = errors.New("network: observation label incompatible with network")

// ErrDuplicateName indicates a behavior, state (within a behavior), link, or
// transition (within a behavior) name was added twice.
var ErrDuplicateName = errors.New("network: duplicate name")

// ErrAlreadyFrozen indicates a mutating call was made after Freeze.
var ErrAlreadyFrozen = errors.New("network: network is frozen")

// ErrNoInitialState indicates Freeze was called on a behavior that never had
// SetInitialState invoked (violates invariant L2).
var ErrNoInitialState = errors.New("network: behavior has no initial state")
