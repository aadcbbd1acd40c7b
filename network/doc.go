// SPDX-License-Identifier: MIT
//
// Package network defines the static, immutable-once-built data model of an
// FA network: Behaviors (local automata), States, Transitions (with
// required/output events and observability/relevance labels), and Links
// (single-slot event channels between behaviors).
//
// A Network is assembled incrementally — AddBehavior, then AddLink, then
// per-behavior AddState/SetInitialState/AddTransition — mirroring the
// dependency order the original construction procedure uses so every
// cross-reference is checked against an already-existing referent. Once
// Freeze is called the Network is read-only and safe to share across any
// number of concurrent bspace/prune/extract/closure/diagnoser computations.
//
// Invariants:
//
//	L1 — every link reference in any transition resolves to a link of the
//	     network; every state reference resolves to a state of the same
//	     behavior.
//	L2 — the initial state of each behavior exists in that behavior.
//
// Errors:
//
//	ErrUnresolvedReference   — a name does not resolve (state/link/behavior).
//	ErrObservationIncompatible — a linear-observation label matches no
//	                             transition's observability.
package network
