// SPDX-License-Identifier: MIT
// File: types.go
// Role: the BS data model — Node, Edge, Space — as a plain integer-indexed
// arena. No construction logic lives here; see build.go.

package bspace

import (
	"fmt"

	"github.com/katalvlaran/fadiag/network"
)

// Node is a single joint configuration: one state per behavior (in the
// network's fixed behavior order) and one buffer content per link (in the
// network's fixed link order). PruneFlag is scratch space used by the
// prune package; it carries no meaning before C4 runs or after a Space has
// been compacted by it.
type Node struct {
	StateVector      []*network.State
	BufferVector     []string
	IsAccepting      bool
	ObservationIndex int
	PruneFlag        bool

	// Out holds the indices, into the owning Space's Edges slice, of this
	// node's outgoing edges, in discovery order.
	Out []int
}

// Edge is a single labeled transition firing from Source to Target (both
// Space node indices). Transition is always non-nil for edges produced by
// Build/BuildFiltered — bspace never synthesizes edges itself; that is
// extract's and closure's job on their own working copies.
type Edge struct {
	Source, Target     int
	Transition         *network.Transition
	RelevanceLabel     string
	ObservabilityLabel string
	PruneFlag          bool
}

// Space is the arena owning a behavioral space: every Node and Edge is
// referenced by its position in Nodes/Edges, never by pointer.
type Space struct {
	Network *network.Network
	Initial int
	Nodes   []*Node
	Edges   []*Edge

	// Observation is nil for an unfiltered space (C2) and the linear
	// observation used to build it otherwise (C3).
	Observation []string
}

// Acceptance returns the indices of every accepting node, in node order.
func (s *Space) Acceptance() []int {
	var out []int
	for i, n := range s.Nodes {
		if n.IsAccepting {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy of s: new Node and Edge values, independent
// Out/PruneFlag state, safe to mutate without affecting s. Per spec.md §5,
// C5/C6 must operate on such a copy so the original Space survives for
// reuse (C7 calls C6 once per entry node over the same BS).
func (s *Space) Clone() *Space {
	clone := &Space{
		Network:     s.Network,
		Initial:     s.Initial,
		Observation: append([]string(nil), s.Observation...),
		Nodes:       make([]*Node, len(s.Nodes)),
		Edges:       make([]*Edge, len(s.Edges)),
	}
	if s.Observation != nil && clone.Observation == nil {
		clone.Observation = []string{}
	}
	for i, n := range s.Nodes {
		clone.Nodes[i] = &Node{
			StateVector:      append([]*network.State(nil), n.StateVector...),
			BufferVector:     append([]string(nil), n.BufferVector...),
			IsAccepting:      n.IsAccepting,
			ObservationIndex: n.ObservationIndex,
			PruneFlag:        n.PruneFlag,
			Out:              append([]int(nil), n.Out...),
		}
	}
	for i, e := range s.Edges {
		ec := *e
		clone.Edges[i] = &ec
	}

	return clone
}

// String is a minimal textual summary for debugging and CLI output — not
// a serialization format. DOT export and on-disk persistence of a Space
// are out of scope (spec.md §1).
func (s *Space) String() string {
	return fmt.Sprintf("bspace.Space{nodes:%d edges:%d accepting:%d initial:%d}",
		len(s.Nodes), len(s.Edges), len(s.Acceptance()), s.Initial)
}
