// SPDX-License-Identifier: MIT
// File: prune.go
// Role: C4 — backward-reachability mark-and-sweep, then compaction into a
// fresh arena with consecutive integer node indices (spec.md §4.3).

package prune

import (
	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/network"
)

// Prune marks every node/edge of sp that does not lie on some path from
// sp.Initial to an acceptance node, removes them, and renames survivors
// 0, 1, 2, … in the order they appear in sp.Nodes. sp is used as scratch
// space (its PruneFlag fields are overwritten) and should not be reused
// after a call to Prune; the returned Space is an independent arena.
//
// Because every node already reachable in sp is, by construction (C2/C3),
// forward-reachable from sp.Initial, a pure backward walk from the
// acceptance nodes suffices: any node backward-reachable from an
// acceptance node necessarily has sp.Initial as an ancestor, so no
// separate forward pass is needed.
func Prune(sp *bspace.Space) (*bspace.Space, error) {
	if len(sp.Nodes) == 0 {
		return nil, ErrEmptySpace
	}

	acceptance := sp.Acceptance()
	if len(acceptance) == 0 {
		return nil, ErrEmptySpace
	}

	incoming := make([][]int, len(sp.Nodes))
	for ei, e := range sp.Edges {
		incoming[e.Target] = append(incoming[e.Target], ei)
	}

	for _, n := range sp.Nodes {
		n.PruneFlag = true
	}
	for _, e := range sp.Edges {
		e.PruneFlag = true
	}

	queue := make([]int, 0, len(acceptance))
	for _, a := range acceptance {
		sp.Nodes[a].PruneFlag = false
		queue = append(queue, a)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, ei := range incoming[v] {
			sp.Edges[ei].PruneFlag = false

			u := sp.Edges[ei].Source
			if sp.Nodes[u].PruneFlag {
				sp.Nodes[u].PruneFlag = false
				queue = append(queue, u)
			}
		}
	}

	return compact(sp)
}

// compact builds a fresh Space containing only the nodes/edges whose
// PruneFlag is false, renumbered 0, 1, 2, … in original discovery order.
func compact(sp *bspace.Space) (*bspace.Space, error) {
	newIndex := make([]int, len(sp.Nodes))
	for i := range newIndex {
		newIndex[i] = -1
	}

	out := &bspace.Space{
		Network:     sp.Network,
		Observation: append([]string(nil), sp.Observation...),
	}
	if sp.Observation != nil && out.Observation == nil {
		out.Observation = []string{}
	}

	for i, n := range sp.Nodes {
		if n.PruneFlag {
			continue
		}
		newIndex[i] = len(out.Nodes)
		out.Nodes = append(out.Nodes, &bspace.Node{
			StateVector:      append([]*network.State(nil), n.StateVector...),
			BufferVector:     append([]string(nil), n.BufferVector...),
			IsAccepting:      n.IsAccepting,
			ObservationIndex: n.ObservationIndex,
		})
	}

	for _, e := range sp.Edges {
		if e.PruneFlag {
			continue
		}
		src := newIndex[e.Source]
		tgt := newIndex[e.Target]
		edgeIdx := len(out.Edges)
		out.Edges = append(out.Edges, &bspace.Edge{
			Source:             src,
			Target:             tgt,
			Transition:         e.Transition,
			RelevanceLabel:     e.RelevanceLabel,
			ObservabilityLabel: e.ObservabilityLabel,
		})
		out.Nodes[src].Out = append(out.Nodes[src].Out, edgeIdx)
	}

	if len(out.Nodes) == 0 || newIndex[sp.Initial] < 0 {
		return nil, ErrEmptySpace
	}
	out.Initial = newIndex[sp.Initial]

	return out, nil
}
