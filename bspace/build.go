// SPDX-License-Identifier: MIT
// File: build.go
// Role: C2 (Build) and C3 (BuildFiltered) — DFS reachability over joint
// state × link-buffer contents, with C3 additionally gating transitions on
// a linear observation and tagging nodes with an observation index.
// Grounded on algorithms/dfs.go's hook-driven traversal shape, generalized
// from a visited-set-over-a-fixed-vertex-set walk to one that discovers
// its vertex set (the joint configuration space) as it goes; the explicit
// stack replaces that recursion so the LIFO order spec.md §5
// requires is visible and controllable in one place.

package bspace

import (
	"github.com/katalvlaran/fadiag/network"
)

// Build explores the full, unfiltered behavioral space of net (C2). net
// must already be frozen.
func Build(net *network.Network) (*Space, error) {
	return build(net, nil)
}

// BuildFiltered explores only the portion of the behavioral space whose
// observable labels prefix observation (C3). Every distinct label in
// observation must be the observability label of some transition in net;
// otherwise BuildFiltered fails with network.ErrObservationIncompatible
// before any construction begins.
func BuildFiltered(net *network.Network, observation []string) (*Space, error) {
	if err := net.CheckObservation(observation); err != nil {
		return nil, err
	}

	return build(net, observation)
}

// build is the shared DFS engine. observation == nil selects C2 semantics;
// a non-nil (possibly empty) slice selects C3 semantics.
func build(net *network.Network, observation []string) (*Space, error) {
	behaviors := net.Behaviors()
	links := net.Links()

	linkIndex := make(map[*network.Link]int, len(links))
	for i, l := range links {
		linkIndex[l] = i
	}

	initStates := make([]*network.State, len(behaviors))
	for i, b := range behaviors {
		initStates[i] = b.Initial()
	}
	initBuffers := make([]string, len(links))

	filtered := observation != nil
	initAccepting := allEmpty(initBuffers) && (!filtered || len(observation) == 0)

	s := &Space{Network: net, Observation: observation}
	index := make(map[string]int)

	addNode := func(stateVector []*network.State, bufferVector []string, isAccepting bool, observationIndex int) (int, bool) {
		key := nodeKey(stateVector, bufferVector, isAccepting, observationIndex)
		if i, ok := index[key]; ok {
			return i, false
		}
		n := &Node{
			StateVector:      stateVector,
			BufferVector:     bufferVector,
			IsAccepting:      isAccepting,
			ObservationIndex: observationIndex,
		}
		i := len(s.Nodes)
		s.Nodes = append(s.Nodes, n)
		index[key] = i

		return i, true
	}

	s.Initial, _ = addNode(initStates, initBuffers, initAccepting, 0)

	stack := []int{s.Initial}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]

		n := s.Nodes[cur]
		for _, b := range behaviors {
			curState := n.StateVector[b.Index]
			for _, t := range b.Transitions() {
				if t.From != curState {
					continue
				}
				if filtered && !observableFire(t, n.ObservationIndex, observation) {
					continue
				}

				newStates, newBuffers, ok := fire(n, b, t, linkIndex)
				if !ok {
					continue
				}

				newObsIndex := n.ObservationIndex
				if filtered && !t.Silent() {
					newObsIndex++
				}
				newAccepting := allEmpty(newBuffers) && (!filtered || newObsIndex == len(observation))

				targetIdx, isNew := addNode(newStates, newBuffers, newAccepting, newObsIndex)

				edgeIdx := len(s.Edges)
				s.Edges = append(s.Edges, &Edge{
					Source:             cur,
					Target:             targetIdx,
					Transition:         t,
					RelevanceLabel:     t.Relevance,
					ObservabilityLabel: t.Observability,
				})
				n.Out = append(n.Out, edgeIdx)

				if isNew {
					stack = append(stack, targetIdx)
				}
			}
		}
	}

	return s, nil
}

// observableFire reports whether t may fire given the predecessor's
// observation index and the target observation, per spec.md §4.2: a
// transition may fire if it is silent, or if it is observable and its
// label is exactly the next label the observation expects.
func observableFire(t *network.Transition, observationIndex int, observation []string) bool {
	if t.Silent() {
		return true
	}

	return observationIndex < len(observation) && t.Observability == observation[observationIndex]
}

// fire attempts to fire t from node n, belonging to behavior b, per
// spec.md §4.1 steps 1-3. ok is false if a required event is absent or an
// output slot is already occupied.
func fire(n *Node, b *network.Behavior, t *network.Transition, linkIndex map[*network.Link]int) ([]*network.State, []string, bool) {
	buffers := append([]string(nil), n.BufferVector...)

	if t.RequiredEvent != nil {
		li := linkIndex[t.RequiredEvent.Link]
		if buffers[li] != t.RequiredEvent.Event {
			return nil, nil, false
		}
		buffers[li] = ""
	}

	for _, out := range t.OutputEvents {
		li := linkIndex[out.Link]
		if buffers[li] != "" {
			return nil, nil, false
		}
	}
	for _, out := range t.OutputEvents {
		li := linkIndex[out.Link]
		buffers[li] = out.Event
	}

	states := append([]*network.State(nil), n.StateVector...)
	states[b.Index] = t.To

	return states, buffers, true
}

func allEmpty(buffers []string) bool {
	for _, b := range buffers {
		if b != "" {
			return false
		}
	}

	return true
}
