// SPDX-License-Identifier: MIT
// File: closure.go
// Role: C6a — entry-node discovery and the silent-closure DFS, per
// spec.md §4.5. The traversal follows bspace.build's explicit-stack
// discipline rather than recursion, for the same reason: the stack order
// is part of what makes exploration deterministic and auditable.

package closure

import "github.com/katalvlaran/fadiag/bspace"

// EntryNodes returns every node of sp that a closure must be rooted at: the
// initial node, plus the target of every observable edge, each exactly
// once and in first-discovery order. Per spec.md §4.7, the diagnoser is
// built from one closure per entry node.
func EntryNodes(sp *bspace.Space) []int {
	seen := map[int]bool{sp.Initial: true}
	order := []int{sp.Initial}

	for _, e := range sp.Edges {
		if e.ObservabilityLabel == "" {
			continue
		}
		if seen[e.Target] {
			continue
		}
		seen[e.Target] = true
		order = append(order, e.Target)
	}

	return order
}

// Build computes the silent closure of sp rooted at entry: every node
// reachable by following unobservable edges only, plus which of those
// nodes are exits (have an observable outgoing edge) or acceptance nodes
// (BS-accepting or an exit). sp is not mutated.
func Build(sp *bspace.Space, entry int) *Closure {
	visited := map[int]bool{entry: true}
	nodes := []int{entry}
	var edges []int

	stack := []int{entry}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ei := range sp.Nodes[cur].Out {
			e := sp.Edges[ei]
			if e.ObservabilityLabel != "" {
				continue
			}
			edges = append(edges, ei)
			if visited[e.Target] {
				continue
			}
			visited[e.Target] = true
			nodes = append(nodes, e.Target)
			stack = append(stack, e.Target)
		}
	}

	isExit := make(map[int]bool, len(nodes))
	for _, nid := range nodes {
		for _, ei := range sp.Nodes[nid].Out {
			if sp.Edges[ei].ObservabilityLabel != "" {
				isExit[nid] = true
				break
			}
		}
	}

	var exitNodes, acceptanceNodes []int
	for _, nid := range nodes {
		if isExit[nid] {
			exitNodes = append(exitNodes, nid)
		}
		if sp.Nodes[nid].IsAccepting || isExit[nid] {
			acceptanceNodes = append(acceptanceNodes, nid)
		}
	}

	return &Closure{
		Entry:           entry,
		Nodes:           nodes,
		Edges:           edges,
		ExitNodes:       exitNodes,
		AcceptanceNodes: acceptanceNodes,
	}
}
