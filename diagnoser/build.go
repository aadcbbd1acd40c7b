// SPDX-License-Identifier: MIT
// File: build.go
// Role: C7 — diagnoser builder, per spec.md §4.7.

package diagnoser

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/closure"
	"github.com/katalvlaran/fadiag/relevance"
)

// Build compiles a pruned behavioral space into a Diagnoser: one node per
// entry node's silent closure, one edge per observable BS transition
// leaving a closure's exit nodes. sp is not mutated.
//
// Each entry node's silent closure (C6a/C6b) depends only on sp and that
// entry node, so the per-entry closures are computed concurrently via
// errgroup — sp.Clone is not needed, since closure.Build/Extract only read
// sp and write to their own working sgraph.
func Build(sp *bspace.Space) (*Diagnoser, error) {
	entries := closure.EntryNodes(sp)

	decorated := make([]*closure.Closure, len(entries))
	g := new(errgroup.Group)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			decorated[i] = closure.Extract(sp, closure.Build(sp, e))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Diagnoser{}
	nodeOf := make(map[int]int, len(entries))
	for i, e := range entries {
		idx := len(d.Nodes)
		d.Nodes = append(d.Nodes, &Node{
			Entry:     e,
			Closure:   decorated[i],
			Accepting: decorated[i].HasDiagnosis,
		})
		nodeOf[e] = idx
	}
	d.Initial = nodeOf[sp.Initial]

	for _, x := range d.Nodes {
		for _, u := range x.Closure.ExitNodes {
			for _, ei := range sp.Nodes[u].Out {
				edge := sp.Edges[ei]
				if edge.ObservabilityLabel == "" {
					continue
				}

				y, ok := nodeOf[edge.Target]
				if !ok {
					return nil, fmt.Errorf("node %d: %w", edge.Target, ErrDanglingExit)
				}

				decoration := x.Closure.Decorations[u] // "" if absent, per spec.md §4.7
				label := relevance.Concat(decoration, edge.RelevanceLabel)

				xi := nodeOf[x.Entry]
				edgeIdx := len(d.Edges)
				d.Edges = append(d.Edges, &Edge{
					Source:             xi,
					Target:             y,
					ObservabilityLabel: edge.ObservabilityLabel,
					RelevanceLabel:     label,
				})
				d.Nodes[xi].Out = append(d.Nodes[xi].Out, edgeIdx)
			}
		}
	}

	return d, nil
}
