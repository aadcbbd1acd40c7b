// SPDX-License-Identifier: MIT
// File: extract.go
// Role: C5 — normalization, then the series ≻ parallel ≻ intermediate
// reduction loop, per spec.md §4.4.

package extract

import (
	"sort"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/relevance"
)

// Extract computes the relevance regex of the pruned behavioral space sp.
// sp is not mutated.
func Extract(sp *bspace.Space) (string, error) {
	g := newGraph(sp)
	normalize(g)

	for len(g.aliveEdgeIDs()) > 1 {
		if chain, v0, vk, ok := findSeriesChain(g); ok {
			collapseSeries(g, chain, v0, vk)
			continue
		}
		if u, v, edges, ok := findParallel(g); ok {
			collapseParallel(g, u, v, edges)
			continue
		}
		w, ok := pickIntermediateNode(g)
		if !ok {
			break
		}
		collapseIntermediate(g, w)
	}

	return finalLabel(g), nil
}

// normalize applies spec.md §4.4's normalization: a fresh source if the
// initial node has incoming edges, and a fresh accepting sink if more than
// one acceptance node survives or the sole one still has an outgoing edge.
func normalize(g *egraph) {
	if len(g.inEdges(g.initial)) > 0 {
		n0 := g.addNode(false)
		g.addEdge(n0, g.initial, "")
		g.initial = n0
	}

	var acceptance []int
	for _, id := range g.aliveNodeIDs() {
		if g.nodeAccepting[id] {
			acceptance = append(acceptance, id)
		}
	}

	switch {
	case len(acceptance) > 1 || (len(acceptance) == 1 && len(g.outEdges(acceptance[0])) > 0):
		nq := g.addNode(true)
		for _, a := range acceptance {
			g.nodeAccepting[a] = false
			g.addEdge(a, nq, "")
		}
		g.final = nq
	case len(acceptance) == 1:
		g.final = acceptance[0]
	default:
		g.final = -1
	}
}

// findSeriesChain finds the maximal chain containing some interior node
// (exactly one incoming, one outgoing edge, neither a self-loop), per
// spec.md §4.4 rule 1. Returns the chain's edges in order and its two
// endpoints.
func findSeriesChain(g *egraph) (chain []int, v0, vk int, ok bool) {
	for _, v := range g.aliveNodeIDs() {
		ins := g.inEdges(v)
		outs := g.outEdges(v)
		if len(ins) != 1 || len(outs) != 1 {
			continue
		}
		inE, outE := ins[0], outs[0]
		if g.edgeSrc[inE] == v {
			continue // self-loop through v; not a plain series interior
		}

		edges := []int{inE, outE}

		cur := g.edgeSrc[inE]
		for {
			cins, couts := g.inEdges(cur), g.outEdges(cur)
			if len(cins) != 1 || len(couts) != 1 {
				break
			}
			ce := cins[0]
			if g.edgeSrc[ce] == cur {
				break
			}
			edges = append([]int{ce}, edges...)
			cur = g.edgeSrc[ce]
		}
		v0 = cur

		cur2 := g.edgeTgt[outE]
		for {
			cins, couts := g.inEdges(cur2), g.outEdges(cur2)
			if len(cins) != 1 || len(couts) != 1 {
				break
			}
			ne := couts[0]
			if g.edgeTgt[ne] == cur2 {
				break
			}
			edges = append(edges, ne)
			cur2 = g.edgeTgt[ne]
		}
		vk = cur2

		return edges, v0, vk, true
	}

	return nil, 0, 0, false
}

func collapseSeries(g *egraph, chain []int, v0, vk int) {
	label := g.edgeLabel[chain[0]]
	for _, e := range chain[1:] {
		label = relevance.Concat(label, g.edgeLabel[e])
	}

	for i := 0; i < len(chain)-1; i++ {
		g.removeNode(g.edgeTgt[chain[i]])
	}

	g.addEdge(v0, vk, label)
}

// findParallel finds the lowest-id (u, v) pair with two or more alive
// edges from u to v, per spec.md §4.4 rule 2.
func findParallel(g *egraph) (u, v int, edges []int, ok bool) {
	for _, n := range g.aliveNodeIDs() {
		byTarget := make(map[int][]int)
		for _, e := range g.outEdges(n) {
			t := g.edgeTgt[e]
			byTarget[t] = append(byTarget[t], e)
		}

		var targets []int
		for t := range byTarget {
			targets = append(targets, t)
		}
		sort.Ints(targets)

		for _, t := range targets {
			if len(byTarget[t]) >= 2 {
				return n, t, byTarget[t], true
			}
		}
	}

	return 0, 0, nil, false
}

func collapseParallel(g *egraph, u, v int, edges []int) {
	label := g.edgeLabel[edges[0]]
	for _, e := range edges[1:] {
		label = relevance.Alternate(label, g.edgeLabel[e])
	}
	for _, e := range edges {
		g.removeEdge(e)
	}

	g.addEdge(u, v, label)
}

// pickIntermediateNode picks the lowest-id alive node other than the
// current initial/final, per spec.md §4.4 rule 3.
func pickIntermediateNode(g *egraph) (int, bool) {
	for _, n := range g.aliveNodeIDs() {
		if n == g.initial || n == g.final {
			continue
		}
		return n, true
	}

	return 0, false
}

func collapseIntermediate(g *egraph, w int) {
	var selfLoops, realIns, realOuts []int
	for _, e := range g.outEdges(w) {
		if g.edgeTgt[e] == w {
			selfLoops = append(selfLoops, e)
		} else {
			realOuts = append(realOuts, e)
		}
	}
	for _, e := range g.inEdges(w) {
		if g.edgeSrc[e] != w {
			realIns = append(realIns, e)
		}
	}

	rLoop := ""
	for i, e := range selfLoops {
		if i == 0 {
			rLoop = g.edgeLabel[e]
		} else {
			rLoop = relevance.Alternate(rLoop, g.edgeLabel[e])
		}
	}

	for _, in := range realIns {
		x, rIn := g.edgeSrc[in], g.edgeLabel[in]
		for _, out := range realOuts {
			y, rOut := g.edgeTgt[out], g.edgeLabel[out]
			g.addEdge(x, y, relevance.Distribute(rIn, rLoop, rOut))
		}
	}

	g.removeNode(w)
}

func finalLabel(g *egraph) string {
	alive := g.aliveEdgeIDs()
	if len(alive) == 0 {
		return ""
	}

	return g.edgeLabel[alive[0]]
}
