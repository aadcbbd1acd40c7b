// SPDX-License-Identifier: MIT
// File: subscripted.go
// Role: C6b — subscripted regex extraction over a silent closure, per
// spec.md §4.6. Structurally this is extract's series ≻ parallel ≻
// intermediate loop (extract/extract.go) generalized so each surviving
// edge remembers which acceptance node's decoration it represents.

package closure

import (
	"sort"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/relevance"
)

// Extract returns a copy of cl with Decorations, Diagnosis and
// HasDiagnosis filled in. sp and cl are not mutated.
func Extract(sp *bspace.Space, cl *Closure) *Closure {
	g := newSGraph(sp, cl)
	normalize(g, cl)

	for moreThanTwoNodes(g) || hasDuplicateSubscriptGroup(g) {
		if chain, v0, vk, ok := findEligibleSeriesChain(g); ok {
			collapseSeriesSubscripted(g, chain, v0, vk)
			continue
		}
		if u, v, edges, ok := findEligibleParallel(g); ok {
			collapseParallelSubscripted(g, u, v, edges)
			continue
		}
		w, ok := pickIntermediateNode(g)
		if !ok {
			break
		}
		collapseIntermediateSubscripted(g, w)
	}

	decorations := make(map[int]string)
	for _, ei := range g.aliveEdgeIDs() {
		sigma := g.edgeSubscript[ei]
		if sigma == noSubscript {
			continue
		}
		decorations[sigma] = g.edgeLabel[ei]
	}

	out := &Closure{
		Entry:           cl.Entry,
		Nodes:           cl.Nodes,
		Edges:           cl.Edges,
		ExitNodes:       cl.ExitNodes,
		AcceptanceNodes: cl.AcceptanceNodes,
		Decorations:     decorations,
	}

	first := true
	for _, a := range cl.AcceptanceNodes {
		if !sp.Nodes[a].IsAccepting {
			continue
		}
		d := decorations[a]
		out.HasDiagnosis = true
		if first {
			out.Diagnosis = d
			first = false
		} else {
			out.Diagnosis = relevance.Alternate(out.Diagnosis, d)
		}
	}

	return out
}

// normalize applies spec.md §4.6's normalization on top of extract's:
// a fresh unsubscripted source if the entry has incoming closure edges,
// then always a fresh accepting sink nq, with one epsilon edge from every
// acceptance node to nq, each carrying that acceptance node as its own
// subscript — the base case spec.md's series rule 1 resolves trivially.
func normalize(g *sgraph, cl *Closure) {
	if len(g.inEdges(g.initial)) > 0 {
		n0 := g.addNode(false)
		g.addEdge(n0, g.initial, "", noSubscript)
		g.initial = n0
	}

	nq := g.addNode(true)
	for _, a := range cl.AcceptanceNodes {
		g.addEdge(a, nq, "", a)
	}
	g.nq = nq
}

func moreThanTwoNodes(g *sgraph) bool { return len(g.aliveNodeIDs()) > 2 }

// hasDuplicateSubscriptGroup reports whether two or more alive edges share
// the same subscript (⊥ included), per spec.md §4.6's termination clause.
func hasDuplicateSubscriptGroup(g *sgraph) bool {
	counts := make(map[int]int)
	for _, e := range g.aliveEdgeIDs() {
		sigma := g.edgeSubscript[e]
		counts[sigma]++
		if counts[sigma] >= 2 {
			return true
		}
	}

	return false
}

// findEligibleSeriesChain is extract's findSeriesChain, additionally
// requiring that every edge but the chain's last carry no subscript: that
// is the only shape the series rule is allowed to rewrite (spec.md §4.6).
func findEligibleSeriesChain(g *sgraph) (chain []int, v0, vk int, ok bool) {
	for _, v := range g.aliveNodeIDs() {
		ins := g.inEdges(v)
		outs := g.outEdges(v)
		if len(ins) != 1 || len(outs) != 1 {
			continue
		}
		inE, outE := ins[0], outs[0]
		if g.edgeSrc[inE] == v {
			continue
		}
		if g.edgeSubscript[inE] != noSubscript {
			continue // inE can never be the chain's last edge
		}

		chain = []int{inE, outE}
		v0 = g.edgeSrc[inE]
		vk = g.edgeTgt[outE]

		for {
			cins, couts := g.inEdges(v0), g.outEdges(v0)
			if len(cins) != 1 || len(couts) != 1 {
				break
			}
			ce := cins[0]
			if g.edgeSrc[ce] == v0 {
				break
			}
			if g.edgeSubscript[ce] != noSubscript {
				break
			}
			chain = append([]int{ce}, chain...)
			v0 = g.edgeSrc[ce]
		}

		for g.edgeSubscript[chain[len(chain)-1]] == noSubscript {
			cins, couts := g.inEdges(vk), g.outEdges(vk)
			if len(cins) != 1 || len(couts) != 1 {
				break
			}
			ne := couts[0]
			if g.edgeTgt[ne] == vk {
				break
			}
			chain = append(chain, ne)
			vk = g.edgeTgt[ne]
		}

		return chain, v0, vk, true
	}

	return nil, 0, 0, false
}

func collapseSeriesSubscripted(g *sgraph, chain []int, v0, vk int) {
	last := chain[len(chain)-1]
	sigma := g.edgeSubscript[last]

	var label string
	var newSubscript int
	switch {
	case sigma != noSubscript:
		label = concatChain(g, chain)
		newSubscript = sigma
	case vk == g.nq || g.nodeAccepting[g.edgeSrc[last]]:
		label = concatChain(g, chain[:len(chain)-1])
		newSubscript = g.edgeSrc[last]
	default:
		label = concatChain(g, chain)
		newSubscript = noSubscript
	}

	for i := 0; i < len(chain)-1; i++ {
		g.removeNode(g.edgeTgt[chain[i]])
	}

	g.addEdge(v0, vk, label, newSubscript)
}

func concatChain(g *sgraph, chain []int) string {
	label := g.edgeLabel[chain[0]]
	for _, e := range chain[1:] {
		label = relevance.Concat(label, g.edgeLabel[e])
	}

	return label
}

// findEligibleParallel finds the lowest (node, target, subscript) group
// with two or more alive edges sharing that exact subscript, per spec.md
// §4.6: parallel edges may only merge when they describe the same
// acceptance node (or are all still unsubscripted).
func findEligibleParallel(g *sgraph) (u, v int, edges []int, ok bool) {
	for _, n := range g.aliveNodeIDs() {
		type key struct{ target, subscript int }
		byKey := make(map[key][]int)
		for _, e := range g.outEdges(n) {
			k := key{g.edgeTgt[e], g.edgeSubscript[e]}
			byKey[k] = append(byKey[k], e)
		}

		var keys []key
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].target != keys[j].target {
				return keys[i].target < keys[j].target
			}
			return keys[i].subscript < keys[j].subscript
		})

		for _, k := range keys {
			if len(byKey[k]) >= 2 {
				return n, k.target, byKey[k], true
			}
		}
	}

	return 0, 0, nil, false
}

func collapseParallelSubscripted(g *sgraph, u, v int, edges []int) {
	sigma := g.edgeSubscript[edges[0]]
	label := g.edgeLabel[edges[0]]
	for _, e := range edges[1:] {
		label = relevance.Alternate(label, g.edgeLabel[e])
	}
	for _, e := range edges {
		g.removeEdge(e)
	}

	g.addEdge(u, v, label, sigma)
}

func pickIntermediateNode(g *sgraph) (int, bool) {
	for _, n := range g.aliveNodeIDs() {
		if n == g.initial || n == g.nq {
			continue
		}
		return n, true
	}

	return 0, false
}

func collapseIntermediateSubscripted(g *sgraph, w int) {
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
			y, rOut, outSub := g.edgeTgt[out], g.edgeLabel[out], g.edgeSubscript[out]

			newLabel := relevance.Distribute(rIn, rLoop, rOut)

			var newSubscript int
			switch {
			case outSub != noSubscript:
				newSubscript = outSub
			case y == g.nq && g.nodeAccepting[w]:
				newSubscript = w
			default:
				newSubscript = noSubscript
			}

			g.addEdge(x, y, newLabel, newSubscript)
		}
	}

	g.removeNode(w)
}
