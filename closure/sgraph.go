// SPDX-License-Identifier: MIT
// File: sgraph.go
// Role: the subscripted working graph C6b's reduction loop runs over.
// Structurally this is extract's egraph (arena-indexed, soft-delete)
// widened with a per-edge subscript: the bspace.Space index of the
// AcceptanceNodes member whose decoration that edge currently holds, or
// noSubscript ("⊥", spec.md §4.6) when the edge does not yet describe any
// single acceptance node's path.
//
// Node ids for closure members are the bspace.Space indices they already
// carry; normalize allocates fresh ids past the end of sp.Nodes for any
// synthetic n0/nq it introduces, so no separate identity map back to the
// Closure is ever needed.

package closure

import "github.com/katalvlaran/fadiag/bspace"

const noSubscript = -1

type sgraph struct {
	nodeAlive     []bool
	nodeAccepting []bool // is this node an AcceptanceNodes member of the closure

	edgeAlive     []bool
	edgeSrc       []int
	edgeTgt       []int
	edgeLabel     []string
	edgeSubscript []int

	out map[int][]int
	in  map[int][]int

	initial int
	nq      int // -1 until normalize introduces the accepting sink
}

func newSGraph(sp *bspace.Space, cl *Closure) *sgraph {
	g := &sgraph{
		out: make(map[int][]int),
		in:  make(map[int][]int),
	}

	size := len(sp.Nodes)
	g.nodeAlive = make([]bool, size)
	g.nodeAccepting = make([]bool, size)

	accepting := make(map[int]bool, len(cl.AcceptanceNodes))
	for _, a := range cl.AcceptanceNodes {
		accepting[a] = true
	}
	for _, nid := range cl.Nodes {
		g.nodeAlive[nid] = true
		g.nodeAccepting[nid] = accepting[nid]
	}

	for _, ei := range cl.Edges {
		e := sp.Edges[ei]
		g.addEdge(e.Source, e.Target, e.RelevanceLabel, noSubscript)
	}

	g.initial = cl.Entry
	g.nq = -1

	return g
}

func (g *sgraph) addNode(accepting bool) int {
	id := len(g.nodeAlive)
	g.nodeAlive = append(g.nodeAlive, true)
	g.nodeAccepting = append(g.nodeAccepting, accepting)

	return id
}

func (g *sgraph) addEdge(src, tgt int, label string, subscript int) int {
	id := len(g.edgeAlive)
	g.edgeAlive = append(g.edgeAlive, true)
	g.edgeSrc = append(g.edgeSrc, src)
	g.edgeTgt = append(g.edgeTgt, tgt)
	g.edgeLabel = append(g.edgeLabel, label)
	g.edgeSubscript = append(g.edgeSubscript, subscript)
	g.out[src] = append(g.out[src], id)
	g.in[tgt] = append(g.in[tgt], id)

	return id
}

func (g *sgraph) removeEdge(id int) { g.edgeAlive[id] = false }

func (g *sgraph) removeNode(id int) {
	g.nodeAlive[id] = false
	for _, e := range g.out[id] {
		g.edgeAlive[e] = false
	}
	for _, e := range g.in[id] {
		g.edgeAlive[e] = false
	}
}

func (g *sgraph) outEdges(id int) []int { return g.aliveOf(g.out[id]) }
func (g *sgraph) inEdges(id int) []int  { return g.aliveOf(g.in[id]) }

func (g *sgraph) aliveOf(ids []int) []int {
	var out []int
	for _, id := range ids {
		if g.edgeAlive[id] {
			out = append(out, id)
		}
	}

	return out
}

func (g *sgraph) aliveNodeIDs() []int {
	var out []int
	for id, alive := range g.nodeAlive {
		if alive {
			out = append(out, id)
		}
	}

	return out
}

func (g *sgraph) aliveEdgeIDs() []int {
	var out []int
	for id, alive := range g.edgeAlive {
		if alive {
			out = append(out, id)
		}
	}

	return out
}
