// SPDX-License-Identifier: MIT
// File: graph.go
// Role: the mutable working graph the state-elimination reduction loop
// runs over — arena-indexed like bspace.Space, but carrying only what
// regex extraction needs (a relevance label per edge, an accepting flag
// per node), plus the ability to synthesize new nodes and edges as
// rewrites fire. Node/edge removal is soft (an alive flag); ids are never
// reused, matching bspace's append-only arena discipline.

package extract

import "github.com/katalvlaran/fadiag/bspace"

type egraph struct {
	nodeAlive     []bool
	nodeAccepting []bool

	edgeAlive []bool
	edgeSrc   []int
	edgeTgt   []int
	edgeLabel []string

	out map[int][]int
	in  map[int][]int

	initial int
	final   int // -1 until normalize determines the single accepting sink
}

// newGraph builds a working graph from sp, carrying over its nodes'
// accepting flags and edges' relevance labels only.
func newGraph(sp *bspace.Space) *egraph {
	g := &egraph{out: make(map[int][]int), in: make(map[int][]int)}
	for _, n := range sp.Nodes {
		g.nodeAlive = append(g.nodeAlive, true)
		g.nodeAccepting = append(g.nodeAccepting, n.IsAccepting)
	}
	for _, e := range sp.Edges {
		g.addEdge(e.Source, e.Target, e.RelevanceLabel)
	}
	g.initial = sp.Initial
	g.final = -1

	return g
}

func (g *egraph) addNode(accepting bool) int {
	id := len(g.nodeAlive)
	g.nodeAlive = append(g.nodeAlive, true)
	g.nodeAccepting = append(g.nodeAccepting, accepting)

	return id
}

func (g *egraph) addEdge(src, tgt int, label string) int {
	id := len(g.edgeAlive)
	g.edgeAlive = append(g.edgeAlive, true)
	g.edgeSrc = append(g.edgeSrc, src)
	g.edgeTgt = append(g.edgeTgt, tgt)
	g.edgeLabel = append(g.edgeLabel, label)
	g.out[src] = append(g.out[src], id)
	g.in[tgt] = append(g.in[tgt], id)

	return id
}

func (g *egraph) removeEdge(id int) { g.edgeAlive[id] = false }

// removeNode kills node id and every edge incident to it.
func (g *egraph) removeNode(id int) {
	g.nodeAlive[id] = false
	for _, e := range g.out[id] {
		g.edgeAlive[e] = false
	}
	for _, e := range g.in[id] {
		g.edgeAlive[e] = false
	}
}

func (g *egraph) outEdges(id int) []int { return g.aliveOf(g.out[id]) }
func (g *egraph) inEdges(id int) []int  { return g.aliveOf(g.in[id]) }

func (g *egraph) aliveOf(ids []int) []int {
	var out []int
	for _, id := range ids {
		if g.edgeAlive[id] {
			out = append(out, id)
		}
	}

	return out
}

// aliveNodeIDs returns alive node ids in ascending (declaration) order,
// the order spec.md §5 requires extraction's node/pattern selection to
// respect for deterministic textual output.
func (g *egraph) aliveNodeIDs() []int {
	var out []int
	for id, alive := range g.nodeAlive {
		if alive {
			out = append(out, id)
		}
	}

	return out
}

func (g *egraph) aliveEdgeIDs() []int {
	var out []int
	for id, alive := range g.edgeAlive {
		if alive {
			out = append(out, id)
		}
	}

	return out
}
