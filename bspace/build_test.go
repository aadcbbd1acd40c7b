package bspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/network"
)

type BuildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// minimalLoopNetwork is spec.md §8 scenario 1: B1 emits "x" on L (obs "o1",
// relevance "f"), B2 silently consumes it, both loop on their own state.
func minimalLoopNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New("minimal-loop")

	b1, err := n.AddBehavior("B1")
	require.NoError(t, err)
	b2, err := n.AddBehavior("B2")
	require.NoError(t, err)

	_, err = n.AddLink("L", "B1", "B2")
	require.NoError(t, err)

	_, err = b1.AddState("a")
	require.NoError(t, err)
	require.NoError(t, b1.SetInitialState("a"))

	_, err = b2.AddState("b")
	require.NoError(t, err)
	require.NoError(t, b2.SetInitialState("b"))

	_, err = b1.AddTransition("t1", "a", "a",
		network.WithOutputEvent("L", "x"),
		network.WithObservability("o1"),
		network.WithRelevance("f"),
	)
	require.NoError(t, err)

	_, err = b2.AddTransition("t2", "b", "b", network.WithRequiredEvent("L", "x"))
	require.NoError(t, err)

	require.NoError(t, n.Freeze())

	return n
}

func (s *BuildSuite) TestBuildMinimalLoopHasTwoNodes() {
	n := minimalLoopNetwork(s.T())
	sp, err := bspace.Build(n)
	s.Require().NoError(err)

	s.Len(sp.Nodes, 2)
	s.True(sp.Nodes[sp.Initial].IsAccepting)
	s.Equal([]string{""}, sp.Nodes[sp.Initial].BufferVector)
}

// TestBuildFilteredMinimalLoopMatchesScenario1 checks the observation-
// filtered space for spec.md §8 scenario 1. Note that under the formal
// §4.2 accepting rule (buffers empty AND observationIndex == |O|), the
// configuration reached after the full o1-then-silent-consume cycle is a
// distinct node from the initial one (same state/buffer shape, but
// observationIndex 1 instead of 0) and a dead end, since the observation
// is exhausted — three nodes total, not two. The final diagnosis this
// space extracts to is still "f" (see extract's scenario-1 test).
func (s *BuildSuite) TestBuildFilteredMinimalLoopMatchesScenario1() {
	n := minimalLoopNetwork(s.T())
	sp, err := bspace.BuildFiltered(n, []string{"o1"})
	s.Require().NoError(err)

	s.Len(sp.Nodes, 3)

	n0 := sp.Nodes[sp.Initial]
	s.False(n0.IsAccepting)
	s.Equal(0, n0.ObservationIndex)
	s.Equal([]string{""}, n0.BufferVector)

	s.Require().Len(n0.Out, 1)
	e := sp.Edges[n0.Out[0]]
	s.Equal("o1", e.ObservabilityLabel)
	s.Equal("f", e.RelevanceLabel)

	n1 := sp.Nodes[e.Target]
	s.False(n1.IsAccepting)
	s.Equal(1, n1.ObservationIndex)
	s.Equal([]string{"x"}, n1.BufferVector)

	s.Require().Len(n1.Out, 1)
	fwd := sp.Edges[n1.Out[0]]
	s.Equal("", fwd.ObservabilityLabel)

	n2 := sp.Nodes[fwd.Target]
	s.True(n2.IsAccepting)
	s.Equal(1, n2.ObservationIndex)
	s.Equal([]string{""}, n2.BufferVector)
	s.Empty(n2.Out)
}

func (s *BuildSuite) TestBuildFilteredRejectsUnknownLabel() {
	n := minimalLoopNetwork(s.T())
	_, err := bspace.BuildFiltered(n, []string{"does-not-exist"})
	s.ErrorIs(err, network.ErrObservationIncompatible)
}

// alternationNetwork is spec.md §8 scenario 2: two parallel edges s0->s1
// both labeled obs "o", relevance "a" and "b" respectively; s1 has no
// outgoing transitions and is therefore accepting once buffers drain.
func alternationNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New("alternation")
	b1, err := n.AddBehavior("B1")
	require.NoError(t, err)

	_, err = b1.AddState("s0")
	require.NoError(t, err)
	_, err = b1.AddState("s1")
	require.NoError(t, err)
	require.NoError(t, b1.SetInitialState("s0"))

	_, err = b1.AddTransition("t1", "s0", "s1", network.WithObservability("o"), network.WithRelevance("a"))
	require.NoError(t, err)
	_, err = b1.AddTransition("t2", "s0", "s1", network.WithObservability("o"), network.WithRelevance("b"))
	require.NoError(t, err)

	require.NoError(t, n.Freeze())

	return n
}

func (s *BuildSuite) TestBuildFilteredAlternationHasParallelEdges() {
	n := alternationNetwork(s.T())
	sp, err := bspace.BuildFiltered(n, []string{"o"})
	s.Require().NoError(err)

	s.Len(sp.Nodes, 2)
	n0 := sp.Nodes[sp.Initial]
	s.Require().Len(n0.Out, 2)

	labels := map[string]bool{}
	for _, ei := range n0.Out {
		e := sp.Edges[ei]
		s.Equal("o", e.ObservabilityLabel)
		labels[e.RelevanceLabel] = true
		s.True(sp.Nodes[e.Target].IsAccepting)
	}
	s.True(labels["a"])
	s.True(labels["b"])
}
