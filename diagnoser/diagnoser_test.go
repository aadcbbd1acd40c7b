package diagnoser_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/diagnoser"
	"github.com/katalvlaran/fadiag/extract"
	"github.com/katalvlaran/fadiag/network"
	"github.com/katalvlaran/fadiag/prune"
)

type DiagnoserSuite struct {
	suite.Suite
}

func TestDiagnoserSuite(t *testing.T) {
	suite.Run(t, new(DiagnoserSuite))
}

func minimalLoopNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New("minimal-loop")
	b1, err := n.AddBehavior("B1")
	require.NoError(t, err)
	b2, err := n.AddBehavior("B2")
	require.NoError(t, err)
	_, err = n.AddLink("L", "B1", "B2")
	require.NoError(t, err)
	_, _ = b1.AddState("a")
	require.NoError(t, b1.SetInitialState("a"))
	_, _ = b2.AddState("b")
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

// TestDiagnoserMatchesDirectExtractionOnMinimalLoop is spec.md §8
// invariant I5's simplest instance: C8(C7(...)) must agree with
// C5(C4(C3(...))).
func (s *DiagnoserSuite) TestDiagnoserMatchesDirectExtractionOnMinimalLoop() {
	n := minimalLoopNetwork(s.T())
	sp, err := bspace.BuildFiltered(n, []string{"o1"})
	s.Require().NoError(err)
	pruned, err := prune.Prune(sp)
	s.Require().NoError(err)

	direct, err := extract.Extract(pruned)
	s.Require().NoError(err)

	d, err := diagnoser.Build(pruned)
	s.Require().NoError(err)
	via := diagnoser.Walk(d, []string{"o1"})

	s.Equal("f", direct)
	s.Equal(direct, via)
}

// silentPrefixNetwork has a non-trivial silent prefix ("p") before the
// sole observable transition ("o", relevance "q"), so a diagnoser edge's
// label is only correct if it concatenates the exit's silent-path
// decoration *before* the observable transition's own relevance — getting
// the operand order backwards would yield "qp" instead of "pq" here,
// diverging from direct extraction.
func silentPrefixNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New("silent-prefix")
	b1, err := n.AddBehavior("B1")
	require.NoError(t, err)
	_, _ = b1.AddState("s0")
	_, _ = b1.AddState("s1")
	_, _ = b1.AddState("s2")
	require.NoError(t, b1.SetInitialState("s0"))
	_, err = b1.AddTransition("t1", "s0", "s1", network.WithRelevance("p"))
	require.NoError(t, err)
	_, err = b1.AddTransition("t2", "s1", "s2", network.WithObservability("o"), network.WithRelevance("q"))
	require.NoError(t, err)
	require.NoError(t, n.Freeze())

	return n
}

func (s *DiagnoserSuite) TestDiagnoserConcatenatesDecorationBeforeTransitionRelevance() {
	n := silentPrefixNetwork(s.T())
	sp, err := bspace.BuildFiltered(n, []string{"o"})
	s.Require().NoError(err)
	pruned, err := prune.Prune(sp)
	s.Require().NoError(err)

	direct, err := extract.Extract(pruned)
	s.Require().NoError(err)
	s.Equal("pq", direct)

	d, err := diagnoser.Build(pruned)
	s.Require().NoError(err)
	via := diagnoser.Walk(d, []string{"o"})
	s.Equal("pq", via)
}

func (s *DiagnoserSuite) TestWalkReturnsEmptyWhenNoAcceptingNodeSurvives() {
	n := silentPrefixNetwork(s.T())
	sp, err := bspace.BuildFiltered(n, []string{"o"})
	s.Require().NoError(err)
	pruned, err := prune.Prune(sp)
	s.Require().NoError(err)

	d, err := diagnoser.Build(pruned)
	s.Require().NoError(err)

	// An observation this diagnoser has no transition for at all drains
	// the frontier to empty.
	s.Equal("", diagnoser.Walk(d, []string{"does-not-exist"}))
}
