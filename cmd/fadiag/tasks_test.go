// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/network"
	"github.com/katalvlaran/fadiag/rundb"
)

type TasksSuite struct {
	suite.Suite
}

func TestTasksSuite(t *testing.T) {
	suite.Run(t, new(TasksSuite))
}

// minimalLoopNetwork builds spec.md scenario 1: B1 emits "x" on L with
// observability o1/relevance f, B2 silently consumes it.
func (s *TasksSuite) minimalLoopNetwork() *network.Network {
	t := s.T()
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

	_, err = b2.AddTransition("t2", "b", "b",
		network.WithRequiredEvent("L", "x"),
	)
	require.NoError(t, err)

	require.NoError(t, n.Freeze())

	return n
}

func (s *TasksSuite) TestRunT1BuildsAndPrunes() {
	net := s.minimalLoopNetwork()

	pruned, err := RunT1(net)
	s.Require().NoError(err)
	s.NotEmpty(pruned.Nodes)
}

func (s *TasksSuite) TestRunT2FiltersByObservation() {
	net := s.minimalLoopNetwork()

	pruned, err := RunT2(net, []string{"o1"})
	s.Require().NoError(err)
	s.NotEmpty(pruned.Nodes)
}

func (s *TasksSuite) TestRunT2RejectsIncompatibleObservation() {
	net := s.minimalLoopNetwork()

	_, err := RunT2(net, []string{"no-such-symbol"})
	s.ErrorIs(err, network.ErrObservationIncompatible)
}

func (s *TasksSuite) TestRunT3ExtractsDiagnosisFromFilteredSpace() {
	net := s.minimalLoopNetwork()
	pruned, err := RunT2(net, []string{"o1"})
	s.Require().NoError(err)

	regex, err := RunT3(pruned)
	s.Require().NoError(err)
	s.Equal("f", regex)
}

func (s *TasksSuite) TestRunT4BuildsDiagnoserFromUnfilteredSpace() {
	net := s.minimalLoopNetwork()
	pruned, err := RunT1(net)
	s.Require().NoError(err)

	d, err := RunT4(pruned)
	s.Require().NoError(err)
	s.NotEmpty(d.Nodes)
}

func (s *TasksSuite) TestRunT5MatchesRunT3OnSameObservation() {
	net := s.minimalLoopNetwork()

	unfilteredPruned, err := RunT1(net)
	s.Require().NoError(err)
	d, err := RunT4(unfilteredPruned)
	s.Require().NoError(err)

	filteredPruned, err := RunT2(net, []string{"o1"})
	s.Require().NoError(err)
	direct, err := RunT3(filteredPruned)
	s.Require().NoError(err)

	s.Equal(direct, RunT5(d, []string{"o1"}))
}

func (s *TasksSuite) TestKnownTaskAcceptsTaskMatrixEntries() {
	for _, task := range []rundb.Task{
		rundb.TaskBuildBS, rundb.TaskPrune, rundb.TaskExtract,
		rundb.TaskBuildDiagnoser, rundb.TaskDiagnose,
	} {
		s.True(KnownTask(task), "task %q should be known", task)
	}
}

func (s *TasksSuite) TestCheckKnownTaskRejectsUnknownTask() {
	err := checkKnownTask(rundb.Task("T99"))
	s.ErrorIs(err, ErrNotImplemented)
}
