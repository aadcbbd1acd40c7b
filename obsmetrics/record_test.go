// SPDX-License-Identifier: MIT
package obsmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/bspace"
)

type RecordSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordSuite))
}

func (s *RecordSuite) TestObserveBuildRecordsNodeAndEdgeCounts() {
	before := testutil.CollectAndCount(bsNodesDiscovered)

	sp := &bspace.Space{
		Nodes: make([]*bspace.Node, 3),
		Edges: make([]*bspace.Edge, 2),
	}
	ObserveBuild(sp, true, 5*time.Millisecond)

	s.Equal(before+1, testutil.CollectAndCount(bsNodesDiscovered))
}

func (s *RecordSuite) TestObservePruneRecordsSurvivorRatio() {
	preSp := &bspace.Space{Nodes: make([]*bspace.Node, 4)}
	postSp := &bspace.Space{Nodes: make([]*bspace.Node, 2)}

	s.NotPanics(func() { ObservePrune(preSp, postSp, time.Millisecond) })
}

func (s *RecordSuite) TestObservePruneSkipsEmptyBeforeSpace() {
	s.NotPanics(func() { ObservePrune(&bspace.Space{}, &bspace.Space{}, time.Millisecond) })
}

func (s *RecordSuite) TestObserveDiagnosisRecordsByTask() {
	before := testutil.CollectAndCount(diagnosisLatency)

	ObserveDiagnosis("T5", 2*time.Millisecond)

	s.Equal(before+1, testutil.CollectAndCount(diagnosisLatency))
}

func (s *RecordSuite) TestObserveDiagnosisDistinguishesRepeatedTaskLabel() {
	before := testutil.CollectAndCount(diagnosisLatency)

	ObserveDiagnosis("T2", time.Millisecond)
	ObserveDiagnosis("T2", 3*time.Millisecond)

	s.Equal(before+1, testutil.CollectAndCount(diagnosisLatency))
}
