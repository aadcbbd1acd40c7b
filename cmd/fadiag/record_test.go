// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/rundb"
)

type RecordSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordSuite))
}

func (s *RecordSuite) TestRecordRunIsNoOpWithoutAnOpenCache() {
	db = nil

	id, err := recordRun(rundb.TaskExtract, "minimal-loop", []string{"o1"}, "f")
	s.Require().NoError(err)
	s.Empty(id)
}

func (s *RecordSuite) TestRecordRunRejectsUnknownTask() {
	store, err := rundb.Open(s.T().TempDir())
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = store.Close() })
	db = store
	s.T().Cleanup(func() { db = nil })

	_, err = recordRun(rundb.Task("T99"), "minimal-loop", nil, "f")
	s.ErrorIs(err, ErrNotImplemented)
}

func (s *RecordSuite) TestRecordRunPersistsAndReturnsAnID() {
	store, err := rundb.Open(s.T().TempDir())
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = store.Close() })
	db = store
	s.T().Cleanup(func() { db = nil })

	id, err := recordRun(rundb.TaskExtract, "minimal-loop", []string{"o1"}, "f")
	s.Require().NoError(err)
	s.NotEmpty(id)

	got, err := store.Get(id)
	s.Require().NoError(err)
	s.Equal("f", got.Diagnosis)
	s.Equal("minimal-loop", got.NetworkName)
}
