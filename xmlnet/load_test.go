package xmlnet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fadiag/bspace"
	"github.com/katalvlaran/fadiag/extract"
	"github.com/katalvlaran/fadiag/network"
	"github.com/katalvlaran/fadiag/prune"
	"github.com/katalvlaran/fadiag/xmlnet"
)

type LoadSuite struct {
	suite.Suite
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadSuite))
}

const minimalLoopXML = `
<network name="minimal-loop">
  <behaviors>
    <behavior name="B1" initial="a">
      <states><state name="a"/></states>
      <transitions>
        <transition name="t1" from="a" to="a" observability="o1" relevance="f">
          <outputs><output link="L" event="x"/></outputs>
        </transition>
      </transitions>
    </behavior>
    <behavior name="B2" initial="b">
      <states><state name="b"/></states>
      <transitions>
        <transition name="t2" from="b" to="b">
          <required link="L" event="x"/>
        </transition>
      </transitions>
    </behavior>
  </behaviors>
  <links>
    <link name="L" from="B1" to="B2"/>
  </links>
</network>
`

// TestLoadRoundTripsMinimalLoopToDiagnosis parses the XML form of
// extract_test.go's scenario-1 network and checks it diagnoses to "f",
// exactly as the hand-built network.Network does.
func (s *LoadSuite) TestLoadRoundTripsMinimalLoopToDiagnosis() {
	n, err := xmlnet.Load(strings.NewReader(minimalLoopXML))
	s.Require().NoError(err)
	s.Equal("minimal-loop", n.Name)
	s.True(n.Frozen())

	sp, err := bspace.BuildFiltered(n, []string{"o1"})
	s.Require().NoError(err)
	pruned, err := prune.Prune(sp)
	s.Require().NoError(err)
	regex, err := extract.Extract(pruned)
	s.Require().NoError(err)
	s.Equal("f", regex)
}

func (s *LoadSuite) TestLoadRejectsUnparsableXML() {
	_, err := xmlnet.Load(strings.NewReader("not xml at all <<<"))
	s.ErrorIs(err, xmlnet.ErrMalformedInput)
}

func (s *LoadSuite) TestLoadRejectsMissingNetworkName() {
	_, err := xmlnet.Load(strings.NewReader(`<network><behaviors/><links/></network>`))
	s.ErrorIs(err, xmlnet.ErrMalformedInput)
}

func (s *LoadSuite) TestLoadRejectsUnresolvedLinkBehavior() {
	doc := `
<network name="bad">
  <behaviors>
    <behavior name="B1" initial="a"><states><state name="a"/></states></behavior>
  </behaviors>
  <links>
    <link name="L" from="B1" to="does-not-exist"/>
  </links>
</network>`
	_, err := xmlnet.Load(strings.NewReader(doc))
	s.ErrorIs(err, network.ErrUnresolvedReference)
}
