// SPDX-License-Identifier: MIT
// File: types.go
// Role: the Diagnoser data model, per spec.md §4.7.

package diagnoser

import (
	"fmt"

	"github.com/katalvlaran/fadiag/closure"
)

// Node is one compiled closure. Entry is the bspace.Space node it was
// built from; Closure carries its decorated subscripts and overall
// diagnosis (closure.Extract's output). Accepting mirrors
// Closure.HasDiagnosis.
type Node struct {
	Entry     int
	Closure   *closure.Closure
	Accepting bool

	// Out holds the indices, into the owning Diagnoser's Edges slice, of
	// this node's outgoing edges, in construction order.
	Out []int
}

// Edge is an observable transition out of some exit node of Source's
// closure, landing on the closure rooted at Target's entry.
type Edge struct {
	Source, Target     int
	ObservabilityLabel string
	RelevanceLabel     string
}

// Diagnoser is the compiled closure-space graph a linear observation is
// walked over (C8).
type Diagnoser struct {
	Initial int
	Nodes   []*Node
	Edges   []*Edge
}

// String is a minimal textual summary for debugging and CLI output — not
// a serialization format. DOT export and on-disk persistence of a
// Diagnoser are out of scope (spec.md §1).
func (d *Diagnoser) String() string {
	accepting := 0
	for _, n := range d.Nodes {
		if n.Accepting {
			accepting++
		}
	}

	return fmt.Sprintf("diagnoser.Diagnoser{nodes:%d edges:%d accepting:%d initial:%d}",
		len(d.Nodes), len(d.Edges), accepting, d.Initial)
}
