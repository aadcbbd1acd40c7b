// SPDX-License-Identifier: MIT
// File: types.go
// Role: the Closure data model, per spec.md §4.5/§4.6.

package closure

// Closure is the silent-reachable sub-graph rooted at Entry, plus the
// result of subscripted regex extraction over it (C6b). Node and edge
// values throughout are bspace.Space indices — closure nodes never get
// their own renumbering, so a decoration key is directly usable as a
// bspace.Space node index.
type Closure struct {
	// Entry is the bspace.Space node this closure was built from.
	Entry int

	// Nodes holds every bspace.Space node reachable from Entry via
	// unobservable edges only, Entry included, in discovery order.
	Nodes []int

	// Edges holds every unobservable bspace.Space edge between two Nodes
	// members, in discovery order.
	Edges []int

	// ExitNodes holds the Nodes members that have at least one observable
	// outgoing edge in the owning bspace.Space.
	ExitNodes []int

	// AcceptanceNodes holds every Nodes member that is itself BS-accepting
	// or is an exit node. Per spec.md §9, this is the corrected rule: the
	// original implementation's nested conditional is not replicated.
	AcceptanceNodes []int

	// Decorations maps an AcceptanceNodes member to the regex describing
	// every silent path from Entry to it. A member absent from this map
	// carries no diagnosis contribution (it is not itself BS-accepting).
	Decorations map[int]string

	// Diagnosis is the alternation of every decoration belonging to an
	// AcceptanceNodes member that is BS-accepting. HasDiagnosis is false
	// when no such member exists, in which case Diagnosis is "".
	Diagnosis    string
	HasDiagnosis bool
}
