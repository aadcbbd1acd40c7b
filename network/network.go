// SPDX-License-Identifier: MIT
// File: network.go
// Role: Network construction, freezing, and read-only accessors.
// Determinism:
//   - Behaviors() and Links() return their declaration order; this order is
//     the "fixed behavior order" / "fixed link order" spec.md's bspace
//     node tuples are indexed by.
// Concurrency:
//   - Before Freeze, a Network must only be touched by its builder goroutine.
//   - After Freeze, a Network is immutable and safe for concurrent reads by
//     any number of bspace/prune/extract/closure/diagnoser computations.

package network

import "fmt"

// Network is an immutable-once-frozen bundle of behaviors and links. Build
// with New, populate with AddBehavior/AddLink and the returned Behavior's
// methods, then call Freeze to validate invariants L1/L2 and lock it.
type Network struct {
	Name string

	behaviors  []*Behavior
	byBehavior map[string]*Behavior

	links  []*Link
	byLink map[string]*Link

	allTransitions []*Transition

	frozen bool
}

// New creates an empty, mutable Network named name.
func New(name string) *Network {
	return &Network{
		Name:       name,
		byBehavior: make(map[string]*Behavior),
		byLink:     make(map[string]*Link),
	}
}

// Behaviors returns the network's behaviors in declaration (fixed) order.
func (n *Network) Behaviors() []*Behavior { return append([]*Behavior(nil), n.behaviors...) }

// Links returns the network's links in declaration (fixed) order.
func (n *Network) Links() []*Link { return append([]*Link(nil), n.links...) }

// FindBehavior looks up a behavior by name.
func (n *Network) FindBehavior(name string) *Behavior { return n.byBehavior[name] }

// FindLink looks up a link by name.
func (n *Network) FindLink(name string) *Link { return n.byLink[name] }

// AddBehavior adds a new, empty behavior named name to the network.
// Complexity: O(1).
func (n *Network) AddBehavior(name string) (*Behavior, error) {
	if n.frozen {
		return nil, ErrAlreadyFrozen
	}
	if _, exists := n.byBehavior[name]; exists {
		return nil, fmt.Errorf("network: behavior %q: %w", name, ErrDuplicateName)
	}
	b := &Behavior{
		Name:    name,
		Index:   len(n.behaviors),
		byState: make(map[string]*State),
		net:     n,
	}
	n.behaviors = append(n.behaviors, b)
	n.byBehavior[name] = b

	return b, nil
}

// AddLink adds a directed link named name from the behavior fromName to the
// behavior toName. Both behaviors must already exist (L1); returns
// ErrUnresolvedReference naming the missing behavior otherwise.
func (n *Network) AddLink(name, fromName, toName string) (*Link, error) {
	if n.frozen {
		return nil, ErrAlreadyFrozen
	}
	if _, exists := n.byLink[name]; exists {
		return nil, fmt.Errorf("network: link %q: %w", name, ErrDuplicateName)
	}
	from, ok := n.byBehavior[fromName]
	if !ok {
		return nil, fmt.Errorf("network: link %q source behavior %q: %w", name, fromName, ErrUnresolvedReference)
	}
	to, ok := n.byBehavior[toName]
	if !ok {
		return nil, fmt.Errorf("network: link %q target behavior %q: %w", name, toName, ErrUnresolvedReference)
	}
	l := &Link{Name: name, From: from, To: to}
	n.links = append(n.links, l)
	n.byLink[name] = l

	return l, nil
}

// Freeze validates invariant L2 (every behavior has an initial state) and
// marks the network immutable. L1 is enforced incrementally by AddLink /
// AddTransition and therefore always holds by the time Freeze is reached.
func (n *Network) Freeze() error {
	if n.frozen {
		return nil
	}
	for _, b := range n.behaviors {
		if b.initial == nil {
			return fmt.Errorf("network: behavior %q: %w", b.Name, ErrNoInitialState)
		}
	}
	n.frozen = true

	return nil
}

// Frozen reports whether Freeze has been called.
func (n *Network) Frozen() bool { return n.frozen }

// CheckObservation verifies that every distinct label in observation is the
// observability label of some transition in the network (spec.md C3's
// precondition). It mirrors retefa.py's verificaOsservazioneLineare.
// Complexity: O(|observation| * |transitions|) worst case; observation is
// expected to be short relative to the network.
func (n *Network) CheckObservation(observation []string) error {
	seen := make(map[string]bool, len(observation))
	for _, label := range observation {
		if seen[label] {
			continue
		}
		seen[label] = true

		found := false
		for _, t := range n.allTransitions {
			if t.Observability == label {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("network: observation label %q: %w", label, ErrObservationIncompatible)
		}
	}

	return nil
}
