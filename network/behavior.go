// SPDX-License-Identifier: MIT
// File: behavior.go
// Role: Behavior construction — states, initial state, transitions.
// Contract:
//   - AddState/SetInitialState/AddTransition validate immediately (fail
//     fast), matching retefa.py's fromXML construction order: states must
//     exist before they can be named as an initial state or as a
//     transition endpoint; links must exist before being named by a
//     transition's required/output events.
//   - Panics never occur here; every failure is a returned sentinel error.

package network

import "fmt"

// Behavior is a local finite-state automaton participating in the network.
// Index is this behavior's position in Network.Behaviors(), the "fixed
// behavior order" spec.md's stateVector is indexed by.
type Behavior struct {
	Name         string
	Index        int
	states       []*State
	byState      map[string]*State
	initial      *State
	transitions  []*Transition
	net          *Network
}

// States returns the states of this behavior in declaration order.
func (b *Behavior) States() []*State { return append([]*State(nil), b.states...) }

// Initial returns the behavior's initial state, or nil if none was set.
func (b *Behavior) Initial() *State { return b.initial }

// Transitions returns the transitions of this behavior in declaration order.
func (b *Behavior) Transitions() []*Transition { return append([]*Transition(nil), b.transitions...) }

// FindState looks up a state of this behavior by name.
func (b *Behavior) FindState(name string) *State { return b.byState[name] }

// AddState adds a new state named name to this behavior.
// Complexity: O(1).
func (b *Behavior) AddState(name string) (*State, error) {
	if b.net.frozen {
		return nil, ErrAlreadyFrozen
	}
	if _, exists := b.byState[name]; exists {
		return nil, fmt.Errorf("network: state %q already exists in behavior %q: %w", name, b.Name, ErrDuplicateName)
	}
	s := &State{Name: name}
	b.states = append(b.states, s)
	b.byState[name] = s

	return s, nil
}

// SetInitialState marks the state named name as this behavior's initial
// state. Returns ErrUnresolvedReference if no such state exists (L2).
func (b *Behavior) SetInitialState(name string) error {
	if b.net.frozen {
		return ErrAlreadyFrozen
	}
	s, ok := b.byState[name]
	if !ok {
		return fmt.Errorf("network: initial state %q of behavior %q: %w", name, b.Name, ErrUnresolvedReference)
	}
	b.initial = s

	return nil
}

// TransitionOption configures an optional facet of a Transition being added
// via Behavior.AddTransition.
type TransitionOption func(*Transition)

// WithRequiredEvent sets the (link, event) that must be present on the link's
// buffer for the transition to fire; the event is consumed on firing.
func WithRequiredEvent(linkName, event string) TransitionOption {
	return func(t *Transition) {
		t.pendingRequiredLink = linkName
		t.pendingRequiredEvent = event
		t.hasPendingRequired = true
	}
}

// WithOutputEvent appends an (link, event) produced by the transition on
// firing; the link's buffer must be empty at fire time.
func WithOutputEvent(linkName, event string) TransitionOption {
	return func(t *Transition) {
		t.pendingOutputs = append(t.pendingOutputs, pendingEvent{linkName: linkName, event: event})
	}
}

// WithObservability sets the transition's observability label (empty = silent).
func WithObservability(label string) TransitionOption {
	return func(t *Transition) { t.Observability = label }
}

// WithRelevance sets the transition's relevance label (empty = no contribution).
func WithRelevance(label string) TransitionOption {
	return func(t *Transition) { t.Relevance = label }
}

// pendingEvent and the pending* fields on Transition stage the raw link
// names supplied through TransitionOption until AddTransition can resolve
// them against the network's links (which may have been declared in any
// order relative to behaviors, but always before transitions per xmlnet's
// load order).
type pendingEvent struct {
	linkName string
	event    string
}

// AddTransition adds a transition named name from state fromName to state
// toName in this behavior, applying opts. Returns ErrDuplicateName if this
// behavior already has a transition named name, and ErrUnresolvedReference
// if fromName, toName, or any referenced link name does not resolve.
func (b *Behavior) AddTransition(name, fromName, toName string, opts ...TransitionOption) (*Transition, error) {
	if b.net.frozen {
		return nil, ErrAlreadyFrozen
	}
	for _, existing := range b.transitions {
		if existing.Name == name {
			return nil, fmt.Errorf("network: transition %q already exists in behavior %q: %w", name, b.Name, ErrDuplicateName)
		}
	}
	from, ok := b.byState[fromName]
	if !ok {
		return nil, fmt.Errorf("network: transition %q source state %q in behavior %q: %w", name, fromName, b.Name, ErrUnresolvedReference)
	}
	to, ok := b.byState[toName]
	if !ok {
		return nil, fmt.Errorf("network: transition %q target state %q in behavior %q: %w", name, toName, b.Name, ErrUnresolvedReference)
	}

	t := &Transition{Name: name, Behavior: b, From: from, To: to}
	for _, opt := range opts {
		opt(t)
	}

	if t.hasPendingRequired {
		link, ok := b.net.byLink[t.pendingRequiredLink]
		if !ok {
			return nil, fmt.Errorf("network: transition %q required link %q: %w", name, t.pendingRequiredLink, ErrUnresolvedReference)
		}
		t.RequiredEvent = &EventRef{Link: link, Event: t.pendingRequiredEvent}
	}
	for _, pe := range t.pendingOutputs {
		link, ok := b.net.byLink[pe.linkName]
		if !ok {
			return nil, fmt.Errorf("network: transition %q output link %q: %w", name, pe.linkName, ErrUnresolvedReference)
		}
		t.OutputEvents = append(t.OutputEvents, EventRef{Link: link, Event: pe.event})
	}
	t.pendingOutputs = nil

	b.transitions = append(b.transitions, t)
	b.net.allTransitions = append(b.net.allTransitions, t)

	return t, nil
}
