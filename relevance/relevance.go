// SPDX-License-Identifier: MIT
// File: relevance.go
// Role: the regex algebra of spec.md §4.9 (C9) — Alternatives/Recombine and
// the three composition rules (Concat, Alternate, Distribute) built on top
// of them. extract and closure never touch these strings directly; every
// rewrite rule they apply goes through this package so epsilon handling
// stays in one place.

package relevance

import "strings"

// epsilon is the canonical representation of the empty word inside an
// alternatives set, as distinct from "" which only ever appears as the
// *recombined* form of a singleton {epsilon} set.
const epsilon = "ε"

// Alternatives splits e into its top-level alternatives, i.e. the operands
// of its outermost "|" operators, ignoring any "|" nested inside "(…)"
// groups. The empty string and "ε" both normalize to the single-element set
// {"ε"}.
func Alternatives(e string) []string {
	if e == "" || e == epsilon {
		return []string{epsilon}
	}

	var alts []string
	depth := 0
	start := 0
	for i, r := range e {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				alts = append(alts, e[start:i])
				start = i + len(string(r))
			}
		}
	}
	alts = append(alts, e[start:])

	return alts
}

// Recombine joins alts into a single regex, de-duplicating while preserving
// first-seen order. A singleton set containing only "ε" recombines to "";
// any other singleton recombines to its sole element unchanged; a set of
// two or more recombines to their "|"-join.
func Recombine(alts []string) string {
	deduped := dedupe(alts)
	switch len(deduped) {
	case 0:
		return ""
	case 1:
		if deduped[0] == epsilon {
			return ""
		}
		return deduped[0]
	default:
		return strings.Join(deduped, "|")
	}
}

func dedupe(alts []string) []string {
	seen := make(map[string]bool, len(alts))
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}

	return out
}

// joinSkippingEpsilon concatenates parts in order, dropping any part that is
// "" or "ε" (the concatenation identity), and reports "ε" if every part was
// dropped. This is the ε ∘ x = x, x ∘ ε = x rule of spec.md §4.9 lifted to
// an arbitrary number of operands.
func joinSkippingEpsilon(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" || p == epsilon {
			continue
		}
		sb.WriteString(p)
	}
	if sb.Len() == 0 {
		return epsilon
	}

	return sb.String()
}

// Concat builds the regex for "a then b": the cross product of a's and b's
// top-level alternatives, each pair plainly concatenated (ε-elided), then
// recombined. This is series composition (C5) lifted to relevance labels
// that may themselves already be alternations.
func Concat(a, b string) string {
	as := Alternatives(a)
	bs := Alternatives(b)

	out := make([]string, 0, len(as)*len(bs))
	for _, alpha := range as {
		for _, beta := range bs {
			out = append(out, joinSkippingEpsilon(alpha, beta))
		}
	}

	return Recombine(out)
}

// Alternate builds the regex for "a or b": the union of a's and b's
// top-level alternatives, de-duplicated. This is parallel composition (C5).
func Alternate(a, b string) string {
	as := Alternatives(a)
	bs := Alternatives(b)

	out := make([]string, 0, len(as)+len(bs))
	out = append(out, as...)
	out = append(out, bs...)

	return Recombine(out)
}

// Distribute eliminates an intermediate node with an incoming relevance
// rIn, a self-loop rLoop, and an outgoing relevance rOut, producing the
// regex for "rIn, optionally looping on rLoop any number of times, then
// rOut": the cross product of rIn's and rOut's alternatives, each pair
// joined by the starred self-loop. rLoop is starred as a whole, in
// parentheses, whenever it denotes anything other than the empty word; spec
// reference: intermediateReplace, spec.md §4.9.
func Distribute(rIn, rLoop, rOut string) string {
	loopRe := ""
	if rLoop != "" && rLoop != epsilon {
		loopRe = "(" + rLoop + ")*"
	}

	as := Alternatives(rIn)
	bs := Alternatives(rOut)

	out := make([]string, 0, len(as)*len(bs))
	for _, alpha := range as {
		for _, beta := range bs {
			out = append(out, joinSkippingEpsilon(alpha, loopRe, beta))
		}
	}

	return Recombine(out)
}
