// SPDX-License-Identifier: MIT
//
// Package relevance implements the regex algebra (spec.md §4.9, C9) used to
// build and combine relevance labels into a diagnosis: Concat, Alternate,
// Distribute (the self-loop elimination rule), and the Alternatives/
// Recombine pair that gives every other operator its epsilon semantics.
//
// Strings represent regular expressions over the relevance alphabet using
// literals, "|" (alternation), implicit concatenation, "(…)" (grouping) and
// "*" (Kleene star). "ε" and the literal empty string "" both denote the
// empty word; Alternatives and Recombine are near-inverses that keep the
// two representations consistent: Alternatives("") == []string{"ε"} and
// Recombine([]string{"ε"}) == "".
//
// Recombination is order-preserving (first-seen, de-duplicated) rather than
// sorted, so that repeated calls on the same inputs are deterministic; tests
// that compare regexes for language equivalence should normalize via
// Alternatives (recursively) rather than comparing strings directly, per
// spec.md §8.
package relevance
