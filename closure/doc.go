// SPDX-License-Identifier: MIT
//
// Package closure implements the silent-closure builder (spec.md §4.5,
// component C6a) and the subscripted regex extractor (spec.md §4.6,
// component C6b).
//
// A Closure is the sub-graph of a pruned behavioral space reachable from
// an entry node via unobservable edges only. The subscripted extractor is
// extract's state-elimination loop generalized to track, per surviving
// edge, which closure acceptance node its label currently describes (its
// "subscript") — so that at the end, every acceptance node ends up
// decorated with its own regex instead of all acceptance nodes being
// merged into one.
//
// Per spec.md §9, a subscript is represented here as the stable integer
// index the acceptance node already has in the owning bspace.Space, not
// as a separate identity token — closure member nodes keep that same
// integer id throughout, so no translation map back to the source
// closure is needed (only entirely new ids, for a normalization-
// introduced n0/nq, are allocated past the end of the Space's node
// range).
package closure
