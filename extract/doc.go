// SPDX-License-Identifier: MIT
//
// Package extract implements the unlabeled regex extractor (spec.md §4.4,
// component C5): generalized state elimination over a pruned behavioral
// space, producing a single relevance regex.
//
// The algorithm is the regex-semiring analogue of Floyd-Warshall's
// triple-nested relaxation: where Floyd-Warshall relaxes d[i][j] via an
// intermediate k using (min,+),
// state elimination relaxes the edge label between every remaining pair of
// nodes via an eliminated intermediate w using (alternate, concat-with-
// star) — relevance.Distribute is that combine step. Series and parallel
// rewrites are the same elimination specialized to the common case where
// the intermediate node has no branching, so they are preferred (cheaper,
// and keep the produced regex shorter) before the general case runs.
//
// Extraction always runs on a fresh internal working graph built from the
// input Space's relevance labels alone (spec.md's "operates on a working
// copy" requirement) — the input Space itself is never mutated.
package extract
