// SPDX-License-Identifier: MIT
// File: walk.go
// Role: C8 — linear diagnoser walk, per spec.md §4.8.

package diagnoser

import "github.com/katalvlaran/fadiag/relevance"

// frontierEntry keeps frontier iteration order deterministic (map
// iteration order is not), matching spec.md §5's determinism requirement.
type frontierEntry struct {
	node  int
	regex string
}

// Walk computes the relevance regex d produces for observation, per
// spec.md §4.8. d is not mutated and may be walked any number of times
// over different observations.
func Walk(d *Diagnoser, observation []string) string {
	frontier := []frontierEntry{{node: d.Initial, regex: ""}}

	for _, o := range observation {
		index := make(map[int]int) // node -> position in next
		var next []frontierEntry

		for _, f := range frontier {
			for _, ei := range d.Nodes[f.node].Out {
				e := d.Edges[ei]
				if e.ObservabilityLabel != o {
					continue
				}

				step := relevance.Concat(f.regex, e.RelevanceLabel)
				if pos, ok := index[e.Target]; ok {
					next[pos].regex = relevance.Alternate(next[pos].regex, step)
				} else {
					index[e.Target] = len(next)
					next = append(next, frontierEntry{node: e.Target, regex: step})
				}
			}
		}

		frontier = next
	}

	var results []string
	for _, f := range frontier {
		node := d.Nodes[f.node]
		if !node.Accepting {
			continue
		}
		results = append(results, relevance.Concat(f.regex, node.Closure.Diagnosis))
	}

	if len(results) == 0 {
		return ""
	}

	diagnosis := results[0]
	for _, r := range results[1:] {
		diagnosis = relevance.Alternate(diagnosis, r)
	}

	return diagnosis
}
