// SPDX-License-Identifier: MIT
// File: key.go
// Role: the value-equality key used to deduplicate nodes during
// construction (spec.md §3's "Node identity" rule). Identical state
// vectors, buffer contents, acceptance flag and observation index collapse
// to one arena slot; everything after construction compares by arena index
// only (spec.md §9's identity-vs-value-equality warning).

package bspace

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fadiag/network"
)

// unitSep and recordSep separate fields/records in the key string. Behavior,
// state and link names are ordinary identifiers and never contain these
// control characters in a well-formed network.
const (
	unitSep   = "\x1f"
	recordSep = "\x1e"
)

func nodeKey(stateVector []*network.State, bufferVector []string, isAccepting bool, observationIndex int) string {
	var sb strings.Builder
	for _, s := range stateVector {
		sb.WriteString(s.Name)
		sb.WriteString(unitSep)
	}
	sb.WriteString(recordSep)
	for _, b := range bufferVector {
		sb.WriteString(b)
		sb.WriteString(unitSep)
	}
	sb.WriteString(recordSep)
	if isAccepting {
		sb.WriteString("1")
	} else {
		sb.WriteString("0")
	}
	sb.WriteString(recordSep)
	sb.WriteString(strconv.Itoa(observationIndex))

	return sb.String()
}
