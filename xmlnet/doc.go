// SPDX-License-Identifier: MIT
//
// Package xmlnet loads a network.Network from its XML document form.
// spec.md §1 treats XML deserialization as an external collaborator whose
// contract, not implementation, is the core's concern; this package
// supplies that collaborator so the CLI (cmd/fadiag) has an end-to-end
// input path.
//
// Construction follows original_source/retefa.py's fromXML dependency
// order exactly, so every cross-reference check runs after its referent
// already exists: behaviors, then links (checked against behaviors), then
// per behavior its states, initial state, and transitions (each checked
// against states and links already built). The element/attribute
// vocabulary itself is this module's own (English, matching the rest of
// the repository) rather than retefa.py's Italian tag names — spec.md
// leaves the wire format unspecified, only the load order and error
// kinds.
package xmlnet
