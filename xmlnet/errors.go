// SPDX-License-Identifier: MIT
// File: errors.go

package xmlnet

import "errors"

// ErrMalformedInput indicates the XML document could not be parsed into
// the expected element/attribute shape at all (spec.md §7's
// MalformedInput kind). Cross-reference failures within an otherwise
// well-formed document surface as network.ErrUnresolvedReference instead,
// unchanged from the error the referencing network call itself returns.
var ErrMalformedInput = errors.New("xmlnet: malformed input")
