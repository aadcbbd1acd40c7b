// SPDX-License-Identifier: MIT
// File: load.go
// Role: XML decoding plus ordered network.Network construction.

package xmlnet

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fadiag/network"
)

// Load parses an XML network document from r and builds the frozen
// network.Network it describes, in the dependency order
// original_source/retefa.py's fromXML uses: behaviors, then links, then
// per behavior its states, initial state, and transitions.
func Load(r io.Reader) (*network.Network, error) {
	var doc networkDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("xmlnet: decoding: %w: %v", ErrMalformedInput, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("xmlnet: missing network name attribute: %w", ErrMalformedInput)
	}

	net := network.New(doc.Name)

	for _, b := range doc.Behaviors {
		if _, err := net.AddBehavior(b.Name); err != nil {
			return nil, err
		}
	}

	for _, l := range doc.Links {
		if _, err := net.AddLink(l.Name, l.From, l.To); err != nil {
			return nil, err
		}
	}

	for _, bd := range doc.Behaviors {
		b := net.FindBehavior(bd.Name)
		for _, sd := range bd.States {
			if _, err := b.AddState(sd.Name); err != nil {
				return nil, err
			}
		}
		if err := b.SetInitialState(bd.Initial); err != nil {
			return nil, err
		}
		for _, td := range bd.Transitions {
			opts := transitionOptions(td)
			if _, err := b.AddTransition(td.Name, td.From, td.To, opts...); err != nil {
				return nil, err
			}
		}
	}

	if err := net.Freeze(); err != nil {
		return nil, err
	}

	return net, nil
}

func transitionOptions(td transitionDoc) []network.TransitionOption {
	var opts []network.TransitionOption
	if td.Observability != "" {
		opts = append(opts, network.WithObservability(td.Observability))
	}
	if td.Relevance != "" {
		opts = append(opts, network.WithRelevance(td.Relevance))
	}
	if td.Required != nil {
		opts = append(opts, network.WithRequiredEvent(td.Required.Link, td.Required.Event))
	}
	for _, o := range td.Outputs {
		opts = append(opts, network.WithOutputEvent(o.Link, o.Event))
	}

	return opts
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmlnet: opening %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
