// Package grammar publishes the EBNF grammar of the document format.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

const (
	// Filename is the name the grammar is reported under in errors.
	Filename = "sectsv.ebnf"
	// Start is the root production.
	Start = "Document"
)

//go:embed sectsv.ebnf
var source []byte

// Source returns the grammar text.
func Source() []byte {
	out := make([]byte, len(source))
	copy(out, source)
	return out
}

// Load parses the grammar and verifies that every production is defined and
// reachable from Start.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(Filename, bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
