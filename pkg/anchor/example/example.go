// Package example implements a minimal two-stanza anchor dialect, used
// in tests and documentation to demonstrate the anchor.Dialect
// interface without committing to a real versification scheme.
package example

import (
	"github.com/curatorsigma/critic/pkg/anchor"
)

// Stanza is one of the two stanzas of the toy two-stanza poem this
// dialect anchors.
type Stanza int

const (
	StanzaOne Stanza = iota + 1
	StanzaTwo
)

func (s Stanza) String() string {
	switch s {
	case StanzaOne:
		return "1"
	case StanzaTwo:
		return "2"
	default:
		return "?"
	}
}

// Equal implements anchor.Value.
func (s Stanza) Equal(other anchor.Value) bool {
	o, ok := other.(Stanza)
	return ok && s == o
}

const dialectName = "example"

// Dialect is the anchor.Dialect for Stanza.
type Dialect struct{}

// Name implements anchor.Dialect.
func (Dialect) Name() string { return dialectName }

// Parse implements anchor.Dialect. literal must be exactly "1" or "2".
func (Dialect) Parse(literal string) (anchor.Value, error) {
	switch {
	case literal == "":
		return nil, &anchor.Error{Dialect: dialectName, Literal: literal, Reason: "empty string is no valid stanza number"}
	case len(literal) >= 2:
		return nil, &anchor.Error{Dialect: dialectName, Literal: literal, Reason: "more than one character is no valid stanza number"}
	}
	switch literal {
	case "1":
		return StanzaOne, nil
	case "2":
		return StanzaTwo, nil
	default:
		if literal[0] < '0' || literal[0] > '9' {
			return nil, &anchor.Error{Dialect: dialectName, Literal: literal, Reason: "not a number"}
		}
		return nil, &anchor.Error{Dialect: dialectName, Literal: literal, Reason: "must be 1 or 2"}
	}
}
