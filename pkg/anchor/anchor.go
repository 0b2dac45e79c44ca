// Package anchor provides the pluggable positional-waypoint abstraction
// used to mark a Text at a place in some external addressing scheme
// (verse number, line number, stanza, …), independent of the ATG
// dialect carrying it.
package anchor

import (
	"strconv"

	"github.com/curatorsigma/critic/pkg/atg"
)

// Value is a parsed anchor literal: a value object that prints back to
// its canonical literal form and supports equality, so that two Texts
// parsed from the same source compare equal regardless of incidental
// formatting differences.
type Value interface {
	// String renders the anchor back to its canonical literal, the
	// inverse of the owning Dialect's Parse.
	String() string
	// Equal reports whether other denotes the same waypoint.
	Equal(other Value) bool
}

// Dialect parses an anchor literal into a Value. A Dialect is named so
// it can be registered and looked up by witnesses (pkg/witness) that
// declare which anchor scheme a block uses.
type Dialect interface {
	// Name identifies the dialect for registry lookup and witness
	// metadata.
	Name() string
	// Parse parses the literal found inside an anchor's parameter, e.g.
	// "3.12" for a verse.line scheme.
	Parse(literal string) (Value, error)
}

// Error is returned by a Dialect's Parse when literal is not a valid
// anchor under that dialect.
type Error struct {
	Dialect string
	Literal string
	Reason  string
}

func (e *Error) Error() string {
	return e.Dialect + ": invalid anchor literal " + strconv.Quote(e.Literal) + ": " + e.Reason
}

// asAtgDialect adapts a Dialect to atg.AnchorDialect, which the parser
// depends on instead of this package directly, to avoid a dependency
// cycle between atg and anchor.
type asAtgDialect struct {
	d Dialect
}

func (a asAtgDialect) Parse(literal string) (atg.AnchorValue, error) {
	return a.d.Parse(literal)
}

// AsAtgDialect exposes d through the atg.AnchorDialect interface, for
// passing to atg.Parse.
func AsAtgDialect(d Dialect) atg.AnchorDialect {
	return asAtgDialect{d: d}
}
