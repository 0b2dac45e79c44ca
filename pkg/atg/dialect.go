// Package atg implements the ATG (Annotated Text Grammar) parser: an
// escape- and control-point-driven markup for transcribing manuscript
// witnesses, parameterised by a pluggable dialect.
package atg

import "strings"

// ControlPoints defines the nine distinguished scalar values that carry
// syntactic meaning in one ATG dialect, plus the set of non-semantic
// scalars that are silently skipped outside of parameters.
//
// Invariant: all nine distinguished scalars are pairwise distinct and
// disjoint from NonSemantic; NonSemantic contains no distinguished
// scalar. Dialect authors are responsible for this invariant — it is
// checked defensively by Dialect.Validate, not enforced by the type.
type ControlPoints struct {
	// Escape introduces a literal-escape or hex-escape sequence. See
	// ReadChar for the exact grammar.
	Escape rune
	// StartParam opens a `(…)`-delimited parameter.
	StartParam rune
	// StopParam closes a `(…)`-delimited parameter.
	StopParam rune
	// Illegible introduces a visibly present but unreadable run.
	Illegible rune
	// Lacuna introduces a missing run.
	Lacuna rune
	// Anchor introduces a positional waypoint, parsed by an anchor
	// dialect.
	Anchor rune
	// FormatBreak introduces a layout cue (line/column/paragraph/folio).
	FormatBreak rune
	// Correction introduces a scribal correction with one parameter per
	// hand.
	Correction rune
	// Comment introduces a parameter that is parsed and discarded.
	Comment rune
	// NonSemantic lists scalars with no meaning at all; they are
	// skipped wherever they occur outside of a parameter body.
	NonSemantic string
}

// IsControlPoint reports whether c is one of the nine distinguished
// control points, or is a non-semantic scalar.
func (cp ControlPoints) IsControlPoint(c rune) bool {
	switch c {
	case cp.Escape, cp.StartParam, cp.StopParam, cp.Illegible, cp.Lacuna,
		cp.Anchor, cp.FormatBreak, cp.Correction, cp.Comment:
		return true
	}
	return cp.IsNonSemantic(c)
}

// IsNonSemantic reports whether c is in the dialect's non-semantic set.
func (cp ControlPoints) IsNonSemantic(c rune) bool {
	return strings.ContainsRune(cp.NonSemantic, c)
}

// Dialect bundles a ControlPoints definition with the native character
// set, the punctuation subset, and the word divisor for one ATG
// dialect.
//
// Invariant: Punctuation is a subset of NativePoints; WordDivisor is not
// itself a native point (it is a separator, not language content).
type Dialect struct {
	// Name is the dialect's registry key, e.g. "example".
	Name string
	// ControlPoints is this dialect's control-point definition.
	ControlPoints ControlPoints
	// NativePoints lists every scalar allowed in language content
	// (after escape resolution and comment/non-semantic removal).
	NativePoints string
	// Punctuation is the subset of NativePoints that tokenises as a
	// standalone word regardless of surrounding word divisors.
	Punctuation string
	// WordDivisor is the scalar used to separate words; conventionally
	// a space.
	WordDivisor rune
}

// IsNative reports whether c is allowed in the dialect's native
// (language) content.
func (d Dialect) IsNative(c rune) bool {
	return strings.ContainsRune(d.NativePoints, c)
}

// IsPunctuation reports whether c tokenises as a standalone word.
func (d Dialect) IsPunctuation(c rune) bool {
	return strings.ContainsRune(d.Punctuation, c)
}

// IsControlPoint reports whether c is a control point of this dialect.
func (d Dialect) IsControlPoint(c rune) bool {
	return d.ControlPoints.IsControlPoint(c)
}

// IsNonSemantic reports whether c is non-semantic in this dialect.
func (d Dialect) IsNonSemantic(c rune) bool {
	return d.ControlPoints.IsNonSemantic(c)
}

// Validate checks the dialect invariants from spec.md §3: the nine
// control points are pairwise distinct and disjoint from NonSemantic,
// NonSemantic contains no control point, Punctuation is a subset of
// NativePoints, and WordDivisor is not itself a native point.
func (d Dialect) Validate() error {
	cp := d.ControlPoints
	points := []rune{cp.Escape, cp.StartParam, cp.StopParam, cp.Illegible,
		cp.Lacuna, cp.Anchor, cp.FormatBreak, cp.Correction, cp.Comment}
	seen := make(map[rune]bool, len(points))
	for _, p := range points {
		if seen[p] {
			return &DialectError{Dialect: d.Name, Reason: "control points are not pairwise distinct"}
		}
		seen[p] = true
		if strings.ContainsRune(cp.NonSemantic, p) {
			return &DialectError{Dialect: d.Name, Reason: "non_semantic overlaps a control point"}
		}
	}
	for _, r := range d.Punctuation {
		if !d.IsNative(r) {
			return &DialectError{Dialect: d.Name, Reason: "punctuation is not a subset of native_points"}
		}
	}
	if d.IsNative(d.WordDivisor) {
		return &DialectError{Dialect: d.Name, Reason: "word_divisor must not be a native point"}
	}
	return nil
}

// DialectError reports a dialect that fails Dialect.Validate.
type DialectError struct {
	Dialect string
	Reason  string
}

func (e *DialectError) Error() string {
	return "invalid dialect " + e.Dialect + ": " + e.Reason
}
