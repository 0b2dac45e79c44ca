package atg

import "strconv"

// Part is one element of a Text (spec.md §3). It is a closed sum type;
// callers switch on the concrete type, not on a discriminant field.
type Part interface {
	isPart()
	render(d Dialect) string
}

// Native is a run of native scalars, after escape resolution and
// comment/non-semantic removal. May be empty only as a sentinel (e.g.
// the result of parsing an empty input).
type Native string

func (Native) isPart() {}

func (n Native) render(Dialect) string { return string(n) }

// UncertainKind distinguishes the two reasons a passage may be
// uncertain.
type UncertainKind int

const (
	// KindIllegible: visibly present but unreadable.
	KindIllegible UncertainKind = iota
	// KindLacuna: missing entirely.
	KindLacuna
)

// Uncertain is a visibly-present-but-unreadable (Illegible) or
// missing (Lacuna) run of Len scalars, with an optional best-effort
// Proposal. Invariant: 1 <= Len <= 255; Proposal, when present,
// contains only native scalars.
type Uncertain struct {
	Kind     UncertainKind
	Len      uint8
	Proposal *string
}

func (Uncertain) isPart() {}

func (u Uncertain) controlRune(d Dialect) rune {
	if u.Kind == KindIllegible {
		return d.ControlPoints.Illegible
	}
	return d.ControlPoints.Lacuna
}

func (u Uncertain) render(d Dialect) string {
	cp := d.ControlPoints
	head := string(u.controlRune(d)) + string(cp.StartParam) + strconv.Itoa(int(u.Len)) + string(cp.StopParam)
	if u.Proposal == nil {
		return head
	}
	return head + string(cp.StartParam) + *u.Proposal + string(cp.StopParam)
}

// Present is a passage that is present in the witness, whether legible
// or not: either native text, or a (native-only, per spec.md §9 Open
// Questions) illegible run. It is used exclusively as the per-hand
// payload of Correction.
type Present struct {
	// Native holds the native text when IsIllegible is false.
	Native string
	// IsIllegible selects the Illegible case; Illegible then holds the
	// run.
	IsIllegible bool
	Illegible   Uncertain
}

func (p Present) render(d Dialect) string {
	if p.IsIllegible {
		return p.Illegible.render(d)
	}
	return p.Native
}

// Correction is a scribal correction: exactly K parallel Versions of
// the same passage, one per correcting hand, in hand order (spec.md
// §3).
type Correction struct {
	Versions []Present
}

func (Correction) isPart() {}

func (c Correction) render(d Dialect) string {
	cp := d.ControlPoints
	res := string(cp.Correction)
	for _, v := range c.Versions {
		res += string(cp.StartParam) + v.render(d) + string(cp.StopParam)
	}
	return res
}

// FormatBreakKind enumerates the four recognised format breaks.
type FormatBreakKind int

const (
	BreakLine FormatBreakKind = iota
	BreakColumn
	BreakParagraph
	BreakFolio
)

func (k FormatBreakKind) String() string {
	switch k {
	case BreakLine:
		return "line"
	case BreakColumn:
		return "column"
	case BreakParagraph:
		return "paragraph"
	case BreakFolio:
		return "folio"
	default:
		return "unknown"
	}
}

// FormatBreak is a layout cue: line, column, paragraph, or folio
// boundary.
type FormatBreak struct {
	Kind FormatBreakKind
}

func (FormatBreak) isPart() {}

func (f FormatBreak) render(d Dialect) string {
	cp := d.ControlPoints
	return string(cp.FormatBreak) + string(cp.StartParam) + f.Kind.String() + string(cp.StopParam)
}

// AnchorPart is a positional waypoint, parsed by the text's anchor
// dialect.
type AnchorPart struct {
	Value AnchorValue
}

func (AnchorPart) isPart() {}

func (a AnchorPart) render(d Dialect) string {
	cp := d.ControlPoints
	return string(cp.Anchor) + string(cp.StartParam) + a.Value.String() + string(cp.StopParam)
}

// AnchorValue is the minimal interface a parsed anchor literal must
// satisfy: total display. Equality is not part of this interface;
// pkg/anchor's Value adds an Equal method. Concrete anchor dialects
// live in pkg/anchor.
type AnchorValue interface {
	String() string
}
