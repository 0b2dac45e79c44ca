package atg

import (
	"errors"
	"strconv"
)

// AnchorDialect parses an anchor literal (the text inside a
// `§(…)`-style parameter) into a typed AnchorValue. Concrete anchor
// dialects live in package anchor; this is the minimal interface the
// text parser depends on, to avoid a dependency cycle.
type AnchorDialect interface {
	Parse(s string) (AnchorValue, error)
}

// Text is an ordered sequence of Parts (spec.md §3).
type Text struct {
	Parts []Part
}

// Render is the inverse of Parse for the canonical subset: it does not
// re-emit comments or non-semantic scalars, and coalesces nothing
// itself (coalescing is a normal form used only when comparing parsed
// output, see spec.md §4.5).
func (t Text) Render(d Dialect) string {
	var res string
	for _, p := range t.Parts {
		res += p.render(d)
	}
	return res
}

// Parse parses s as ATG text under dialect d, using anchorDialect to
// resolve anchor literals and expecting exactly numCorrections versions
// in every Correction (spec.md §4.4).
func Parse(d Dialect, s string, anchorDialect AnchorDialect, numCorrections int) (Text, error) {
	var parts []Part
	remaining := s
	for {
		part, rest, err := parsePart(d, remaining, anchorDialect, numCorrections)
		if err != nil {
			return Text{}, err
		}
		parts = append(parts, part)
		remaining = rest
		if remaining == "" {
			break
		}
	}
	return Text{Parts: parts}, nil
}

// parsePart parses a single Part from the front of s.
func parsePart(d Dialect, s string, anchorDialect AnchorDialect, numCorrections int) (Part, string, *ParseError) {
	if s == "" {
		return Native(""), s, nil
	}
	cp := d.ControlPoints

	// An escaped control point is a literal with no control meaning, so
	// input that starts with an escape is native text.
	if first, _ := decodeRune(s); first == cp.Escape {
		return parseNative(d, s)
	}

	c, rest, n, err := ReadChar(d, s)
	if err != nil {
		return nil, "", err
	}

	switch c {
	case cp.Illegible:
		u, rem, err := parseUncertain(d, rest, KindIllegible)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		return u, rem, nil
	case cp.Lacuna:
		u, rem, err := parseUncertain(d, rest, KindLacuna)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		return u, rem, nil
	case cp.Anchor:
		a, rem, err := parseAnchor(d, rest, anchorDialect)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		return a, rem, nil
	case cp.FormatBreak:
		f, rem, err := parseFormatBreak(d, rest)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		return f, rem, nil
	case cp.Correction:
		corr, rem, err := parseCorrection(d, rest, numCorrections)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		return corr, rem, nil
	case cp.Comment:
		commentLen, rem, err := parseComment(d, rest)
		if err != nil {
			return nil, "", err.WithOffset(n)
		}
		part, rem2, err := parseNative(d, rem)
		if err != nil {
			return nil, "", err.WithOffset(commentLen)
		}
		return part, rem2, nil
	default:
		return parseNative(d, s)
	}
}

// parseComment reads a `(…)` comment body (discarded) and returns its
// length (used only to offset nested errors) and the remainder.
func parseComment(d Dialect, s string) (int, string, *ParseError) {
	comment, rem, _, err := ReadParameter(d, s)
	if err != nil {
		return 0, "", err
	}
	return len(comment), rem, nil
}

// parseNative reads all characters up to the next "real" (non-comment,
// non-non-semantic) control point, transparently discarding comments
// and non-semantic scalars along the way (spec.md §4.4).
func parseNative(d Dialect, s string) (Part, string, *ParseError) {
	if s == "" {
		return Native(""), "", nil
	}
	var res string
	offset := 0
	run, stop, stopped, remaining, n, err := ReadUntilControl(d, s)
	if err != nil {
		return nil, "", err
	}
	res += run
	offset += n
	for {
		if !stopped {
			return Native(res), "", nil
		}
		cp := d.ControlPoints
		switch {
		case stop == cp.Comment:
			_, stopSize := decodeRune(remaining)
			commentLen, rem, err := parseComment(d, remaining[stopSize:])
			if err != nil {
				return nil, "", err.WithOffset(offset + stopSize)
			}
			var nextRun string
			nextRun, stop, stopped, remaining, n, err = ReadUntilControl(d, rem)
			if err != nil {
				return nil, "", err.WithOffset(offset + commentLen)
			}
			offset += n
			res += nextRun
		case d.IsNonSemantic(stop):
			_, skipSize, _ := readOne(remaining)
			var nextRun string
			nextRun, stop, stopped, remaining, n, err = ReadUntilControl(d, remaining[skipSize:])
			if err != nil {
				return nil, "", err.WithOffset(offset)
			}
			offset += n
			res += nextRun
		default:
			return Native(res), remaining, nil
		}
	}
}

// readOne reads the raw rune at the front of s (used only to skip past
// a single non-semantic scalar we already identified via ReadChar).
func readOne(s string) (rune, int, bool) {
	r, size := decodeRune(s)
	return r, size, true
}

// parseUncertain parses `(len)` followed by an optional native
// `(proposal)` into an Uncertain part (spec.md §4.4). The caller has
// already consumed the introducing control point.
func parseUncertain(d Dialect, s string, kind UncertainKind) (Part, string, *ParseError) {
	lenStr, rest, n, err := ReadParameter(d, s)
	if err != nil {
		return nil, "", err
	}
	length, convErr := strconv.ParseUint(lenStr, 10, 8)
	if convErr != nil {
		var numErr *strconv.NumError
		if errors.As(convErr, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, "", &ParseError{Offset: n, Reason: ErrLengthOverflow, Detail: lenStr}
		}
		return nil, "", &ParseError{Offset: n, Reason: ErrLengthNotANumber, Detail: lenStr}
	}
	if length < 1 {
		return nil, "", &ParseError{Offset: n, Reason: ErrLengthNotANumber, Detail: lenStr}
	}

	if rest == "" {
		return Uncertain{Kind: kind, Len: uint8(length)}, rest, nil
	}

	proposal, rem, _, perr := ReadNativeParameter(d, rest)
	if perr != nil {
		if perr.Reason == ErrMissingParameterStart {
			return Uncertain{Kind: kind, Len: uint8(length)}, rest, nil
		}
		return nil, "", perr.WithOffset(n)
	}
	if proposal == "" {
		return Uncertain{Kind: kind, Len: uint8(length)}, rem, nil
	}
	return Uncertain{Kind: kind, Len: uint8(length), Proposal: &proposal}, rem, nil
}

// parseAnchor parses `(anchor_literal)` and delegates to the anchor
// dialect's parser.
func parseAnchor(d Dialect, s string, anchorDialect AnchorDialect) (Part, string, *ParseError) {
	literal, rem, _, err := ReadParameter(d, s)
	if err != nil {
		return nil, "", err
	}
	value, aerr := anchorDialect.Parse(literal)
	if aerr != nil {
		return nil, "", &ParseError{Reason: ErrAnchor, Err: aerr}
	}
	return AnchorPart{Value: value}, rem, nil
}

// parseFormatBreak parses `(line|column|paragraph|folio)`.
func parseFormatBreak(d Dialect, s string) (Part, string, *ParseError) {
	lit, rem, _, err := ReadParameter(d, s)
	if err != nil {
		return nil, "", err
	}
	switch lit {
	case "line":
		return FormatBreak{Kind: BreakLine}, rem, nil
	case "column":
		return FormatBreak{Kind: BreakColumn}, rem, nil
	case "paragraph":
		return FormatBreak{Kind: BreakParagraph}, rem, nil
	case "folio":
		return FormatBreak{Kind: BreakFolio}, rem, nil
	default:
		return nil, "", &ParseError{Reason: ErrUnknownFormatBreak, Detail: lit}
	}
}

// parseCorrection reads native parameters until the next scalar is not
// StartParam, failing if the count does not match numCorrections
// (spec.md §4.4).
func parseCorrection(d Dialect, s string, numCorrections int) (Part, string, *ParseError) {
	var versions []Present
	offset := 0
	remaining := s
	for {
		param, rest, n, err := ReadNativeParameter(d, remaining)
		if err != nil {
			if err.Reason == ErrMissingParameterStart {
				if len(versions) != numCorrections {
					return nil, "", &ParseError{
						Offset:   offset,
						Reason:   ErrIncorrectNumberOfCorrections,
						Expected: numCorrections,
						Got:      len(versions),
					}
				}
				return Correction{Versions: versions}, remaining, nil
			}
			return nil, "", err.WithOffset(offset)
		}
		versions = append(versions, Present{Native: param})
		offset += n
		remaining = rest
	}
}
