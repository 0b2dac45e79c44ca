package atg

import "fmt"

// ErrorReason is the kind of problem encountered while parsing ATG,
// without the byte offset at which it occurred. See spec.md §7 for the
// full taxonomy.
type ErrorReason int

const (
	// ErrMalformedEscape: escape was not followed by a control point or
	// 2/4/6 ASCII hex digits forming a scalar value.
	ErrMalformedEscape ErrorReason = iota
	// ErrMissingParameterStart: the expected StartParam was not found.
	ErrMissingParameterStart
	// ErrLengthNotANumber: the first parameter of an illegible/lacuna
	// run did not parse as a decimal uint8.
	ErrLengthNotANumber
	// ErrLengthOverflow: a length (derived from a proposal string, or
	// parsed directly) exceeds 255.
	ErrLengthOverflow
	// ErrNotNative: a non-native scalar appeared in a native-only
	// parameter.
	ErrNotNative
	// ErrAnchor: the anchor dialect's parser rejected the literal.
	ErrAnchor
	// ErrUnknownFormatBreak: the format-break parameter was not one of
	// "line", "column", "paragraph", "folio".
	ErrUnknownFormatBreak
	// ErrUnexpectedEnd: input ended while a terminator was still
	// awaited.
	ErrUnexpectedEnd
	// ErrIncorrectNumberOfCorrections: a correction's arity did not
	// match the witness-declared K.
	ErrIncorrectNumberOfCorrections
)

func (r ErrorReason) String() string {
	switch r {
	case ErrMalformedEscape:
		return "malformed escape"
	case ErrMissingParameterStart:
		return "missing parameter start"
	case ErrLengthNotANumber:
		return "length is not a number"
	case ErrLengthOverflow:
		return "length exceeds 255"
	case ErrNotNative:
		return "not native"
	case ErrAnchor:
		return "anchor error"
	case ErrUnknownFormatBreak:
		return "unknown format break"
	case ErrUnexpectedEnd:
		return "unexpected end of input"
	case ErrIncorrectNumberOfCorrections:
		return "incorrect number of corrections"
	default:
		return "unknown error"
	}
}

// ParseError is the error type for every ATG parsing failure. Offset is
// a byte offset into the original input, accumulated by each parser
// adding the number of bytes it consumed before delegating to a child
// parser (spec.md §7).
type ParseError struct {
	Offset int
	Reason ErrorReason
	// Detail carries the offending text for reasons that reference one
	// (escape sequence, length literal, non-native string, format-break
	// literal), or the terminator rune for ErrUnexpectedEnd.
	Detail string
	// Expected/Got are only set for ErrIncorrectNumberOfCorrections.
	Expected, Got int
	// Err wraps an inner error, only set for ErrAnchor.
	Err error
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ErrMalformedEscape:
		return fmt.Sprintf("%s at byte %d: %q cannot be used as an escape sequence", e.Reason, e.Offset, e.Detail)
	case ErrLengthNotANumber:
		return fmt.Sprintf("%s at byte %d: %q is not parsable as a length value", e.Reason, e.Offset, e.Detail)
	case ErrLengthOverflow:
		return fmt.Sprintf("%s at byte %d: length %q exceeds the maximum of 255", e.Reason, e.Offset, e.Detail)
	case ErrNotNative:
		return fmt.Sprintf("%s at byte %d: %q is not native to the dialect", e.Reason, e.Offset, e.Detail)
	case ErrAnchor:
		return fmt.Sprintf("%s at byte %d: %s", e.Reason, e.Offset, e.Err)
	case ErrUnknownFormatBreak:
		return fmt.Sprintf("%s at byte %d: %q is not 'line', 'column', 'paragraph', or 'folio'", e.Reason, e.Offset, e.Detail)
	case ErrUnexpectedEnd:
		return fmt.Sprintf("%s at byte %d: expected %q before end of input", e.Reason, e.Offset, e.Detail)
	case ErrIncorrectNumberOfCorrections:
		return fmt.Sprintf("%s at byte %d: expected %d, got %d", e.Reason, e.Offset, e.Expected, e.Got)
	default:
		return fmt.Sprintf("%s at byte %d", e.Reason, e.Offset)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WithOffset returns a copy of e with delta added to its Offset. Used by
// enclosing parsers to shift a child parser's error into their own
// coordinate system (spec.md §7).
func (e *ParseError) WithOffset(delta int) *ParseError {
	cp := *e
	cp.Offset += delta
	return &cp
}
