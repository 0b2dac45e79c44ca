package atg

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadChar reads a single logical character from input, resolving
// escape sequences as it goes (spec.md §4.2).
//
// Returns the resolved scalar, the remaining input, and the number of
// bytes consumed (advanced). If input is empty, fails with
// ErrUnexpectedEnd. If the first scalar is the dialect's escape and the
// following scalar is neither a control point nor the start of a valid
// 2/4/6 hex-digit sequence, fails with ErrMalformedEscape.
func ReadChar(d Dialect, input string) (c rune, remaining string, advanced int, err *ParseError) {
	if input == "" {
		return 0, "", 0, &ParseError{Reason: ErrUnexpectedEnd, Detail: "char"}
	}
	first, firstSize := decodeRune(input)
	if first != d.ControlPoints.Escape {
		return first, input[firstSize:], firstSize, nil
	}

	rest := input[firstSize:]
	if rest == "" {
		return 0, "", 0, &ParseError{Reason: ErrMalformedEscape, Detail: input}
	}
	next, nextSize := decodeRune(rest)
	if d.IsControlPoint(next) {
		advanced := firstSize + nextSize
		return next, input[advanced:], advanced, nil
	}

	// Longest match wins: try 6, then 4, then 2 hex digits.
	for _, n := range []int{6, 4, 2} {
		if digits, ok := takeHexDigits(rest, n); ok {
			value, convErr := strconv.ParseUint(digits, 16, 32)
			if convErr != nil || !utf8.ValidRune(rune(value)) {
				continue
			}
			advanced := firstSize + n
			return rune(value), input[advanced:], advanced, nil
		}
	}
	return 0, "", 0, &ParseError{Reason: ErrMalformedEscape, Detail: input}
}

// decodeRune decodes the first rune of s, returning the replacement
// character and a size of 1 for invalid UTF-8 so that parsing always
// makes progress.
func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1
	}
	return r, size
}

// takeHexDigits returns the first n ASCII hex digits of s (and whether
// there were at least n of them, all hex digits).
func takeHexDigits(s string, n int) (string, bool) {
	if len(s) < n {
		return "", false
	}
	for i := 0; i < n; i++ {
		if !isHexDigit(s[i]) {
			return "", false
		}
	}
	return s[:n], true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// ReadUntil reads characters via ReadChar until terminator is produced,
// returning the accumulated run (excluding the terminator) and the
// remaining input. Fails with ErrUnexpectedEnd if input is exhausted
// first.
func ReadUntil(d Dialect, input string, terminator rune) (run string, remaining string, advanced int, err *ParseError) {
	var b strings.Builder
	offset := 0
	for {
		if input == "" {
			return "", "", 0, &ParseError{Offset: offset, Reason: ErrUnexpectedEnd, Detail: string(terminator)}
		}
		c, rest, n, rerr := ReadChar(d, input)
		if rerr != nil {
			return "", "", 0, rerr.WithOffset(offset)
		}
		offset += n
		input = rest
		if c == terminator {
			return b.String(), input, offset, nil
		}
		b.WriteRune(c)
	}
}

// ReadUntilControl reads characters until the next unescaped control
// point of the dialect, or EOF is reached; an escaped control point is
// a literal and is accumulated into the run. Returns the
// accumulated run, the stopping control point (or 0, false on EOF), the
// remainder INCLUDING the control point (i.e. not yet consumed), and the
// number of bytes consumed to produce run.
func ReadUntilControl(d Dialect, input string) (run string, stop rune, stopped bool, remaining string, advanced int, err *ParseError) {
	var b strings.Builder
	offset := 0
	for {
		if input == "" {
			return b.String(), 0, false, input, offset, nil
		}
		c, rest, n, rerr := ReadChar(d, input)
		if rerr != nil {
			return "", 0, false, "", 0, rerr.WithOffset(offset)
		}
		if first, _ := decodeRune(input); d.IsControlPoint(c) && first != d.ControlPoints.Escape {
			return b.String(), c, true, input, offset, nil
		}
		offset += n
		input = rest
		b.WriteRune(c)
	}
}
