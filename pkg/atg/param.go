package atg

// ReadParameter requires the next character to be StartParam, then
// reads until StopParam, returning the parameter body (spec.md §4.3).
// Empty input is reported as ErrMissingParameterStart rather than
// ErrUnexpectedEnd, since callers that parse a variable number of
// trailing parameters (e.g. a Correction's versions) rely on exactly
// this reason to detect they have run out of parameters at EOF.
func ReadParameter(d Dialect, input string) (param string, remaining string, advanced int, err *ParseError) {
	if input == "" {
		return "", "", 0, &ParseError{Reason: ErrMissingParameterStart}
	}
	first, rest, n, rerr := ReadChar(d, input)
	if rerr != nil {
		return "", "", 0, rerr
	}
	if first != d.ControlPoints.StartParam {
		return "", "", 0, &ParseError{Reason: ErrMissingParameterStart}
	}
	param, remaining, bodyAdvanced, rerr := ReadUntil(d, rest, d.ControlPoints.StopParam)
	if rerr != nil {
		return "", "", 0, rerr.WithOffset(n)
	}
	return param, remaining, n + bodyAdvanced, nil
}

// ReadNativeParameter is ReadParameter, additionally asserting every
// scalar of the result is in the dialect's native_points.
func ReadNativeParameter(d Dialect, input string) (param string, remaining string, advanced int, err *ParseError) {
	param, remaining, advanced, rerr := ReadParameter(d, input)
	if rerr != nil {
		return "", "", 0, rerr
	}
	for i, c := range param {
		if !d.IsNative(c) {
			return "", "", 0, &ParseError{Offset: i, Reason: ErrNotNative, Detail: param}
		}
	}
	return param, remaining, advanced, nil
}
