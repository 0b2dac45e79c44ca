// Package example provides a minimal ATG dialect used in tests and
// documentation, mirroring the Latin alphabet plus a handful of
// punctuation marks.
package example

import "github.com/curatorsigma/critic/pkg/atg"

// Dialect is the "example" ATG dialect.
var Dialect = atg.Dialect{
	Name: "example",
	ControlPoints: atg.ControlPoints{
		Escape:      '\\',
		StartParam:  '(',
		StopParam:   ')',
		Illegible:   '^',
		Lacuna:      '~',
		Anchor:      '§',
		FormatBreak: '/',
		Correction:  '&',
		Comment:     '#',
		NonSemantic: "\t\n",
	},
	NativePoints: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ,.'",
	Punctuation:  ",.",
	WordDivisor:  ' ',
}
