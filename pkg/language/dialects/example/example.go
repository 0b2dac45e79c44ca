// Package example implements a minimal language, used in tests and
// documentation, whose compare form folds diacritics out of the
// display form via Unicode NFKD decomposition.
package example

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/curatorsigma/critic/pkg/language"
	"github.com/curatorsigma/critic/pkg/normalize"
)

const languageName = "example"

// diacriticFold decomposes a string to NFKD and drops combining marks,
// giving a skeletal form suitable for cross-witness comparison when
// display spelling varies by diacritic alone.
var diacriticFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticFold, s)
	if err != nil {
		return s
	}
	return folded
}

// Language is the "example" language: display form is the supplied
// surface text verbatim, compare form is its diacritic-folded,
// lowercased skeleton whenever that differs from the display form.
type Language struct{}

// Name implements normalize.Language and language.Language.
func (Language) Name() string { return languageName }

// Lex implements language.Language.
func (Language) Lex() string { return "lex_example" }

// Normalise implements normalize.Language.
func (Language) Normalise(text normalize.AnchoredNormalisedText) normalize.NonAgnosticAnchoredText {
	words := make([]normalize.WordNormalForm, len(text.Text))
	for i, w := range text.Text {
		display := w.Surface
		var compare *string
		if folded := strings.ToLower(foldDiacritics(display)); folded != display {
			compare = &folded
		}
		words[i] = normalize.WordNormalForm{
			AnnotatedForm: w.Word,
			DisplayForm:   display,
			CompareForm:   compare,
		}
	}
	return normalize.NonAgnosticAnchoredText{Text: words, AnchorPositions: text.AnchorPositions}
}

// Lex is a lexeme identifier: an opaque numeric ID into the language's
// lexicon.
type Lex struct{ ID uint16 }

func (l Lex) String() string { return strconv.Itoa(int(l.ID)) }

// LexName implements language.LexSchema.
func (Lex) LexName() string { return "lex_example" }

// ParseLex implements the LexSchema parser contract: its output must be
// pseudo-inverse to Lex.String.
func ParseLex(s string) (Lex, error) {
	id, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Lex{}, &language.LexParseError{Reason: "not a number"}
	}
	return Lex{ID: uint16(id)}, nil
}

// Morph is a single morphological tag: verb or noun.
type Morph int

const (
	MorphVerb Morph = iota
	MorphNoun
)

func (m Morph) String() string {
	if m == MorphVerb {
		return "V"
	}
	return "N"
}

// MorphName implements language.MorphPointSchema.
func (Morph) MorphName() string { return "morph_example" }

// ParseMorph implements the MorphPointSchema parser contract.
func ParseMorph(s string) (Morph, error) {
	switch s {
	case "V":
		return MorphVerb, nil
	case "N":
		return MorphNoun, nil
	default:
		return 0, &language.MorphPointParseError{Reason: "not either V or N"}
	}
}

// MorphRange is a set of Morph tags.
type MorphRange int

const (
	MorphRangeNone MorphRange = iota
	MorphRangeVerb
	MorphRangeNoun
	MorphRangeBoth
)

func (r MorphRange) String() string {
	switch r {
	case MorphRangeVerb:
		return "V"
	case MorphRangeNoun:
		return "N"
	case MorphRangeBoth:
		return "B"
	default:
		return ""
	}
}

// Contains implements language.MorphRangeSchema[Morph].
func (r MorphRange) Contains(p Morph) bool {
	switch r {
	case MorphRangeBoth:
		return true
	case MorphRangeVerb:
		return p == MorphVerb
	case MorphRangeNoun:
		return p == MorphNoun
	default:
		return false
	}
}

// ParseMorphRange implements the MorphRangeSchema parser contract.
func ParseMorphRange(s string) (MorphRange, error) {
	switch s {
	case "":
		return MorphRangeNone, nil
	case "V":
		return MorphRangeVerb, nil
	case "N":
		return MorphRangeNoun, nil
	case "B":
		return MorphRangeBoth, nil
	default:
		return 0, &language.MorphRangeParseError{Reason: "not one of '', V, N, B"}
	}
}
