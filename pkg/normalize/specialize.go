package normalize

import (
	"fmt"
	"strings"

	"github.com/curatorsigma/critic/pkg/atg"
)

// WordNormalForm is a Word together with the two forms a Language
// derives from it: a DisplayForm for presenting the word without ATG
// markup, and an optional CompareForm for comparing it against other
// witnesses' words when that differs from the DisplayForm (spec.md
// §4.9).
type WordNormalForm struct {
	AnnotatedForm Word
	DisplayForm   string
	CompareForm   *string
}

// RenderForLexFile renders w as one table entry of a lex file. asBlockNr
// and wordIdx are one-based.
func (w WordNormalForm) RenderForLexFile(asBlockNr, wordIdx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d.word%d]\n", asBlockNr, wordIdx)
	fmt.Fprintf(&b, "display_form = %q\n", w.DisplayForm)
	if w.CompareForm != nil {
		fmt.Fprintf(&b, "compare_form = %q\n", *w.CompareForm)
	}
	b.WriteString("lex = \"--TODO--\"\n")
	b.WriteString("morph = \"--TODO--\"\n")
	return b.String()
}

// NonAgnosticAnchoredText is an AnchoredNormalisedText whose Words have
// been reduced to their WordNormalForm by a Language.
type NonAgnosticAnchoredText struct {
	Text            []WordNormalForm
	AnchorPositions []AnchorPosition
}

// RenderForLexFile renders the whole text as a lex file section: a
// comment line of running display forms up to each anchor, the
// per-word tables for that span, and the anchor heading, repeated for
// every anchor and for the remainder after the last one. asBlockNr is
// one-based.
func (t NonAgnosticAnchoredText) RenderForLexFile(asBlockNr int) string {
	var res strings.Builder
	wordIdx := 0

	emitSpan := func(upTo int) {
		res.WriteString("# ")
		var tables strings.Builder
		for wordIdx < upTo {
			word := t.Text[wordIdx]
			res.WriteString(word.DisplayForm)
			res.WriteByte(' ')
			tables.WriteString(word.RenderForLexFile(asBlockNr, wordIdx+1))
			tables.WriteByte('\n')
			wordIdx++
		}
		res.WriteByte('\n')
		res.WriteByte('\n')
		res.WriteString(tables.String())
	}

	for _, anchor := range t.AnchorPositions {
		emitSpan(anchor.Index)
		fmt.Fprintf(&res, "[anchor.%s]\n", anchor.Value.String())
	}
	emitSpan(len(t.Text))
	return res.String()
}

// NormalisedAtgBlock is a block of ATG with corrections flattened out,
// words tokenised and normalised by its Language.
type NormalisedAtgBlock struct {
	Text       NonAgnosticAnchoredText
	Language   Language
	AtgDialect atg.Dialect
}

// RenderForLexFile renders the block header ([N], language, atg dialect)
// followed by its text's lex-file rendering. asBlockNr is one-based.
func (b NormalisedAtgBlock) RenderForLexFile(asBlockNr int) string {
	var res strings.Builder
	fmt.Fprintf(&res, "[%d]\n", asBlockNr)
	fmt.Fprintf(&res, "language = %q\n", b.Language.Name())
	fmt.Fprintf(&res, "atg = %q\n\n", b.AtgDialect.Name)
	res.WriteString(b.Text.RenderForLexFile(asBlockNr))
	return res.String()
}
