// Package normalize turns parsed ATG (pkg/atg) into word-tokenised,
// correction-flattened, surface-supplied text ready for language-level
// normalisation (pkg/language) and lex-file rendering (pkg/lexfile).
package normalize

import (
	"strings"

	"github.com/curatorsigma/critic/pkg/atg"
)

// SurfacePart is a Part that is represented in the surface text of the
// transcribed natural language: unlike atg.Part, it can never be a
// Correction (already flattened by Flatten) or an Anchor/FormatBreak
// (layout/positional cues, not text).
type SurfacePart interface {
	isSurfacePart()
	// SupplyUncertain renders this part with every uncertain passage
	// substituted by its proposal, or by a run of the dialect's
	// illegible/lacuna marker when no proposal was given.
	SupplyUncertain(d atg.Dialect) string
}

// SurfaceNative is a run of native text.
type SurfaceNative string

func (SurfaceNative) isSurfacePart()                      {}
func (s SurfaceNative) SupplyUncertain(atg.Dialect) string { return string(s) }

// SurfaceIllegible is an illegible run.
type SurfaceIllegible struct{ Uncertain atg.Uncertain }

func (SurfaceIllegible) isSurfacePart() {}
func (s SurfaceIllegible) SupplyUncertain(d atg.Dialect) string {
	return supplyUncertain(d.ControlPoints.Illegible, s.Uncertain)
}

// SurfaceLacuna is a lacuna run.
type SurfaceLacuna struct{ Uncertain atg.Uncertain }

func (SurfaceLacuna) isSurfacePart() {}
func (s SurfaceLacuna) SupplyUncertain(d atg.Dialect) string {
	return supplyUncertain(d.ControlPoints.Lacuna, s.Uncertain)
}

func supplyUncertain(marker rune, u atg.Uncertain) string {
	if u.Proposal != nil {
		return *u.Proposal
	}
	return strings.Repeat(string(marker), int(u.Len))
}

// Word is a maximal run of SurfaceParts between two word boundaries.
type Word struct {
	Parts []SurfacePart
}

// SupplyUncertain concatenates the supplied form of every part of w.
func (w Word) SupplyUncertain(d atg.Dialect) string {
	var b strings.Builder
	for _, p := range w.Parts {
		b.WriteString(p.SupplyUncertain(d))
	}
	return b.String()
}
