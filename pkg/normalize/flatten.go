package normalize

import "github.com/curatorsigma/critic/pkg/atg"

// Part is like atg.Part, but can never be a Correction: Flatten has
// already picked one version per correcting hand.
type Part interface {
	isUniquePart()
	// AsSurfacePart returns the SurfacePart this Part represents, or ok
	// == false for the two Parts with no surface representation
	// (FormatBreak, Anchor).
	AsSurfacePart() (part SurfacePart, ok bool)
}

// NativePart is a run of native text.
type NativePart string

func (NativePart) isUniquePart() {}
func (p NativePart) AsSurfacePart() (SurfacePart, bool) {
	return SurfaceNative(p), true
}

// IllegiblePart is an illegible run.
type IllegiblePart struct{ Uncertain atg.Uncertain }

func (IllegiblePart) isUniquePart() {}
func (p IllegiblePart) AsSurfacePart() (SurfacePart, bool) {
	return SurfaceIllegible{Uncertain: p.Uncertain}, true
}

// LacunaPart is a lacuna run.
type LacunaPart struct{ Uncertain atg.Uncertain }

func (LacunaPart) isUniquePart() {}
func (p LacunaPart) AsSurfacePart() (SurfacePart, bool) {
	return SurfaceLacuna{Uncertain: p.Uncertain}, true
}

// FormatBreakPart is a layout cue; it has no surface representation.
type FormatBreakPart struct{ Break atg.FormatBreak }

func (FormatBreakPart) isUniquePart() {}
func (FormatBreakPart) AsSurfacePart() (SurfacePart, bool) { return nil, false }

// AnchorPart is a positional waypoint; it has no surface representation.
type AnchorPart struct{ Value atg.AnchorValue }

func (AnchorPart) isUniquePart() {}
func (AnchorPart) AsSurfacePart() (SurfacePart, bool) { return nil, false }

func presentToUniquePart(p atg.Present) Part {
	if p.IsIllegible {
		return IllegiblePart{Uncertain: p.Illegible}
	}
	return NativePart(p.Native)
}

// UniqueText is like atg.Text, but with every Correction replaced by
// the version belonging to a single correcting hand.
type UniqueText struct {
	Parts []Part
}

// Flatten splits t into one UniqueText per correcting hand (spec.md
// §4.6). numHands is the witness-declared number of correcting hands
// (WitnessMetadata.Corrections, or 1 if the witness declares none) —
// not inferred from t's own Correction parts, since a block with no
// corrections at all must still expand to every declared hand rather
// than collapsing to a single one. atg.Parse already checked every
// Correction in t against this same count, so every Correction in t
// has exactly numHands versions; any shorter Correction would be an
// arity error caught there already, but Flatten still pads
// defensively with an empty native version rather than panicking.
func Flatten(t atg.Text, numHands int) []UniqueText {
	if numHands < 1 {
		numHands = 1
	}

	texts := make([]UniqueText, numHands)
	for _, part := range t.Parts {
		switch x := part.(type) {
		case atg.Correction:
			for i := range texts {
				var version atg.Present
				if i < len(x.Versions) {
					version = x.Versions[i]
				}
				texts[i].Parts = append(texts[i].Parts, presentToUniquePart(version))
			}
		case atg.Native:
			for i := range texts {
				texts[i].Parts = append(texts[i].Parts, NativePart(x))
			}
		case atg.Uncertain:
			var up Part
			if x.Kind == atg.KindIllegible {
				up = IllegiblePart{Uncertain: x}
			} else {
				up = LacunaPart{Uncertain: x}
			}
			for i := range texts {
				texts[i].Parts = append(texts[i].Parts, up)
			}
		case atg.FormatBreak:
			for i := range texts {
				texts[i].Parts = append(texts[i].Parts, FormatBreakPart{Break: x})
			}
		case atg.AnchorPart:
			for i := range texts {
				texts[i].Parts = append(texts[i].Parts, AnchorPart{Value: x.Value})
			}
		}
	}
	return texts
}

// Language performs the language-dependent second half of
// normalisation: turning a tokenised, surface-supplied text into
// display/compare forms (pkg/language provides implementations). It is
// declared here, rather than in pkg/language, so that this package does
// not depend on its own downstream consumer.
type Language interface {
	Name() string
	Normalise(text AnchoredNormalisedText) NonAgnosticAnchoredText
}

// AtgBlock is a single block of ATG together with the language and ATG
// dialect it was transcribed under.
type AtgBlock struct {
	Text       atg.Text
	Language   Language
	AtgDialect atg.Dialect
}

// UniqueAtgBlock is an AtgBlock with Corrections already flattened out.
type UniqueAtgBlock struct {
	Text       UniqueText
	Language   Language
	AtgDialect atg.Dialect
}

// IntoUniqueBlocks flattens b.Text's corrections, yielding one
// UniqueAtgBlock per correcting hand. numHands is the witness-declared
// hand count (see Flatten).
func (b AtgBlock) IntoUniqueBlocks(numHands int) []UniqueAtgBlock {
	texts := Flatten(b.Text, numHands)
	blocks := make([]UniqueAtgBlock, len(texts))
	for i, t := range texts {
		blocks[i] = UniqueAtgBlock{Text: t, Language: b.Language, AtgDialect: b.AtgDialect}
	}
	return blocks
}
