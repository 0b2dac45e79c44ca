package normalize

import "github.com/curatorsigma/critic/pkg/atg"

// BoundedWordChain is the result of tokenising a single Part: a run of
// Words, plus whether the Part's own left/right edge falls on a word
// boundary (so the caller knows whether to merge its first/last Word
// into the neighbouring Part's last/first Word).
type BoundedWordChain struct {
	LeftBoundaryDivides  bool
	WordChain            []Word
	RightBoundaryDivides bool
}

// wordSpan is one maximal run of non-divisor, non-punctuation
// characters, or a single punctuation character, within a native
// stream. DefinitelyClosed is true iff the span ended on a word
// divisor or punctuation mark, rather than running off the end of the
// input.
type wordSpan struct {
	Text             string
	DefinitelyClosed bool
}

// splitNativeStream splits s along the dialect's word divisor,
// additionally splitting off each punctuation mark as its own
// single-character span (spec.md §4.7).
func splitNativeStream(d atg.Dialect, s string) []wordSpan {
	var spans []wordSpan
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		c := runes[i]
		if c == d.WordDivisor {
			spans = append(spans, wordSpan{Text: "", DefinitelyClosed: true})
			i++
			continue
		}
		if d.IsPunctuation(c) {
			spans = append(spans, wordSpan{Text: string(c), DefinitelyClosed: true})
			i++
			continue
		}
		start := i
		i++
		for i < len(runes) {
			next := runes[i]
			if next == d.WordDivisor {
				spans = append(spans, wordSpan{Text: string(runes[start:i]), DefinitelyClosed: true})
				i++
				goto nextSpan
			}
			if d.IsPunctuation(next) {
				spans = append(spans, wordSpan{Text: string(runes[start:i]), DefinitelyClosed: true})
				goto nextSpan
			}
			i++
		}
		spans = append(spans, wordSpan{Text: string(runes[start:]), DefinitelyClosed: false})
	nextSpan:
	}
	return spans
}

// splitWords tokenises a single SurfacePart into a BoundedWordChain
// (spec.md §4.7). Native parts split directly along word boundaries;
// Illegible/Lacuna parts with no proposal become a single
// boundary-closed Word, and with a proposal are tokenised the same way
// as native text but keep their uncertain Len/proposal structure per
// resulting Word.
func splitWords(d atg.Dialect, part SurfacePart) BoundedWordChain {
	switch x := part.(type) {
	case SurfaceNative:
		return splitNativeLike(d, string(x), func(text string) SurfacePart { return SurfaceNative(text) })
	case SurfaceIllegible:
		if x.Uncertain.Proposal == nil {
			return BoundedWordChain{
				LeftBoundaryDivides:  true,
				WordChain:            []Word{{Parts: []SurfacePart{x}}},
				RightBoundaryDivides: true,
			}
		}
		return splitNativeLike(d, *x.Uncertain.Proposal, func(text string) SurfacePart {
			return SurfaceIllegible{Uncertain: atg.Uncertain{Kind: atg.KindIllegible, Len: uint8(len([]rune(text))), Proposal: &text}}
		})
	case SurfaceLacuna:
		if x.Uncertain.Proposal == nil {
			return BoundedWordChain{
				LeftBoundaryDivides:  true,
				WordChain:            []Word{{Parts: []SurfacePart{x}}},
				RightBoundaryDivides: true,
			}
		}
		return splitNativeLike(d, *x.Uncertain.Proposal, func(text string) SurfacePart {
			return SurfaceLacuna{Uncertain: atg.Uncertain{Kind: atg.KindLacuna, Len: uint8(len([]rune(text))), Proposal: &text}}
		})
	default:
		return BoundedWordChain{LeftBoundaryDivides: true, RightBoundaryDivides: true}
	}
}

func splitNativeLike(d atg.Dialect, s string, wrap func(string) SurfacePart) BoundedWordChain {
	spans := splitNativeStream(d, s)
	var chain BoundedWordChain
	rightClosed := false
	for idx, span := range spans {
		rightClosed = span.DefinitelyClosed
		if span.Text == "" {
			if idx == 0 {
				chain.LeftBoundaryDivides = true
			}
			continue
		}
		chain.WordChain = append(chain.WordChain, Word{Parts: []SurfacePart{wrap(span.Text)}})
	}
	chain.RightBoundaryDivides = rightClosed
	return chain
}

// AnchorPosition records that anchor Value sits in the logical text
// directly before the word at Index (0-based, within the owning
// AnchoredUniqueText/AnchoredNormalisedText's Text slice), i.e. Index
// is the number of words that precede the anchor.
type AnchorPosition struct {
	Value atg.AnchorValue
	Index int
}

// AnchoredUniqueText is a UniqueText split into Words, with Anchors
// lifted out into positions relative to the word list.
type AnchoredUniqueText struct {
	Text            []Word
	AnchorPositions []AnchorPosition
}

// SplitWords tokenises t into words, threading anchor and format-break
// handling and merging Words across Part boundaries per the
// left/right-divides rules (spec.md §4.7).
func (t UniqueText) SplitWords(d atg.Dialect) AnchoredUniqueText {
	var words []Word
	var anchors []AnchorPosition
	var breakAfterLast *bool

	for _, part := range t.Parts {
		switch x := part.(type) {
		case AnchorPart:
			anchors = append(anchors, AnchorPosition{Value: x.Value, Index: len(words)})
			closed := true
			breakAfterLast = &closed
		case FormatBreakPart:
			// format breaks never affect word separation
		default:
			surface, ok := part.AsSurfacePart()
			if !ok {
				continue
			}
			chain := splitWords(d, surface)
			if breakAfterLast == nil {
				words = append(words, chain.WordChain...)
				right := chain.RightBoundaryDivides
				breakAfterLast = &right
				continue
			}
			// An empty chain (e.g. Flatten's padding for a shorter
			// correction) carries no word of its own to merge around, so
			// it must never discard a divide already recorded by an
			// earlier part: fold its edges into the running state with OR
			// rather than overwriting it.
			if len(chain.WordChain) == 0 {
				merged := chain.LeftBoundaryDivides || *breakAfterLast || chain.RightBoundaryDivides
				breakAfterLast = &merged
				continue
			}
			if chain.LeftBoundaryDivides || *breakAfterLast {
				words = append(words, chain.WordChain...)
			} else {
				first := chain.WordChain[0]
				rest := chain.WordChain[1:]
				if len(words) == 0 {
					words = append(words, first)
				} else {
					words[len(words)-1].Parts = append(words[len(words)-1].Parts, first.Parts...)
				}
				words = append(words, rest...)
			}
			right := chain.RightBoundaryDivides
			breakAfterLast = &right
		}
	}
	return AnchoredUniqueText{Text: words, AnchorPositions: anchors}
}

// AnchoredNormalisedText is an AnchoredUniqueText with every Word
// reduced to its uncertainty-supplied surface string.
type AnchoredNormalisedText struct {
	Text            []WordSurface
	AnchorPositions []AnchorPosition
}

// WordSurface pairs a tokenised Word with its supplied surface form.
type WordSurface struct {
	Word    Word
	Surface string
}

// IntoAnchoredNormalisedText supplies every Word's uncertain passages.
func (a AnchoredUniqueText) IntoAnchoredNormalisedText(d atg.Dialect) AnchoredNormalisedText {
	out := make([]WordSurface, len(a.Text))
	for i, w := range a.Text {
		out[i] = WordSurface{Word: w, Surface: w.SupplyUncertain(d)}
	}
	return AnchoredNormalisedText{Text: out, AnchorPositions: a.AnchorPositions}
}

// Normalise tokenises and surface-supplies b's text, then hands it to
// b's Language for the language-dependent normalisation pass,
// producing a NormalisedAtgBlock.
func (b UniqueAtgBlock) Normalise() NormalisedAtgBlock {
	agnostic := b.Text.SplitWords(b.AtgDialect).IntoAnchoredNormalisedText(b.AtgDialect)
	return NormalisedAtgBlock{
		Text:       b.Language.Normalise(agnostic),
		Language:   b.Language,
		AtgDialect: b.AtgDialect,
	}
}

// IntoNormalisedBlocks flattens and normalises every correcting hand of
// b in one call. numHands is the witness-declared hand count (see
// Flatten), so every block in a folio expands to the same number of
// hands regardless of whether it carries a Correction of its own.
func (b AtgBlock) IntoNormalisedBlocks(numHands int) []NormalisedAtgBlock {
	unique := b.IntoUniqueBlocks(numHands)
	out := make([]NormalisedAtgBlock, len(unique))
	for i, u := range unique {
		out[i] = u.Normalise()
	}
	return out
}
