package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorsigma/critic/pkg/atg"
	example "github.com/curatorsigma/critic/pkg/atg/dialects/example"
	"github.com/curatorsigma/critic/pkg/normalize"
)

func TestFlatten_NoCorrectionsYieldsOneHand(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{atg.Native("hello")}}
	out := normalize.Flatten(text, 1)
	require.Len(t, out, 1)
	assert.Equal(t, normalize.NativePart("hello"), out[0].Parts[0])
}

// TestFlatten_NoLocalCorrectionStillExpandsToDeclaredHandCount is a
// regression test: a block with no Correction of its own must still
// expand to every witness-declared hand, not collapse to one, since
// atg.Parse's own per-block arity check is not what determines hand
// count for the rest of the pipeline.
func TestFlatten_NoLocalCorrectionStillExpandsToDeclaredHandCount(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{atg.Native("hello")}}
	out := normalize.Flatten(text, 3)
	require.Len(t, out, 3)
	for _, hand := range out {
		assert.Equal(t, normalize.NativePart("hello"), hand.Parts[0])
	}
}

func TestFlatten_CorrectionExpandsToEachHand(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{
		atg.Native("the "),
		atg.Correction{Versions: []atg.Present{{Native: "cat"}, {Native: "kat"}}},
	}}
	out := normalize.Flatten(text, 2)
	require.Len(t, out, 2)
	assert.Equal(t, []normalize.Part{normalize.NativePart("the "), normalize.NativePart("cat")}, out[0].Parts)
	assert.Equal(t, []normalize.Part{normalize.NativePart("the "), normalize.NativePart("kat")}, out[1].Parts)
}

func TestFlatten_ShorterCorrectionPaddedWithEmptyNative(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{
		atg.Correction{Versions: []atg.Present{{Native: "a"}, {Native: "b"}, {Native: "c"}}},
		atg.Correction{Versions: []atg.Present{{Native: "x"}}},
	}}
	out := normalize.Flatten(text, 3)
	require.Len(t, out, 3)
	assert.Equal(t, normalize.NativePart("x"), out[0].Parts[1])
	assert.Equal(t, normalize.NativePart(""), out[1].Parts[1])
	assert.Equal(t, normalize.NativePart(""), out[2].Parts[1])
}

// TestSplitWords_PaddedEmptyNativeDoesNotMergeAcrossRealDivide is a
// regression test for an empty Flatten-padded Native part wrongly
// clobbering a previously-recorded word divide down to "not divided",
// which would wrongly merge the following real word onto the
// preceding one.
func TestSplitWords_PaddedEmptyNativeDoesNotMergeAcrossRealDivide(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{
		atg.Native("hi "),
		atg.Correction{Versions: []atg.Present{{Native: "there"}}},
		atg.Native("hello"),
	}}
	flattened := normalize.Flatten(text, 2)
	require.Len(t, flattened, 2)

	padded := flattened[1]
	assert.Equal(t, normalize.NativePart(""), padded.Parts[1])

	anchored := padded.SplitWords(example.Dialect)
	var words []string
	for _, w := range anchored.Text {
		words = append(words, w.SupplyUncertain(example.Dialect))
	}
	assert.Equal(t, []string{"hi", "hello"}, words)
}

func TestSplitWords_SimpleSentence(t *testing.T) {
	parsed, err := atg.Parse(example.Dialect, "the quick fox.", nil, 1)
	require.NoError(t, err)
	flattened := normalize.Flatten(parsed, 1)
	require.Len(t, flattened, 1)

	anchored := flattened[0].SplitWords(example.Dialect)
	var words []string
	for _, w := range anchored.Text {
		words = append(words, w.SupplyUncertain(example.Dialect))
	}
	assert.Equal(t, []string{"the", "quick", "fox", "."}, words)
}

func TestSplitWords_MergesAcrossNonDividingBoundary(t *testing.T) {
	// "hel" ends without hitting a word divisor, and the following
	// Correction's flattened version "lo" starts the same way, so the
	// two Parts' words must merge into a single "hello" token; the
	// following " world" starts on a space, so it is not merged in.
	text := atg.Text{Parts: []atg.Part{
		atg.Native("hel"),
		atg.Correction{Versions: []atg.Present{{Native: "lo"}}},
		atg.Native(" world"),
	}}
	flattened := normalize.Flatten(text, 1)
	require.Len(t, flattened, 1)
	anchored := flattened[0].SplitWords(example.Dialect)

	require.Len(t, anchored.Text, 2)
	assert.Equal(t, "hello", anchored.Text[0].SupplyUncertain(example.Dialect))
	assert.Equal(t, "world", anchored.Text[1].SupplyUncertain(example.Dialect))
}

type stubAnchorValue string

func (v stubAnchorValue) String() string { return string(v) }

func TestSplitWords_AnchorPositionRecordedBetweenWords(t *testing.T) {
	text := atg.Text{Parts: []atg.Part{
		atg.Native("one two"),
		atg.AnchorPart{Value: stubAnchorValue("1.1")},
		atg.Native("three"),
	}}
	flattened := normalize.Flatten(text, 1)
	anchored := flattened[0].SplitWords(example.Dialect)

	require.Len(t, anchored.Text, 3)
	require.Len(t, anchored.AnchorPositions, 1)
	assert.Equal(t, 2, anchored.AnchorPositions[0].Index)
	assert.Equal(t, "1.1", anchored.AnchorPositions[0].Value.String())
}
