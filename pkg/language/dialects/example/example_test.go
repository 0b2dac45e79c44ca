package example_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorsigma/critic/pkg/language/dialects/example"
	"github.com/curatorsigma/critic/pkg/normalize"
)

func TestNormalise_NoCompareFormWhenUnchanged(t *testing.T) {
	text := normalize.AnchoredNormalisedText{
		Text: []normalize.WordSurface{{Surface: "fox"}},
	}
	out := example.Language{}.Normalise(text)
	require.Len(t, out.Text, 1)
	assert.Equal(t, "fox", out.Text[0].DisplayForm)
	assert.Nil(t, out.Text[0].CompareForm)
}

func TestNormalise_CompareFormFoldsDiacritics(t *testing.T) {
	text := normalize.AnchoredNormalisedText{
		Text: []normalize.WordSurface{{Surface: "café"}},
	}
	out := example.Language{}.Normalise(text)
	require.Len(t, out.Text, 1)
	assert.Equal(t, "café", out.Text[0].DisplayForm)
	require.NotNil(t, out.Text[0].CompareForm)
	assert.Equal(t, "cafe", *out.Text[0].CompareForm)
}

func TestLexRoundTrip(t *testing.T) {
	l := example.Lex{ID: 42}
	assert.Equal(t, "42", l.String())
	parsed, err := example.ParseLex("42")
	require.NoError(t, err)
	assert.Equal(t, l, parsed)
}

func TestParseLex_NotANumber(t *testing.T) {
	_, err := example.ParseLex("abc")
	assert.Error(t, err)
}

func TestMorphRangeContains(t *testing.T) {
	assert.True(t, example.MorphRangeBoth.Contains(example.MorphVerb))
	assert.True(t, example.MorphRangeVerb.Contains(example.MorphVerb))
	assert.False(t, example.MorphRangeVerb.Contains(example.MorphNoun))
	assert.False(t, example.MorphRangeNone.Contains(example.MorphNoun))
}

func TestParseMorphRange(t *testing.T) {
	for _, tc := range []struct {
		literal string
		want    example.MorphRange
	}{
		{"", example.MorphRangeNone},
		{"V", example.MorphRangeVerb},
		{"N", example.MorphRangeNoun},
		{"B", example.MorphRangeBoth},
	} {
		got, err := example.ParseMorphRange(tc.literal)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := example.ParseMorphRange("Z")
	assert.Error(t, err)
}
