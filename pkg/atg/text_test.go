package atg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorsigma/critic/pkg/atg"
	example "github.com/curatorsigma/critic/pkg/atg/dialects/example"
)

// stubAnchorValue and stubAnchorDialect let pkg/atg's tests exercise
// anchor parsing without importing pkg/anchor (which itself depends on
// pkg/atg).
type stubAnchorValue string

func (v stubAnchorValue) String() string { return string(v) }

type stubAnchorDialect struct{}

func (stubAnchorDialect) Parse(s string) (atg.AnchorValue, error) {
	if s == "bad" {
		return nil, assert.AnError
	}
	return stubAnchorValue(s), nil
}

func parseExample(t *testing.T, s string, numCorrections int) atg.Text {
	t.Helper()
	text, err := atg.Parse(example.Dialect, s, stubAnchorDialect{}, numCorrections)
	require.NoError(t, err)
	return text
}

func TestParse_PlainNative(t *testing.T) {
	text := parseExample(t, "hello world", 1)
	require.Len(t, text.Parts, 1)
	assert.Equal(t, atg.Native("hello world"), text.Parts[0])
}

func TestParse_CommentsAndNonSemanticAreSkipped(t *testing.T) {
	text := parseExample(t, "hel#(a note)lo\tworld\n", 1)
	require.Len(t, text.Parts, 1)
	assert.Equal(t, atg.Native("helloworld"), text.Parts[0])
}

func TestParse_EscapeResolvesControlPoint(t *testing.T) {
	text := parseExample(t, `\^stray caret`, 1)
	require.Len(t, text.Parts, 1)
	assert.Equal(t, atg.Native("^stray caret"), text.Parts[0])
}

func TestParse_IllegibleWithoutProposal(t *testing.T) {
	text := parseExample(t, "^(3)", 1)
	require.Len(t, text.Parts, 1)
	u, ok := text.Parts[0].(atg.Uncertain)
	require.True(t, ok)
	assert.Equal(t, atg.KindIllegible, u.Kind)
	assert.Equal(t, uint8(3), u.Len)
	assert.Nil(t, u.Proposal)
}

func TestParse_LacunaWithProposal(t *testing.T) {
	text := parseExample(t, "~(2)(it)", 1)
	require.Len(t, text.Parts, 1)
	u, ok := text.Parts[0].(atg.Uncertain)
	require.True(t, ok)
	assert.Equal(t, atg.KindLacuna, u.Kind)
	assert.Equal(t, uint8(2), u.Len)
	require.NotNil(t, u.Proposal)
	assert.Equal(t, "it", *u.Proposal)
}

func TestParse_UncertainLengthOverflow(t *testing.T) {
	_, err := atg.Parse(example.Dialect, "^(1000)", stubAnchorDialect{}, 1)
	require.Error(t, err)
	var perr *atg.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, atg.ErrLengthOverflow, perr.Reason)
}

func TestParse_UncertainLengthNotANumber(t *testing.T) {
	_, err := atg.Parse(example.Dialect, "^(abc)", stubAnchorDialect{}, 1)
	require.Error(t, err)
	var perr *atg.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, atg.ErrLengthNotANumber, perr.Reason)
}

func TestParse_FormatBreaks(t *testing.T) {
	for _, tc := range []struct {
		literal string
		want    atg.FormatBreakKind
	}{
		{"line", atg.BreakLine},
		{"column", atg.BreakColumn},
		{"paragraph", atg.BreakParagraph},
		{"folio", atg.BreakFolio},
	} {
		t.Run(tc.literal, func(t *testing.T) {
			text := parseExample(t, "/("+tc.literal+")", 1)
			require.Len(t, text.Parts, 1)
			fb, ok := text.Parts[0].(atg.FormatBreak)
			require.True(t, ok)
			assert.Equal(t, tc.want, fb.Kind)
		})
	}
}

func TestParse_UnknownFormatBreak(t *testing.T) {
	_, err := atg.Parse(example.Dialect, "/(chapter)", stubAnchorDialect{}, 1)
	require.Error(t, err)
	var perr *atg.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, atg.ErrUnknownFormatBreak, perr.Reason)
}

func TestParse_Anchor(t *testing.T) {
	text := parseExample(t, "§(1.2)", 1)
	require.Len(t, text.Parts, 1)
	a, ok := text.Parts[0].(atg.AnchorPart)
	require.True(t, ok)
	assert.Equal(t, "1.2", a.Value.String())
}

func TestParse_AnchorRejectedByDialect(t *testing.T) {
	_, err := atg.Parse(example.Dialect, "§(bad)", stubAnchorDialect{}, 1)
	require.Error(t, err)
	var perr *atg.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, atg.ErrAnchor, perr.Reason)
}

func TestParse_Correction(t *testing.T) {
	text := parseExample(t, "&(a)(b)", 2)
	require.Len(t, text.Parts, 1)
	c, ok := text.Parts[0].(atg.Correction)
	require.True(t, ok)
	require.Len(t, c.Versions, 2)
	assert.Equal(t, "a", c.Versions[0].Native)
	assert.Equal(t, "b", c.Versions[1].Native)
}

func TestParse_CorrectionWrongArity(t *testing.T) {
	_, err := atg.Parse(example.Dialect, "&(a)(b)(c)", stubAnchorDialect{}, 2)
	require.Error(t, err)
	var perr *atg.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, atg.ErrIncorrectNumberOfCorrections, perr.Reason)
	assert.Equal(t, 2, perr.Expected)
	assert.Equal(t, 3, perr.Got)
}

func TestRender_RoundTripsPlainNative(t *testing.T) {
	text := parseExample(t, "the quick fox", 1)
	assert.Equal(t, "the quick fox", atg.Render(example.Dialect, text))
}

func TestRender_DropsCommentsAndNonSemantic(t *testing.T) {
	text := parseExample(t, "a#(note)b", 1)
	assert.Equal(t, "ab", atg.Render(example.Dialect, text))
}

func TestRender_Correction(t *testing.T) {
	text := parseExample(t, "&(a)(b)", 2)
	assert.Equal(t, "&(a)(b)", atg.Render(example.Dialect, text))
}
