package lexfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	example "github.com/curatorsigma/critic/pkg/atg/dialects/example"
	"github.com/curatorsigma/critic/pkg/lexfile"
	"github.com/curatorsigma/critic/pkg/normalize"
)

type stubLanguage struct{ name string }

func (s stubLanguage) Name() string { return s.name }
func (stubLanguage) Normalise(text normalize.AnchoredNormalisedText) normalize.NonAgnosticAnchoredText {
	return normalize.NonAgnosticAnchoredText{}
}

func TestRender_NumbersBlocksOneBased(t *testing.T) {
	blocks := []normalize.NormalisedAtgBlock{
		{Language: stubLanguage{name: "a"}, AtgDialect: example.Dialect},
		{Language: stubLanguage{name: "b"}, AtgDialect: example.Dialect},
	}
	rendered := lexfile.Render(blocks)
	assert.Contains(t, rendered, "[1]")
	assert.Contains(t, rendered, `language = "a"`)
	assert.Contains(t, rendered, "[2]")
	assert.Contains(t, rendered, `language = "b"`)
}
