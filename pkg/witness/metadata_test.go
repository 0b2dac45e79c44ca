package witness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorsigma/critic/pkg/witness"
)

func strPtr(s string) *string { return &s }

func TestParseWitnessMetadata_Minimal(t *testing.T) {
	tree := map[string]any{
		"name":   "test-witness",
		"folios": []any{"f1", "f2"},
	}
	meta, err := witness.ParseWitnessMetadata(tree)
	require.NoError(t, err)
	assert.Equal(t, "test-witness", meta.Name)
	assert.Equal(t, []string{"f1", "f2"}, meta.Folios)
	assert.Empty(t, meta.Corrections)
	assert.Nil(t, meta.DefaultAtg)
}

func TestParseWitnessMetadata_Full(t *testing.T) {
	tree := map[string]any{
		"name":             "test-witness",
		"folios":           []any{"f1"},
		"corrections":      []any{"first hand", "second hand"},
		"default_atg":      "example",
		"default_anchor":   "example",
		"default_language": "example",
	}
	meta, err := witness.ParseWitnessMetadata(tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"first hand", "second hand"}, meta.Corrections)
	require.NotNil(t, meta.DefaultAtg)
	assert.Equal(t, "example", *meta.DefaultAtg)
}

func TestParseWitnessMetadata_MissingName(t *testing.T) {
	_, err := witness.ParseWitnessMetadata(map[string]any{"folios": []any{"f1"}})
	assert.Error(t, err)
}

func TestParseWitnessMetadata_MissingFolios(t *testing.T) {
	_, err := witness.ParseWitnessMetadata(map[string]any{"name": "x"})
	assert.Error(t, err)
}

func TestParseWitnessMetadata_FolioNotAString(t *testing.T) {
	_, err := witness.ParseWitnessMetadata(map[string]any{
		"name":   "x",
		"folios": []any{1},
	})
	assert.Error(t, err)
}
