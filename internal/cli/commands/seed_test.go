package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRegistries_EmptySeedPathReturnsEverything(t *testing.T) {
	reg, err := loadRegistries("")
	require.NoError(t, err)
	_, err = reg.Atg.Lookup("example")
	assert.NoError(t, err)
	_, err = reg.Anchor.Lookup("example")
	assert.NoError(t, err)
	_, err = reg.Languages.Lookup("example")
	assert.NoError(t, err)
}

func TestLoadRegistries_SeedFileRestrictsToNamedDialects(t *testing.T) {
	path := writeSeedFile(t, "atg:\n  - example\nanchor:\n  - example\nlanguage:\n  - example\n")
	reg, err := loadRegistries(path)
	require.NoError(t, err)
	_, err = reg.Atg.Lookup("example")
	assert.NoError(t, err)
}

func TestLoadRegistries_UnknownNameErrors(t *testing.T) {
	path := writeSeedFile(t, "atg:\n  - nonexistent\n")
	_, err := loadRegistries(path)
	assert.Error(t, err)
}

func TestLoadRegistries_MissingSeedFileErrors(t *testing.T) {
	_, err := loadRegistries(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRegistries_MalformedYamlErrors(t *testing.T) {
	path := writeSeedFile(t, "atg: [this is not a valid list of strings: [")
	_, err := loadRegistries(path)
	assert.Error(t, err)
}
