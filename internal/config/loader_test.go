package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatorsigma/critic/internal/config"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "critic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_DefaultsWhenNothingElseSet(t *testing.T) {
	path := writeConfigFile(t, "")
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWitnessFile, cfg.WitnessFile)
	assert.Equal(t, config.DefaultFolioDir, cfg.FolioDir)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "witness_file: from-file.toml\nfolio_dir: file-folios\n")
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file.toml", cfg.WitnessFile)
	assert.Equal(t, "file-folios", cfg.FolioDir)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "witness_file: from-file.toml\n")
	t.Setenv("CRITIC_WITNESS_FILE", "from-env.toml")
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.toml", cfg.WitnessFile)
}

func TestLoad_FlagsOverrideEnvAndFile(t *testing.T) {
	path := writeConfigFile(t, "witness_file: from-file.toml\n")
	t.Setenv("CRITIC_WITNESS_FILE", "from-env.toml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("witness-file", "", "")
	require.NoError(t, flags.Set("witness-file", "from-flag.toml"))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.toml", cfg.WitnessFile)
}

// TestLoad_UnchangedFlagsDoNotOverride is a regression test for a bug
// where posflag.Provider mapped "witness-file" to the koanf key
// "witness-file" unchanged, never matching the "witness_file" tag
// Config actually unmarshals into, so flag overrides silently never
// applied regardless of Changed state. The fix rewrites dashes to
// underscores and skips flags the caller never set.
func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	path := writeConfigFile(t, "witness_file: from-file.toml\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("witness-file", "some-default.toml", "")

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-file.toml", cfg.WitnessFile)
}

func TestLoad_KebabCaseFlagNameMapsToSnakeCaseKey(t *testing.T) {
	path := writeConfigFile(t, "")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("folio-dir", "", "")
	require.NoError(t, flags.Set("folio-dir", "flag-folios"))
	flags.String("output-dir", "", "")
	require.NoError(t, flags.Set("output-dir", "flag-out"))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "flag-folios", cfg.FolioDir)
	assert.Equal(t, "flag-out", cfg.OutputDir)
}
