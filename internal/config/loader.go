package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the name of the config file.
const FileName = "critic.yaml"

// FileNameAlt is the alternate name of the config file.
const FileNameAlt = "critic.yml"

var configFileUsed string

// GetConfigFileUsed returns the path of the config file the last
// successful Load read from, or "" if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Load builds a Config by layering, lowest priority first: built-in
// defaults, a config file found by searching upward from the current
// directory, CRITIC_-prefixed environment variables, and finally any
// CLI flags bound to flags.
func Load(explicitPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"witness_file": cfg.WitnessFile,
		"folio_dir":    cfg.FolioDir,
		"output_dir":   cfg.OutputDir,
	}, "."), nil); err != nil {
		return nil, err
	}

	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile(".")
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
		configFileUsed = configPath
	}

	if err := k.Load(env.Provider("CRITIC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CRITIC_"))
	}), nil); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, err
		}
	}

	var out Config
	if err := k.Unmarshal("", &out); err != nil {
		return nil, err
	}
	out.ApplyDefaults()
	return &out, nil
}

// findConfigFile searches dir, then its ancestors, for critic.yaml or
// critic.yml, returning the first match.
func findConfigFile(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range [...]string{FileName, FileNameAlt} {
			candidate := filepath.Join(abs, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}
