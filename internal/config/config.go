// Package config provides shared configuration types for critic. It is
// decoupled from CLI concerns so other entry points (e.g. a future
// batch job) can load project configuration the same way.
package config

// Config is the project-wide configuration for a critic invocation.
type Config struct {
	// WitnessFile is the path to the witness definition file.
	WitnessFile string `koanf:"witness_file"`
	// FolioDir is the directory containing one file per folio named in
	// the witness definition.
	FolioDir string `koanf:"folio_dir"`
	// OutputDir is where rendered lex files are written.
	OutputDir string `koanf:"output_dir"`
	// DialectsSeedFile, if set, points to a YAML file restricting which
	// built-in atg/anchor/language dialects get registered, instead of
	// registering every dialect critic ships with. Empty means register
	// everything.
	DialectsSeedFile string `koanf:"dialects_seed_file"`
	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultWitnessFile = "witness.toml"
	DefaultFolioDir    = "folios"
	DefaultOutputDir   = "out"
)

// ApplyDefaults fills in zero-valued fields of c with their defaults.
func (c *Config) ApplyDefaults() {
	if c.WitnessFile == "" {
		c.WitnessFile = DefaultWitnessFile
	}
	if c.FolioDir == "" {
		c.FolioDir = DefaultFolioDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}
