package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/curatorsigma/critic/pkg/anchor"
	"github.com/curatorsigma/critic/pkg/atg/dialects"
	"github.com/curatorsigma/critic/pkg/language"
	"github.com/curatorsigma/critic/pkg/witness"
)

// dialectSeed is the shape of a --dialects-seed YAML file: a list of
// names to register per registry kind, out of everything critic ships
// with. This lets a deployment pin down a smaller, audited set of
// dialects instead of registering critic's entire built-in catalogue,
// mirroring how the teacher keeps static registry data in its own
// config files rather than code.
type dialectSeed struct {
	Atg      []string `yaml:"atg"`
	Anchor   []string `yaml:"anchor"`
	Language []string `yaml:"language"`
}

// loadRegistries builds the Registries for this invocation: every
// built-in dialect if seedPath is empty, or the subset named in
// seedPath's YAML file otherwise.
func loadRegistries(seedPath string) (witness.Registries, error) {
	full := defaultRegistries()
	if seedPath == "" {
		return full, nil
	}

	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return witness.Registries{}, fmt.Errorf("reading dialect seed file %q: %w", seedPath, err)
	}
	var seed dialectSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return witness.Registries{}, fmt.Errorf("parsing dialect seed file %q: %w", seedPath, err)
	}

	atgReg := dialects.NewEmptyRegistry()
	for _, name := range seed.Atg {
		d, err := full.Atg.Lookup(name)
		if err != nil {
			return witness.Registries{}, fmt.Errorf("dialect seed file %q: %w", seedPath, err)
		}
		atgReg.Register(d)
	}

	anchorReg := anchor.NewRegistry()
	for _, name := range seed.Anchor {
		d, err := full.Anchor.Lookup(name)
		if err != nil {
			return witness.Registries{}, fmt.Errorf("dialect seed file %q: %w", seedPath, err)
		}
		anchorReg.Register(d)
	}

	langReg := language.NewRegistry()
	for _, name := range seed.Language {
		l, err := full.Languages.Lookup(name)
		if err != nil {
			return witness.Registries{}, fmt.Errorf("dialect seed file %q: %w", seedPath, err)
		}
		langReg.Register(l)
	}

	return witness.Registries{Atg: atgReg, Anchor: anchorReg, Languages: langReg}, nil
}
