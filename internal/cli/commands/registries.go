package commands

import (
	"github.com/curatorsigma/critic/pkg/anchor"
	anchorexample "github.com/curatorsigma/critic/pkg/anchor/example"
	"github.com/curatorsigma/critic/pkg/atg/dialects"
	"github.com/curatorsigma/critic/pkg/language"
	languageexample "github.com/curatorsigma/critic/pkg/language/dialects/example"
	"github.com/curatorsigma/critic/pkg/witness"
)

// defaultRegistries builds the registries seeded with every dialect
// critic ships built in. A future config-driven registration point
// would live here.
func defaultRegistries() witness.Registries {
	anchors := anchor.NewRegistry()
	anchors.Register(anchorexample.Dialect{})

	languages := language.NewRegistry()
	languages.Register(languageexample.Language{})

	return witness.Registries{
		Atg:       dialects.NewRegistry(),
		Anchor:    anchors,
		Languages: languages,
	}
}
