// Package witness assembles parsed ATG (pkg/atg), anchor (pkg/anchor),
// and language (pkg/language) dialects into witness-level documents:
// a WitnessMetadata file naming a manuscript's folios, and one
// FolioTranscript per folio. Parsing the underlying file format (TOML)
// is a collaborator's job (internal/cli/commands); this package only consumes
// already-decoded generic trees, so that it has no file-I/O or
// serialisation-format dependency of its own (spec.md Non-goals).
package witness

import "fmt"

// WitnessMetadata names a witness, the folios that make it up (in
// reading order), the human-readable name of each correcting hand
// active anywhere in the witness, and the dialect defaults blocks fall
// back to when they don't name one explicitly (spec.md §4 supplemented
// features).
//
// The number of correcting hands in every block's Corrections (spec.md
// §9 Open Questions: K is always passed explicitly into atg.Parse) is
// len(Corrections); a witness with no corrections at all still has
// exactly one hand.
type WitnessMetadata struct {
	Name            string
	Folios          []string
	Corrections     []string
	DefaultAtg      *string
	DefaultAnchor   *string
	DefaultLanguage *string
}

// FormatError is returned when a decoded tree does not have the shape
// this package expects at the given key.
type FormatError struct {
	Key    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("witness: malformed %q: %s", e.Key, e.Reason)
}

// ParseWitnessMetadata builds a WitnessMetadata from a decoded generic
// tree (e.g. the top-level table of a witness definition TOML file).
func ParseWitnessMetadata(tree map[string]any) (WitnessMetadata, error) {
	name, ok := tree["name"].(string)
	if !ok {
		return WitnessMetadata{}, &FormatError{Key: "name", Reason: "missing or not a string"}
	}
	rawFolios, ok := tree["folios"].([]any)
	if !ok {
		return WitnessMetadata{}, &FormatError{Key: "folios", Reason: "missing or not a list"}
	}
	folios := make([]string, len(rawFolios))
	for i, f := range rawFolios {
		s, ok := f.(string)
		if !ok {
			return WitnessMetadata{}, &FormatError{Key: fmt.Sprintf("folios[%d]", i), Reason: "not a string"}
		}
		folios[i] = s
	}

	var corrections []string
	if rawCorrections, ok := tree["corrections"].([]any); ok {
		corrections = make([]string, len(rawCorrections))
		for i, c := range rawCorrections {
			s, ok := c.(string)
			if !ok {
				return WitnessMetadata{}, &FormatError{Key: fmt.Sprintf("corrections[%d]", i), Reason: "not a string"}
			}
			corrections[i] = s
		}
	}

	return WitnessMetadata{
		Name:            name,
		Folios:          folios,
		Corrections:     corrections,
		DefaultAtg:      optionalString(tree, "default_atg"),
		DefaultAnchor:   optionalString(tree, "default_anchor"),
		DefaultLanguage: optionalString(tree, "default_language"),
	}, nil
}
