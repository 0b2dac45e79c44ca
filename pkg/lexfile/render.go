// Package lexfile renders a sequence of normalised ATG blocks into the
// pretty-printed, TOML-like lex file a human annotator edits (spec.md
// §4.10). Per-block and per-word rendering is delegated to
// pkg/normalize; this package only supplies the document-level
// concatenation and block numbering.
package lexfile

import (
	"strings"

	"github.com/curatorsigma/critic/pkg/normalize"
)

// Render concatenates the lex-file rendering of every block in blocks,
// numbering them 1-based in order.
func Render(blocks []normalize.NormalisedAtgBlock) string {
	var res strings.Builder
	for i, b := range blocks {
		res.WriteString(b.RenderForLexFile(i + 1))
		res.WriteByte('\n')
	}
	return res.String()
}
