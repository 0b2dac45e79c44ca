package witness

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/curatorsigma/critic/pkg/anchor"
	"github.com/curatorsigma/critic/pkg/atg"
	"github.com/curatorsigma/critic/pkg/atg/dialects"
	"github.com/curatorsigma/critic/pkg/language"
	"github.com/curatorsigma/critic/pkg/lexfile"
	"github.com/curatorsigma/critic/pkg/normalize"
)

// FolioMetadata is the metadata attached specifically to one folio.
type FolioMetadata struct {
	Transcriber string
	Editors     []string
}

// Registries bundles the three dialect registries a folio's blocks are
// resolved against.
type Registries struct {
	Atg       *dialects.Registry
	Anchor    *anchor.Registry
	Languages *language.Registry
}

// blockSpec is a single block's raw fields, before its atg/anchor/
// language names have been resolved against a Registries and the
// witness's defaults.
type blockSpec struct {
	Atg        *string
	Anchor     *string
	Language   *string
	Transcript string
}

// ParseError is returned when a decoded folio tree cannot be turned
// into a FolioTranscript.
type ParseError struct {
	Block  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("witness: block %q: %s: %s", e.Block, e.Reason, e.Err)
	}
	return fmt.Sprintf("witness: block %q: %s", e.Block, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FolioTranscript is a single folio's transcript: metadata plus an
// ordered sequence of ATG blocks, each tagged with the language and ATG
// dialect it was transcribed under.
type FolioTranscript struct {
	Metadata FolioMetadata
	Blocks   []normalize.AtgBlock
	// numHands is the witness-declared number of correcting hands (the
	// same count every block's atg.Parse call was checked against), so
	// Normalise expands every block — including ones with no Correction
	// of their own — to exactly this many hands instead of inferring a
	// possibly-smaller count from each block's own content.
	numHands int
}

// ParseFolioTranscript builds a FolioTranscript from a decoded generic
// tree (e.g. one folio file's top-level table): a "metadata" table,
// plus one table per block keyed "1", "2", … in ascending order, each
// holding optional "atg"/"anchor"/"language" dialect names (falling
// back to meta's defaults) and a "transcript" string (spec.md §4
// supplemented features).
func ParseFolioTranscript(tree map[string]any, meta WitnessMetadata, reg Registries) (FolioTranscript, error) {
	metaTree, ok := tree["metadata"].(map[string]any)
	if !ok {
		return FolioTranscript{}, &ParseError{Block: "metadata", Reason: "missing or not a table"}
	}
	metadata, err := parseFolioMetadata(metaTree)
	if err != nil {
		return FolioTranscript{}, err
	}

	numCorrections := len(meta.Corrections)
	if numCorrections == 0 {
		numCorrections = 1
	}

	var blocks []normalize.AtgBlock
	for i := 1; ; i++ {
		key := fmt.Sprintf("%d", i)
		raw, ok := tree[key]
		if !ok {
			break
		}
		blockTree, ok := raw.(map[string]any)
		if !ok {
			return FolioTranscript{}, &ParseError{Block: key, Reason: "not a table"}
		}
		spec, err := parseBlockSpec(blockTree)
		if err != nil {
			return FolioTranscript{}, &ParseError{Block: key, Reason: "malformed block", Err: err}
		}
		atgDialect, lang, anchorDialect, err := selectDialects(spec, meta, reg)
		if err != nil {
			return FolioTranscript{}, &ParseError{Block: key, Reason: "cannot resolve dialects", Err: err}
		}
		text, perr := atg.Parse(atgDialect, spec.Transcript, anchor.AsAtgDialect(anchorDialect), numCorrections)
		if perr != nil {
			return FolioTranscript{}, &ParseError{Block: key, Reason: "transcript does not parse", Err: perr}
		}
		blocks = append(blocks, normalize.AtgBlock{Text: text, Language: lang, AtgDialect: atgDialect})
	}
	if len(tree) > len(blocks)+1 {
		return FolioTranscript{}, &ParseError{Block: "?", Reason: "block names are not consecutive decimals starting at 1"}
	}

	return FolioTranscript{Metadata: metadata, Blocks: blocks, numHands: numCorrections}, nil
}

func parseFolioMetadata(tree map[string]any) (FolioMetadata, error) {
	transcriber, ok := tree["transcriber"].(string)
	if !ok {
		return FolioMetadata{}, &ParseError{Block: "metadata", Reason: "transcriber missing or not a string"}
	}
	rawEditors, _ := tree["editors"].([]any)
	editors := make([]string, len(rawEditors))
	for i, e := range rawEditors {
		s, ok := e.(string)
		if !ok {
			return FolioMetadata{}, &ParseError{Block: "metadata", Reason: fmt.Sprintf("editors[%d] is not a string", i)}
		}
		editors[i] = s
	}
	return FolioMetadata{Transcriber: transcriber, Editors: editors}, nil
}

func parseBlockSpec(tree map[string]any) (blockSpec, error) {
	transcript, ok := tree["transcript"].(string)
	if !ok {
		return blockSpec{}, fmt.Errorf("transcript missing or not a string")
	}
	return blockSpec{
		Atg:        optionalString(tree, "atg"),
		Anchor:     optionalString(tree, "anchor"),
		Language:   optionalString(tree, "language"),
		Transcript: transcript,
	}, nil
}

func optionalString(tree map[string]any, key string) *string {
	v, ok := tree[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// selectDialects resolves a block's atg/anchor/language names, falling
// back to the witness's DefaultAtg/DefaultAnchor/DefaultLanguage, and
// to the resolved ATG dialect name when no language is given at all
// (spec.md §4 supplemented features, grounded on the original
// implementation's own fallback chain).
func selectDialects(spec blockSpec, meta WitnessMetadata, reg Registries) (atg.Dialect, language.Language, anchor.Dialect, error) {
	atgName := spec.Atg
	if atgName == nil {
		atgName = meta.DefaultAtg
	}
	if atgName == nil {
		return atg.Dialect{}, nil, nil, fmt.Errorf("no atg dialect given and no default set")
	}

	langName := spec.Language
	if langName == nil {
		langName = meta.DefaultLanguage
	}
	if langName == nil {
		langName = atgName
	}
	lang, err := reg.Languages.Lookup(*langName)
	if err != nil {
		return atg.Dialect{}, nil, nil, err
	}

	anchorName := spec.Anchor
	if anchorName == nil {
		anchorName = meta.DefaultAnchor
	}
	if anchorName == nil {
		return atg.Dialect{}, nil, nil, fmt.Errorf("no anchor dialect given and no default set")
	}
	anchorDialect, err := reg.Anchor.Lookup(*anchorName)
	if err != nil {
		return atg.Dialect{}, nil, nil, err
	}

	atgDialect, err := reg.Atg.Lookup(*atgName)
	if err != nil {
		return atg.Dialect{}, nil, nil, err
	}

	return atgDialect, lang, anchorDialect, nil
}

// NormalisedFolioTranscript is a FolioTranscript with every block
// flattened and normalised, for a single correcting hand.
type NormalisedFolioTranscript struct {
	Metadata FolioMetadata
	Blocks   []normalize.NormalisedAtgBlock
	// RunID identifies this particular normalisation run of this hand's
	// folio. It has no meaning beyond letting a downstream lex store
	// tell two normalisation runs of the same folio apart, so repeated
	// runs never silently clobber a human's in-progress lex/morph
	// annotations under the same key.
	RunID uuid.UUID
}

// Normalise flattens and normalises every block of f, then transposes
// the per-block per-hand results into one NormalisedFolioTranscript per
// correcting hand. numHands (f.numHands, set by ParseFolioTranscript
// from the witness's declared Corrections) is passed into every
// block's IntoNormalisedBlocks explicitly, so a block with no
// Correction of its own still expands to the full declared hand count
// rather than collapsing to one.
func (f FolioTranscript) Normalise() []NormalisedFolioTranscript {
	numHands := f.numHands
	if numHands < 1 {
		numHands = 1
	}
	if len(f.Blocks) == 0 {
		out := make([]NormalisedFolioTranscript, numHands)
		for hand := range out {
			out[hand] = NormalisedFolioTranscript{Metadata: f.Metadata, RunID: uuid.New()}
		}
		return out
	}
	perBlock := make([][]normalize.NormalisedAtgBlock, len(f.Blocks))
	for i, b := range f.Blocks {
		perBlock[i] = b.IntoNormalisedBlocks(numHands)
	}
	out := make([]NormalisedFolioTranscript, numHands)
	for hand := 0; hand < numHands; hand++ {
		blocks := make([]normalize.NormalisedAtgBlock, len(perBlock))
		for i := range perBlock {
			blocks[i] = perBlock[i][hand]
		}
		out[hand] = NormalisedFolioTranscript{Metadata: f.Metadata, Blocks: blocks, RunID: uuid.New()}
	}
	return out
}

// RenderLexFile renders the lex file shown to a human for lex/morph
// annotation: the folio metadata header followed by every block's
// rendering.
func (n NormalisedFolioTranscript) RenderLexFile() string {
	res := fmt.Sprintf("[metadata]\ntranscriber = %q\neditors = %s\nrun_id = %q\n\n", n.Metadata.Transcriber, quoteList(n.Metadata.Editors), n.RunID)
	return res + lexfile.Render(n.Blocks)
}

func quoteList(ss []string) string {
	res := "["
	for i, s := range ss {
		if i > 0 {
			res += ", "
		}
		res += fmt.Sprintf("%q", s)
	}
	return res + "]"
}
