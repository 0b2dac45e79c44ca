package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/curatorsigma/critic/internal/config"
	"github.com/curatorsigma/critic/internal/obslog"
	"github.com/curatorsigma/critic/pkg/witness"
)

// tomlFolioSource reads folio files as "<dir>/<name>.toml" and decodes
// them with BurntSushi/toml into the generic tree witness.
// ParseFolioTranscript expects. This is the file-I/O/TOML-parsing
// collaborator: pkg/witness itself never touches a file or a TOML
// parser.
type tomlFolioSource struct {
	dir string
}

func (s tomlFolioSource) Folio(name string) (map[string]any, error) {
	path := filepath.Join(s.dir, name+".toml")
	var tree map[string]any
	if _, err := toml.DecodeFile(path, &tree); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return tree, nil
}

func readWitnessMetadata(path string) (witness.WitnessMetadata, error) {
	var tree map[string]any
	if _, err := toml.DecodeFile(path, &tree); err != nil {
		return witness.WitnessMetadata{}, fmt.Errorf("reading %q: %w", path, err)
	}
	return witness.ParseWitnessMetadata(tree)
}

// NewNormaliseCommand creates the "normalise" command: parse a witness
// definition and its folios, flatten corrections, tokenise and
// normalise every block, and write one lex file per correcting hand to
// the configured output directory.
func NewNormaliseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalise",
		Short: "Parse and normalise a witness, writing lex files",
		Long: `Read the configured witness definition and its folio files, flatten out
scribal corrections, tokenise and language-normalise the text, and write
one lex file per correcting hand to the output directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := obslog.FromContext(cmd.Context())

			meta, err := readWitnessMetadata(cfg.WitnessFile)
			if err != nil {
				return err
			}
			logger.Debug("loaded witness metadata", "witness", meta.Name, "folios", len(meta.Folios))

			reg, err := loadRegistries(cfg.DialectsSeedFile)
			if err != nil {
				return err
			}
			w, err := witness.ParseWitness(meta, tomlFolioSource{dir: cfg.FolioDir}, reg)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory %q: %w", cfg.OutputDir, err)
			}

			showStats, err := cmd.Flags().GetBool("stats")
			if err != nil {
				return err
			}

			for i, hand := range w.Normalise() {
				tag := handFileTag(hand, i)
				path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s.%s.lex", meta.Name, tag))
				var rendered string
				for fi, folio := range hand.Folios {
					rendered += fmt.Sprintf("# folio %s\n\n", meta.Folios[fi])
					rendered += folio.RenderLexFile()
					rendered += "\n"
				}
				if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("writing %q: %w", path, err)
				}
				logger.Debug("wrote lex file", "hand", tag, "path", path)
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

				if showStats {
					renderNormaliseStats(cmd, meta, tag, hand)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("stats", false, "print per-folio word and anchor counts for each hand")
	return cmd
}

// renderNormaliseStats prints a table of per-folio word and anchor counts
// for a single normalised hand, summed across every block of each folio.
func renderNormaliseStats(cmd *cobra.Command, meta witness.WitnessMetadata, tag string, hand witness.NormalisedWitness) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetTitle(fmt.Sprintf("%s: %s", meta.Name, tag))
	t.AppendHeader(table.Row{"Folio", "Words", "Anchors"})
	for fi, folio := range hand.Folios {
		words, anchors := 0, 0
		for _, block := range folio.Blocks {
			words += len(block.Text.Text)
			anchors += len(block.Text.AnchorPositions)
		}
		name := fmt.Sprintf("folio %d", fi+1)
		if fi < len(meta.Folios) {
			name = meta.Folios[fi]
		}
		t.AppendRow(table.Row{name, words, anchors})
	}
	t.Render()
}

func handFileTag(hand witness.NormalisedWitness, idx int) string {
	return hand.HandName(idx)
}
