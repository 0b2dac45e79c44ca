package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/curatorsigma/critic/internal/config"
)

// NewDialectsCommand creates the "dialects" command, listing every
// ATG, anchor, and language dialect registered in this build.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered ATG, anchor, and language dialects",
		Long:  `Display every ATG dialect, anchor dialect, and language known to this build of critic.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			reg, err := loadRegistries(cfg.DialectsSeedFile)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Kind", "Name"})
			for _, name := range reg.Atg.Names() {
				t.AppendRow(table.Row{"atg", name})
			}
			for _, name := range reg.Anchor.Names() {
				t.AppendRow(table.Row{"anchor", name})
			}
			for _, name := range reg.Languages.Names() {
				t.AppendRow(table.Row{"language", name})
			}
			t.Render()
			return nil
		},
	}
}

// NewAnchorsCommand creates the "anchors" command, listing every
// registered anchor dialect on its own (a narrower view of "dialects").
func NewAnchorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "List registered anchor dialects",
		Long:  `Display every anchor dialect known to this build of critic.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			reg, err := loadRegistries(cfg.DialectsSeedFile)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name"})
			for _, name := range reg.Anchor.Names() {
				t.AppendRow(table.Row{name})
			}
			t.Render()
			return nil
		},
	}
}

// NewLanguagesCommand creates the "languages" command, listing every
// registered language on its own (a narrower view of "dialects").
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List registered languages",
		Long:  `Display every language known to this build of critic.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			reg, err := loadRegistries(cfg.DialectsSeedFile)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name"})
			for _, name := range reg.Languages.Names() {
				t.AppendRow(table.Row{name})
			}
			t.Render()
			return nil
		},
	}
}
