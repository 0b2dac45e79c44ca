// Package cli provides the command-line interface for critic.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curatorsigma/critic/internal/cli/commands"
	"github.com/curatorsigma/critic/internal/config"
	"github.com/curatorsigma/critic/internal/obslog"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "critic",
		Short: "critic - manuscript transcription and normalisation pipeline",
		Long: `critic parses Annotated Text Grammar (ATG) transcriptions of manuscript
witnesses, flattens scribal corrections, tokenises and normalises the
resulting text per-language, and renders the result to a lex file for
human lexical and morphological annotation.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := obslog.NewDefault(cfg.Verbose)
			ctx := config.NewContext(cmd.Context(), cfg)
			ctx = obslog.NewContext(ctx, logger)
			cmd.SetContext(ctx)
			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					logger.Debug("loaded config file", "path", used)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: critic.yaml or critic.yml, searched upward from the current directory)")
	rootCmd.PersistentFlags().String("witness-file", "", "path to the witness definition file")
	rootCmd.PersistentFlags().String("folio-dir", "", "directory containing folio files")
	rootCmd.PersistentFlags().String("output-dir", "", "directory to write lex files to")
	rootCmd.PersistentFlags().String("dialects-seed", "", "YAML file restricting which built-in dialects to register")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewAnchorsCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(commands.NewNormaliseCommand())

	return rootCmd
}

// Execute runs the root command and exits the process on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
