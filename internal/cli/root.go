package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "suchselgen",
		Short: "Generate word-search (Suchsel) and crossword puzzles",
		Long: `suchselgen places words from a word list onto a letter grid under
configurable directional rules, fills the remaining cells with
frequency-weighted filler letters, and can disguise one unplaced word
inside the filler.

Puzzles can be written as plain text, SVG, or a spreadsheet, or served
over a JSON API.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (placement logging, grid dumps)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
