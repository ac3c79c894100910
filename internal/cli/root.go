// Package cli provides the Cobra command structure for manify.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/manify/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root manify command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "manify",
		Short: "Generate troff manual pages from a plain-text reference manual",
		Long: `manify converts one structured plain-text reference manual into troff
manual pages: a page describing the library as a whole, plus one page per
documented function or macro.

The input layout is recognized by pattern heuristics, not a formal grammar:
underlined headings, numbered and bulleted lists, indented example blocks,
a functions section, tables, and a Makefile example. It is most useful for
looking up library functions from an editor, for example with Shift-K in
Vim.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
