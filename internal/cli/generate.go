package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/manify/internal/configloader"
	"github.com/yaklabco/manify/internal/logging"
	"github.com/yaklabco/manify/internal/ui/pretty"
	"github.com/yaklabco/manify/pkg/config"
	"github.com/yaklabco/manify/pkg/runner"
)

type generateFlags struct {
	input    string
	out      string
	name     string
	summary  string
	section  int
	prefixes []string
	quiet    bool
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert the reference manual into manual pages",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "source document to convert")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "directory receiving the generated pages")
	cmd.Flags().StringVar(&flags.name, "name", "", "library name for the aggregate page")
	cmd.Flags().StringVar(&flags.summary, "summary", "", "one-line description for the NAME section")
	cmd.Flags().IntVar(&flags.section, "section", 0, "manual section number")
	cmd.Flags().StringSliceVar(&flags.prefixes, "prefixes", nil,
		"letters a documented symbol may start with")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the summary")

	return cmd
}

const generateLongDescription = `Convert the reference manual into troff manual pages.

The aggregate page lands in the output directory as <name>.<section>; the
per-symbol pages land in man<section>/ below it, one per documented
function or macro. Any malformation in the input aborts the run.

Examples:
  manify generate                        # Convert ./bstrlib.txt
  manify generate -i doc/manual.txt      # Convert a specific document
  manify generate -o /usr/local/share/man
  manify generate --prefixes b,u,cstr    # Widen the symbol-name heuristic`

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Flags become the highest-precedence config layer.
	cli := &config.Config{
		Name:           flags.name,
		Summary:        flags.summary,
		Section:        flags.section,
		SymbolPrefixes: flags.prefixes,
		Input:          flags.input,
		OutputDir:      flags.out,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldPath, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldName, cfg.Name,
		logging.FieldSection, cfg.Section,
		logging.FieldInput, cfg.Input,
		logging.FieldOutput, cfg.OutputDir,
	)

	result, err := runner.Run(ctx, runner.Options{Config: cfg})
	if err != nil {
		return err
	}

	logger.Debug("generation complete",
		logging.FieldPages, result.Stats.SymbolPages,
		logging.FieldSymbols, result.Symbols,
	)

	if !flags.quiet {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		styles := pretty.NewStyles(pretty.ColorEnabled(colorMode, os.Stdout))
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummary(result))
	}

	return nil
}
