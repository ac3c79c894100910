// Package runner orchestrates one generation run: read the source
// document, scan it, and commit the aggregate and per-symbol pages.
package runner

import (
	"path/filepath"

	"github.com/yaklabco/manify/pkg/config"
)

// Options controls a generation run.
type Options struct {
	// InputPath is the document to convert. Empty selects the configured
	// input.
	InputPath string

	// OutputDir receives the aggregate page and the per-symbol page
	// subdirectory. Empty selects the configured directory.
	OutputDir string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectiveInput() string {
	if o.InputPath != "" {
		return o.InputPath
	}
	return o.Config.Input
}

func (o Options) effectiveOutputDir() string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return o.Config.OutputDir
}

func (o Options) aggregatePath() string {
	return filepath.Join(o.effectiveOutputDir(), o.Config.AggregateFile())
}

func (o Options) pagesDir() string {
	return filepath.Join(o.effectiveOutputDir(), o.Config.PagesDir())
}
