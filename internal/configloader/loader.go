// Package configloader resolves the configuration for a run: built-in
// defaults, then a project config file, then CLI flags, in increasing
// precedence.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/manify/pkg/config"
)

// ProjectConfigName is the config file discovered in the working directory.
const ProjectConfigName = ".manify.yaml"

// ErrConfigNotFound is returned when an explicit config path does not
// exist.
var ErrConfigNotFound = errors.New("config file not found")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for the project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config). If
	// set, project config discovery is skipped and the file must exist.
	ExplicitPath string

	// CLIConfig contains configuration from CLI flags. Non-zero fields
	// take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file actually loaded, if any.
	LoadedFrom string
}

// Load resolves the configuration for a run.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	cfg := config.Default()
	result := &LoadResult{Config: cfg}

	path, required := opts.ExplicitPath, opts.ExplicitPath != ""
	if path == "" {
		dir := opts.WorkingDir
		if dir == "" {
			var err error
			if dir, err = os.Getwd(); err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
		}
		path = filepath.Join(dir, ProjectConfigName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		result.LoadedFrom = path
	case os.IsNotExist(err) && !required:
		// No project config; defaults apply.
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if opts.CLIConfig != nil {
		merge(cfg, opts.CLIConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// merge overlays the non-zero fields of src onto dst.
func merge(dst, src *config.Config) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Summary != "" {
		dst.Summary = src.Summary
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Section != 0 {
		dst.Section = src.Section
	}
	if len(src.SymbolPrefixes) > 0 {
		dst.SymbolPrefixes = src.SymbolPrefixes
	}
	if src.FunctionsBanner != "" {
		dst.FunctionsBanner = src.FunctionsBanner
	}
	if src.MacrosBanner != "" {
		dst.MacrosBanner = src.MacrosBanner
	}
	if src.UnicodeBanner != "" {
		dst.UnicodeBanner = src.UnicodeBanner
	}
	if src.Input != "" {
		dst.Input = src.Input
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.ScratchCapacity != 0 {
		dst.ScratchCapacity = src.ScratchCapacity
	}
}
