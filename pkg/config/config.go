// Package config defines the configuration types for manify. These are pure
// data structures; loading and merging live in internal/configloader.
package config

import (
	"errors"
	"fmt"
)

// Defaults matching the document the tool was built for.
const (
	DefaultName        = "bstrlib"
	DefaultSummary     = "the better string library"
	DefaultTitle       = "Better String library"
	DefaultSection     = 3
	DefaultInput       = "bstrlib.txt"
	DefaultOutputDir   = "."
	DefaultFuncsBanner = "The functions"
	DefaultMacroBanner = "The macros"
	DefaultUniBanner   = "Unicode functions"
)

// Config is the root configuration for a generation run.
type Config struct {
	// Name is the library name used for the aggregate page.
	Name string `yaml:"name"`

	// Summary is the one-line description in the aggregate NAME section.
	Summary string `yaml:"summary"`

	// Title is the document's title-banner line, the one content-specific
	// pattern in the grammar.
	Title string `yaml:"title"`

	// Section is the manual section number for all generated pages.
	Section int `yaml:"section"`

	// SymbolPrefixes lists the letters a documented symbol may start with.
	// The source document's naming convention determines this set.
	SymbolPrefixes []string `yaml:"symbol_prefixes"`

	// FunctionsBanner and MacrosBanner head the sections whose blocks are
	// rendered as per-symbol pages. UnicodeBanner heads the section whose
	// indented text is reflowed as ordinary paragraphs.
	FunctionsBanner string `yaml:"functions_banner"`
	MacrosBanner    string `yaml:"macros_banner"`
	UnicodeBanner   string `yaml:"unicode_banner"`

	// Input is the path of the document to convert.
	Input string `yaml:"input"`

	// OutputDir receives the aggregate page and the per-symbol page
	// subdirectory (man<section>).
	OutputDir string `yaml:"output_dir"`

	// ScratchCapacity bounds each transform scratch buffer, in bytes.
	// Zero selects the built-in default.
	ScratchCapacity int `yaml:"scratch_capacity"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Name:            DefaultName,
		Summary:         DefaultSummary,
		Title:           DefaultTitle,
		Section:         DefaultSection,
		SymbolPrefixes:  []string{"b", "u"},
		FunctionsBanner: DefaultFuncsBanner,
		MacrosBanner:    DefaultMacroBanner,
		UnicodeBanner:   DefaultUniBanner,
		Input:           DefaultInput,
		OutputDir:       DefaultOutputDir,
	}
}

// Validation errors.
var (
	ErrBadSection = errors.New("section must be between 1 and 9")
	ErrBadPrefix  = errors.New("symbol prefix must be a single ASCII letter")
	ErrNoName     = errors.New("name must not be empty")
)

// Validate checks the configuration for values the generator cannot work
// with.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrNoName
	}
	if c.Section < 1 || c.Section > 9 {
		return fmt.Errorf("%w: got %d", ErrBadSection, c.Section)
	}
	if len(c.SymbolPrefixes) == 0 {
		return fmt.Errorf("%w: none configured", ErrBadPrefix)
	}
	for _, p := range c.SymbolPrefixes {
		if len(p) != 1 || !isASCIILetter(p[0]) {
			return fmt.Errorf("%w: got %q", ErrBadPrefix, p)
		}
	}
	return nil
}

// PagesDir returns the subdirectory name for per-symbol pages, e.g. "man3".
func (c *Config) PagesDir() string {
	return fmt.Sprintf("man%d", c.Section)
}

// AggregateFile returns the file name of the aggregate page, e.g.
// "bstrlib.3".
func (c *Config) AggregateFile() string {
	return fmt.Sprintf("%s.%d", c.Name, c.Section)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
