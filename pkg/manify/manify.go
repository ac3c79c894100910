// Package manify turns one structured plain-text reference manual into
// troff manual pages: an aggregate page for the library and one page per
// documented function or macro.
//
// The input layout is not a formal grammar. It is recognized by the pattern
// heuristics in rules.go, evaluated by the pkg/scan driver; each match
// invokes a block emitter that applies pkg/text transforms and writes troff
// markup through pkg/troff. Any malformation is fatal to the whole run:
// the tool is a build-time generator over one trusted document, so there is
// no best-effort recovery.
package manify

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/manify/pkg/config"
	"github.com/yaklabco/manify/pkg/scan"
	"github.com/yaklabco/manify/pkg/text"
	"github.com/yaklabco/manify/pkg/troff"
)

// Sentinel errors for categorization via errors.Is. Every one of them
// aborts the run.
var (
	// ErrMalformedInput indicates an expected structural marker is absent
	// from the document.
	ErrMalformedInput = errors.New("malformed input")

	// ErrResourceFailure indicates an output directory or page could not
	// be created, written, or closed.
	ErrResourceFailure = errors.New("resource failure")

	// ErrBadPattern indicates the symbol-name pattern did not compile, a
	// configuration error rather than a document error.
	ErrBadPattern = errors.New("symbol-name pattern")
)

// symbolBody is the identifier shape after the configured prefix letter.
const symbolBody = "[a-zA-Z0-9-]+ ?\\("

// Generator converts one document. It owns the transform scratch buffers,
// the block accumulation buffer, the aggregate output, and the per-symbol
// page currently open, if any. A Generator is single-use and not safe for
// concurrent use.
type Generator struct {
	cfg *config.Config
	tr  *text.Transformer
	acc *text.Accumulator

	agg bytes.Buffer
	out *troff.Writer

	pages   PageOpener
	page    Page
	pageOut *troff.Writer

	symbolRE *regexp.Regexp
	symbols  []string
}

// New creates a Generator writing per-symbol pages through pages.
func New(cfg *config.Config, pages PageOpener) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pattern := "[" + strings.Join(cfg.SymbolPrefixes, "") + "]" + symbolBody
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrBadPattern, pattern, err)
	}

	g := &Generator{
		cfg:      cfg,
		tr:       text.NewTransformer(cfg.ScratchCapacity),
		acc:      text.NewAccumulator(cfg.ScratchCapacity),
		pages:    pages,
		symbolRE: re,
	}
	g.out = troff.NewWriter(&g.agg)
	return g, nil
}

// Generate scans the whole document and returns the aggregate page.
// Per-symbol pages are opened and closed through the PageOpener as their
// documentation blocks are recognized. Any error is fatal; the scan does
// not resume.
func (g *Generator) Generate(input []byte) ([]byte, error) {
	// The grammar is line-oriented; an unterminated final line would never
	// match any rule.
	if len(input) > 0 && input[len(input)-1] != '\n' {
		input = append(bytes.Clone(input), '\n')
	}

	s := scan.New(input, g.rules(), g.finalizers())
	if err := s.Run(); err != nil {
		if errors.Is(err, scan.ErrNoMatch) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return nil, err
	}
	return g.agg.Bytes(), nil
}

// Symbols returns the names of the functions and macros documented so far,
// in input order.
func (g *Generator) Symbols() []string {
	return g.symbols
}
