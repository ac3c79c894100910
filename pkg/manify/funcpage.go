package manify

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/manify/pkg/text"
	"github.com/yaklabco/manify/pkg/troff"
)

// externQual is stripped from prototypes as visual noise.
const externQual = "extern "

// symbolName extracts the documented symbol's name from a prototype block:
// the longest identifier-then-open-paren match, trimmed back past trailing
// spaces and the parenthesis.
func (g *Generator) symbolName(s []byte) (string, error) {
	loc := g.symbolRE.FindIndex(s)
	if loc == nil {
		return "", fmt.Errorf("%w: no symbol name in prototype %q", ErrMalformedInput, text.Excerpt(s))
	}
	end := loc[1]
	for end > loc[0] {
		if c := s[end-1]; c == '(' || c == ' ' {
			end--
			continue
		}
		break
	}
	return string(s[loc[0]:end]), nil
}

// stripExtern removes the extern qualifier from the prototype's first line
// and realigns the continuation line by the same width, so the rendered
// synopsis stays column-aligned.
func stripExtern(proto []byte) []byte {
	i := bytes.Index(proto, []byte(externQual))
	if i < 0 {
		return proto
	}
	proto = proto[i+len(externQual):]
	if nl := bytes.IndexByte(proto, '\n'); nl >= 0 && len(proto)-(nl+1) > len(externQual) {
		proto = append(proto[:nl+1], proto[nl+1+len(externQual):]...)
	}
	return proto
}

// funcHead opens the per-symbol page for the prototype block in lexeme and
// seeds it with title, name, synopsis, and an open DESCRIPTION section.
func (g *Generator) funcHead(lexeme []byte) error {
	// A dotted divider can lead straight from one function's body into the
	// next function's header; the previous page must be closed first.
	if err := g.funcExit(); err != nil {
		return err
	}

	name, err := g.symbolName(lexeme)
	if err != nil {
		return err
	}

	proto, err := g.tr.Reindent(lexeme, -text.LeadingSpaces(lexeme))
	if err != nil {
		return err
	}
	proto, err = g.tr.Escape(proto)
	if err != nil {
		return err
	}
	proto = stripExtern(proto)

	page, err := g.pages.Open(name)
	if err != nil {
		return err
	}
	g.page = page
	g.pageOut = troff.NewWriter(page)
	g.symbols = append(g.symbols, name)

	upper := string(text.ToUpperASCII([]byte(name)))
	if err := g.pageOut.Title(upper, g.cfg.Section); err != nil {
		return err
	}
	if err := g.pageOut.NameSection(name, g.cfg.Name+" function"); err != nil {
		return err
	}
	if err := g.pageOut.Synopsis(bytes.TrimSuffix(proto, []byte("\n"))); err != nil {
		return err
	}
	// Paragraphs are expected to follow.
	return g.pageOut.Section("DESCRIPTION")
}

// funcPar appends a description paragraph to the open per-symbol page.
func (g *Generator) funcPar(s []byte) error {
	if g.pageOut == nil {
		return fmt.Errorf("%w: description outside a function block: %q",
			ErrMalformedInput, text.Excerpt(s))
	}
	t, err := g.tr.TrimLeadingIndent(s)
	if err != nil {
		return err
	}
	e, err := g.tr.Escape(t)
	if err != nil {
		return err
	}
	return g.pageOut.Paragraph(e)
}

// funcEx appends a code example to the open per-symbol page at the
// canonical four-space indent.
func (g *Generator) funcEx(s []byte) error {
	if g.pageOut == nil {
		return fmt.Errorf("%w: example outside a function block: %q",
			ErrMalformedInput, text.Excerpt(s))
	}
	e, err := g.tr.Escape(s)
	if err != nil {
		return err
	}
	r, err := g.tr.Reindent(e, 4-text.LeadingSpaces(e))
	if err != nil {
		return err
	}
	return g.pageOut.BreakExample(r)
}

// funcExit closes the open per-symbol page, if any. It is safe to call
// when no page is open, so the page is closed exactly once whether the
// terminator, a following header, or end of input ends the block.
func (g *Generator) funcExit() error {
	if g.page == nil {
		return nil
	}
	page := g.page
	g.page = nil
	g.pageOut = nil
	if err := page.Close(); err != nil {
		return fmt.Errorf("close symbol page: %w", err)
	}
	return nil
}
