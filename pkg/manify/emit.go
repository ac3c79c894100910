package manify

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/manify/pkg/text"
)

// head writes the aggregate page's title and NAME section.
func (g *Generator) head() error {
	upper := string(text.ToUpperASCII([]byte(g.cfg.Name)))
	if err := g.out.Title(upper, g.cfg.Section); err != nil {
		return err
	}
	return g.out.NameSection(g.cfg.Name, g.cfg.Summary)
}

// heading emits the first line of lexeme as a section heading. Level 1 is
// upper-cased.
func (g *Generator) heading(lexeme []byte, level int) error {
	nl := bytes.IndexByte(lexeme, '\n')
	if nl < 0 {
		return fmt.Errorf("%w: no newline in heading %q", ErrMalformedInput, text.Excerpt(lexeme))
	}
	line := lexeme[:nl+1]
	if level == 1 {
		return g.out.Heading(text.ToUpperASCII(line))
	}
	return g.out.SubHeading(line)
}

// par emits s as an ordinary paragraph on the aggregate page.
func (g *Generator) par(s []byte) error {
	t, err := g.tr.TrimLeadingIndent(s)
	if err != nil {
		return err
	}
	e, err := g.tr.Escape(t)
	if err != nil {
		return err
	}
	return g.out.Paragraph(e)
}

// ol flushes the accumulated ordered-list item. An item whose second line
// is indented gets a hanging layout: the numeric marker becomes the tag and
// the remainder the body. Otherwise the whole item is a plain paragraph.
func (g *Generator) ol() error {
	s := g.acc.Bytes()
	if len(s) == 0 {
		return nil
	}

	hanging := true
	if nl := bytes.IndexByte(s, '\n'); nl >= 0 && nl+1 < len(s) && s[nl+1] != ' ' {
		hanging = false
	}

	t, err := g.tr.TrimLeadingIndent(s)
	if err != nil {
		return err
	}
	e, err := g.tr.Escape(t)
	if err != nil {
		return err
	}

	labelLen := text.Span(e, "0123456789.)")
	if labelLen == 0 {
		return fmt.Errorf("%w: no ordered-list marker in %q", ErrMalformedInput, text.Excerpt(e))
	}
	wsLen := text.Span(e[labelLen:], " ")

	if hanging {
		err = g.out.TaggedParagraph(e[:labelLen], e[labelLen+wsLen:])
	} else {
		err = g.out.Paragraph(e)
	}
	if err != nil {
		return err
	}
	g.acc.Clear()
	return nil
}

// ul flushes the accumulated unordered-list item as a tagged block with a
// literal "-" tag.
func (g *Generator) ul() error {
	s := g.acc.Bytes()
	if len(s) == 0 {
		return nil
	}

	t, err := g.tr.TrimLeadingIndent(s)
	if err != nil {
		return err
	}
	e, err := g.tr.Escape(t)
	if err != nil {
		return err
	}

	prefixLen := text.Span(e, "- ")
	if err := g.out.TaggedParagraph([]byte("-"), e[prefixLen:]); err != nil {
		return err
	}
	g.acc.Clear()
	return nil
}

// bq flushes the accumulated indented block as an example block at the
// canonical four-space indent.
func (g *Generator) bq() error {
	s := g.acc.Bytes()
	if len(s) == 0 {
		return nil
	}

	e, err := g.tr.Escape(s)
	if err != nil {
		return err
	}
	r, err := g.tr.Reindent(e, 4-text.LeadingSpaces(e))
	if err != nil {
		return err
	}
	if err := g.out.Example(r); err != nil {
		return err
	}
	g.acc.Clear()
	return nil
}

// nf emits s verbatim as a no-fill block: tables, the files list, the
// acknowledgements, and the Makefile example all land here.
func (g *Generator) nf(s []byte) error {
	e, err := g.tr.Escape(s)
	if err != nil {
		return err
	}
	return g.out.NoFill(e)
}

// nfAcc flushes the accumulation buffer through nf.
func (g *Generator) nfAcc() error {
	if g.acc.Len() == 0 {
		return nil
	}
	if err := g.nf(g.acc.Bytes()); err != nil {
		return err
	}
	g.acc.Clear()
	return nil
}

// macroDesc emits a compilation-macro description: the first line is the
// tag, the rest (minus any leading dashes and spaces) the body.
func (g *Generator) macroDesc(s []byte) error {
	t, err := g.tr.TrimLeadingIndent(s)
	if err != nil {
		return err
	}
	e, err := g.tr.Escape(t)
	if err != nil {
		return err
	}

	tagEnd := bytes.IndexByte(e, '\n')
	if tagEnd < 0 {
		return fmt.Errorf("%w: no newline in macro description %q", ErrMalformedInput, text.Excerpt(e))
	}
	descOffset := tagEnd + text.Span(e[tagEnd:], " -\n")
	return g.out.TaggedParagraph(e[:tagEnd], e[descOffset:])
}
