// Package troff writes the small subset of man-page macros the generator
// needs. Body text must already be escaped (see pkg/text); the writer only
// arranges macros around it.
package troff

import (
	"fmt"
	"io"
)

// Macro sequences emitted by the writer.
const (
	titleMacro     = ".TH"
	sectionMacro   = ".SH"
	subsectionMcr  = ".SS"
	paragraphMacro = ".P"
	taggedMacro    = ".TP"
	exampleStart   = ".EX"
	exampleEnd     = ".EE"
	noFillStart    = ".nf"
	noFillEnd      = ".fi"
	breakMacro     = ".br"
)

// Writer emits troff markup to an underlying destination. Write errors are
// returned immediately; the run treats any of them as fatal.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (t *Writer) writef(format string, args ...any) error {
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		return fmt.Errorf("write troff output: %w", err)
	}
	return nil
}

// Title emits the page title macro: ".TH NAME SECTION".
func (t *Writer) Title(name string, section int) error {
	return t.writef("%s %s %d\n", titleMacro, name, section)
}

// NameSection emits the NAME section with its customary one-line summary.
func (t *Writer) NameSection(name, summary string) error {
	return t.writef("%s NAME\n%s \\- %s\n", sectionMacro, name, summary)
}

// Heading emits a top-level section heading. line must include its
// terminating newline.
func (t *Writer) Heading(line []byte) error {
	return t.writef("%s %s", sectionMacro, line)
}

// SubHeading emits a sub-section heading. line must include its terminating
// newline.
func (t *Writer) SubHeading(line []byte) error {
	return t.writef("%s %s", subsectionMcr, line)
}

// Section emits a bare section heading such as "DESCRIPTION".
func (t *Writer) Section(name string) error {
	return t.writef("%s %s\n", sectionMacro, name)
}

// Paragraph emits body as an ordinary paragraph. body must end in a
// newline.
func (t *Writer) Paragraph(body []byte) error {
	return t.writef("%s\n%s", paragraphMacro, body)
}

// TaggedParagraph emits a tag line with a hanging body, used for list items
// and macro descriptions.
func (t *Writer) TaggedParagraph(tag, body []byte) error {
	return t.writef("%s\n%s\n%s", taggedMacro, tag, body)
}

// Example wraps body in an example block rendered verbatim.
func (t *Writer) Example(body []byte) error {
	return t.writef("\n%s\n%s%s\n", exampleStart, body, exampleEnd)
}

// BreakExample emits a line break followed by an example block, used for
// code samples inside a function description.
func (t *Writer) BreakExample(body []byte) error {
	return t.writef("%s\n%s\n%s%s\n", breakMacro, exampleStart, body, exampleEnd)
}

// Synopsis emits the SYNOPSIS section holding a function prototype.
func (t *Writer) Synopsis(prototype []byte) error {
	return t.writef("%s SYNOPSIS\n%s\n%s\n%s\n", sectionMacro, exampleStart, prototype, exampleEnd)
}

// NoFill wraps body in a no-fill block, used for tables and other regions
// whose layout must survive as-is.
func (t *Writer) NoFill(body []byte) error {
	return t.writef("\n%s\n%s%s\n", noFillStart, body, noFillEnd)
}
