package manify

import (
	"bytes"

	"github.com/yaklabco/manify/pkg/scan"
)

// rules returns the ordered rule table. Order is significant: within the
// active mode the longest match wins, and the earlier rule breaks ties, so
// a terminator line beats the paragraph rule that would also cover it.
func (g *Generator) rules() []scan.Rule {
	return []scan.Rule{
		{
			// The document-title banner, the one content-specific pattern.
			Name:  "title-banner",
			Modes: scan.In(scan.ModeDefault),
			Match: g.matchTitleBanner,
			Action: func(lexeme []byte) error {
				if err := g.head(); err != nil {
					return err
				}
				return g.heading(lexeme, 1)
			},
			Next: scan.ModeDefault,
		},
		{
			// A dotted divider, the functions banner, or the macros banner
			// announces that the next block is a function prototype.
			Name:  "function-section",
			Modes: scan.In(scan.ModeDefault, scan.ModeFuncBody),
			Match: g.matchFuncSection,
			Next:  scan.ModeFuncHeader,
		},
		{
			Name:  "function-exit",
			Modes: scan.In(scan.ModeFuncBody),
			Match: matchEqualsRun(5),
			Action: func([]byte) error {
				return g.funcExit()
			},
			Next: scan.ModeDefault,
		},
		{
			Name:  "function-head",
			Modes: scan.In(scan.ModeFuncHeader),
			Match: nonblankBlock,
			Action: func(lexeme []byte) error {
				return g.funcHead(lexeme)
			},
			Next: scan.ModeFuncBody,
		},
		{
			// A paragraph whose last line ends in a colon introduces an
			// example for exactly the next block.
			Name:  "function-par-colon",
			Modes: scan.In(scan.ModeFuncBody),
			Match: matchColonParagraph,
			Action: func(lexeme []byte) error {
				return g.funcPar(lexeme)
			},
			Next: scan.ModeFuncExample,
		},
		{
			Name:  "function-example",
			Modes: scan.In(scan.ModeFuncExample),
			Match: nonblankBlock,
			Action: func(lexeme []byte) error {
				return g.funcEx(lexeme)
			},
			Next: scan.ModeFuncBody,
		},
		{
			Name:  "function-par",
			Modes: scan.In(scan.ModeFuncBody),
			Match: nonblankBlock,
			Action: func(lexeme []byte) error {
				return g.funcPar(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "function-blank",
			Modes: scan.In(scan.ModeFuncBody),
			Match: matchNewline,
			Next:  scan.ModeSame,
		},
		{
			// The paragraphs after this heading are indented for no reason;
			// reformat them as ordinary paragraphs instead of examples.
			Name:  "unicode-heading",
			Modes: scan.In(scan.ModeDefault),
			Match: g.matchUnicodeBanner,
			Action: func(lexeme []byte) error {
				return g.heading(lexeme, 1)
			},
			Next: scan.ModeUniPars,
		},
		{
			Name:     "unicode-exit",
			Modes:    scan.In(scan.ModeUniPars),
			Match:    matchDottedRule,
			Next:     scan.ModeDefault,
			Pushback: true,
		},
		{
			Name:  "unicode-blank",
			Modes: scan.In(scan.ModeUniPars),
			Match: matchNewline,
			Next:  scan.ModeSame,
		},
		{
			Name:  "unicode-par",
			Modes: scan.In(scan.ModeUniPars),
			Match: nonblankBlock,
			Action: func(lexeme []byte) error {
				return g.par(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "heading-1",
			Modes: scan.In(scan.ModeDefault),
			Match: matchUnderlined('-'),
			Action: func(lexeme []byte) error {
				return g.heading(lexeme, 1)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "heading-2",
			Modes: scan.In(scan.ModeDefault),
			Match: matchUnderlined('.'),
			Action: func(lexeme []byte) error {
				return g.heading(lexeme, 2)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "section-divider",
			Modes: scan.In(scan.ModeDefault),
			Match: matchEqualsRun(3),
			Next:  scan.ModeSame,
		},
		{
			Name:  "blank-line",
			Modes: scan.In(scan.ModeDefault),
			Match: matchBlankLine,
			Next:  scan.ModeSame,
		},
		{
			// A fresh marker while already accumulating flushes the
			// previous item first.
			Name:  "ol-start",
			Modes: scan.In(scan.ModeDefault, scan.ModeOrderedList),
			Match: matchOrderedMarker,
			Action: func(lexeme []byte) error {
				if err := g.ol(); err != nil {
					return err
				}
				return g.acc.Start(lexeme)
			},
			Next: scan.ModeOrderedList,
		},
		{
			Name:  "ol-append",
			Modes: scan.In(scan.ModeOrderedList),
			Match: matchNonemptyLine,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "ol-end",
			Modes: scan.In(scan.ModeOrderedList),
			Match: matchNewline,
			Action: func([]byte) error {
				return g.ol()
			},
			Next: scan.ModeDefault,
		},
		{
			Name:  "ul-start",
			Modes: scan.In(scan.ModeDefault, scan.ModeUnorderedList),
			Match: matchBulletMarker,
			Action: func(lexeme []byte) error {
				if err := g.ul(); err != nil {
					return err
				}
				return g.acc.Start(lexeme)
			},
			Next: scan.ModeUnorderedList,
		},
		{
			Name:  "ul-append",
			Modes: scan.In(scan.ModeUnorderedList),
			Match: matchNonemptyLine,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "ul-end",
			Modes: scan.In(scan.ModeUnorderedList),
			Match: matchNewline,
			Action: func([]byte) error {
				return g.ul()
			},
			Next: scan.ModeDefault,
		},
		{
			Name:  "bq-start",
			Modes: scan.In(scan.ModeDefault),
			Match: matchIndentedLine,
			Action: func(lexeme []byte) error {
				return g.acc.Start(lexeme)
			},
			Next: scan.ModeBlockQuote,
		},
		{
			Name:  "bq-append",
			Modes: scan.In(scan.ModeBlockQuote),
			Match: matchIndentedLine,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "bq-blank",
			Modes: scan.In(scan.ModeBlockQuote),
			Match: matchNewline,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			// A blank line followed by an unindented line ends the quote;
			// the whole lexeme is pushed back for default-mode rules.
			Name:  "bq-end",
			Modes: scan.In(scan.ModeBlockQuote),
			Match: matchQuoteBoundary,
			Action: func([]byte) error {
				return g.bq()
			},
			Next:     scan.ModeDefault,
			Pushback: true,
		},
		{
			Name:  "makefile-start",
			Modes: scan.In(scan.ModeDefault),
			Match: matchMakeAssign,
			Action: func(lexeme []byte) error {
				return g.acc.Start(lexeme)
			},
			Next: scan.ModeMakefile,
		},
		{
			Name:  "makefile-append",
			Modes: scan.In(scan.ModeMakefile),
			Match: matchMakeRecipe,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "makefile-end",
			Modes: scan.In(scan.ModeMakefile),
			Match: nonblankBlock,
			Action: func([]byte) error {
				return g.nfAcc()
			},
			Next:     scan.ModeDefault,
			Pushback: true,
		},
		{
			Name:  "table-start",
			Modes: scan.In(scan.ModeDefault),
			Match: matchTableStart,
			Action: func(lexeme []byte) error {
				return g.acc.Start(lexeme)
			},
			Next: scan.ModeTable,
		},
		{
			Name:  "table-append",
			Modes: scan.In(scan.ModeTable),
			Match: matchTableRow,
			Action: func(lexeme []byte) error {
				return g.acc.Append(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "table-end",
			Modes: scan.In(scan.ModeTable),
			Match: nonblankLine,
			Action: func([]byte) error {
				return g.nfAcc()
			},
			Next:     scan.ModeDefault,
			Pushback: true,
		},
		{
			// A run of name-shaped lines is an acknowledgements block;
			// keep its layout.
			Name:  "acknowledgements",
			Modes: scan.In(scan.ModeDefault),
			Match: matchNameBlock,
			Action: func(lexeme []byte) error {
				return g.nf(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "macro-description",
			Modes: scan.In(scan.ModeDefault),
			Match: matchMacroDescription,
			Action: func(lexeme []byte) error {
				return g.macroDesc(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			Name:  "files-list",
			Modes: scan.In(scan.ModeDefault),
			Match: matchFilesList,
			Action: func(lexeme []byte) error {
				return g.nf(lexeme)
			},
			Next: scan.ModeSame,
		},
		{
			// The fallback that guarantees progress on any remaining
			// non-structural text.
			Name:  "paragraph",
			Modes: scan.In(scan.ModeDefault),
			Match: matchParagraph,
			Action: func(lexeme []byte) error {
				return g.par(lexeme)
			},
			Next: scan.ModeSame,
		},
	}
}

// finalizers flush whatever block is still accumulating when the input
// ends, and close a per-symbol page left open by a document without a
// trailing terminator.
func (g *Generator) finalizers() []scan.Finalizer {
	return []scan.Finalizer{
		{Name: "ol-eof", Modes: scan.In(scan.ModeOrderedList), Action: g.ol, Next: scan.ModeDefault},
		{Name: "ul-eof", Modes: scan.In(scan.ModeUnorderedList), Action: g.ul, Next: scan.ModeDefault},
		{Name: "bq-eof", Modes: scan.In(scan.ModeBlockQuote), Action: g.bq, Next: scan.ModeDefault},
		{Name: "nf-eof", Modes: scan.In(scan.ModeMakefile, scan.ModeTable), Action: g.nfAcc, Next: scan.ModeDefault},
		{Name: "func-eof", Modes: scan.In(scan.ModeFuncBody, scan.ModeFuncExample), Action: g.funcExit, Next: scan.ModeDefault},
	}
}

// --- configured matchers -------------------------------------------------

// matchTitleBanner matches the title line underlined by dashes.
func (g *Generator) matchTitleBanner(rest []byte) int {
	n := matchLiteralLine(rest, g.cfg.Title)
	if n == 0 {
		return 0
	}
	u := matchRunLine(rest[n:], '-', 3)
	if u == 0 {
		return 0
	}
	return n + u
}

// matchFuncSection matches any of the three announcements that a function
// prototype follows: an indented dotted divider with a blank line, the
// functions banner with its underline and a blank line, or the macros
// banner with its introduction block.
func (g *Generator) matchFuncSection(rest []byte) int {
	best := matchDottedDivider(rest)

	if n := matchLiteralLine(rest, g.cfg.FunctionsBanner); n > 0 {
		if u := matchRunLine(rest[n:], '-', 5); u > 0 && hasNewline(rest[n+u:]) {
			if m := n + u + 1; m > best {
				best = m
			}
		}
	}

	if n := matchLiteralLine(rest, g.cfg.MacrosBanner); n > 0 && hasNewline(rest[n:]) {
		p := n + 1
		if b := nonblankBlock(rest[p:]); b > 0 && bytes.HasPrefix(rest[p+b:], doubleNewline) {
			if m := p + b + 2; m > best {
				best = m
			}
		}
	}

	return best
}

// matchUnicodeBanner matches the Unicode-section heading: banner line,
// dash underline, blank line.
func (g *Generator) matchUnicodeBanner(rest []byte) int {
	n := matchLiteralLine(rest, g.cfg.UnicodeBanner)
	if n == 0 {
		return 0
	}
	u := matchRunLine(rest[n:], '-', 3)
	if u == 0 || !hasNewline(rest[n+u:]) {
		return 0
	}
	return n + u + 1
}
