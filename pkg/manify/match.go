package manify

import (
	"bytes"

	"github.com/yaklabco/manify/pkg/scan"
	"github.com/yaklabco/manify/pkg/text"
)

// Matchers report the length of the lexeme they recognize at the start of
// the remaining input, or 0. They never allocate; the driver calls every
// eligible one per position.

var doubleNewline = []byte("\n\n")

func hasNewline(rest []byte) bool {
	return len(rest) > 0 && rest[0] == '\n'
}

// lineLen returns the length of the next line including its newline, or 0
// if the input holds no further newline.
func lineLen(rest []byte) int {
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// runLen returns the length of the leading run of c.
func runLen(rest []byte, c byte) int {
	n := 0
	for n < len(rest) && rest[n] == c {
		n++
	}
	return n
}

// matchLiteralLine matches exactly the line lit ("lit\n").
func matchLiteralLine(rest []byte, lit string) int {
	n := len(lit)
	if len(rest) <= n || string(rest[:n]) != lit || rest[n] != '\n' {
		return 0
	}
	return n + 1
}

// matchRunLine matches a line consisting of at least min copies of c.
func matchRunLine(rest []byte, c byte, min int) int {
	n := runLen(rest, c)
	if n < min || n >= len(rest) || rest[n] != '\n' {
		return 0
	}
	return n + 1
}

// matchEqualsRun returns a matcher for a line of at least min '=' signs.
func matchEqualsRun(min int) scan.Matcher {
	return func(rest []byte) int {
		return matchRunLine(rest, '=', min)
	}
}

// matchNewline matches a single bare newline.
func matchNewline(rest []byte) int {
	if hasNewline(rest) {
		return 1
	}
	return 0
}

// matchBlankLine matches a line of only spaces and tabs.
func matchBlankLine(rest []byte) int {
	n := 0
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	if n < len(rest) && rest[n] == '\n' {
		return n + 1
	}
	return 0
}

// nonblankLine matches one line containing a non-whitespace character,
// including its newline.
func nonblankLine(rest []byte) int {
	nonblank := false
	for i, c := range rest {
		if c == '\n' {
			if nonblank {
				return i + 1
			}
			return 0
		}
		if c != ' ' && c != '\t' {
			nonblank = true
		}
	}
	return 0
}

// nonblankBlock matches a maximal run of non-blank lines.
func nonblankBlock(rest []byte) int {
	n := 0
	for {
		l := nonblankLine(rest[n:])
		if l == 0 {
			return n
		}
		n += l
	}
}

// matchNonemptyLine matches any line holding at least one character.
func matchNonemptyLine(rest []byte) int {
	l := lineLen(rest)
	if l < 2 {
		return 0
	}
	return l
}

// matchColonParagraph matches a run of non-blank lines whose last line
// ends in a colon, plus the blank line that follows.
func matchColonParagraph(rest []byte) int {
	n := nonblankBlock(rest)
	if n < 2 || rest[n-2] != ':' {
		return 0
	}
	if n >= len(rest) || rest[n] != '\n' {
		return 0
	}
	return n + 1
}

// matchDottedDivider matches the divider separating function blocks: four
// spaces, five or more dots, and a blank line.
func matchDottedDivider(rest []byte) int {
	const indent = 4
	if len(rest) < indent {
		return 0
	}
	for i := range indent {
		if rest[i] != ' ' {
			return 0
		}
	}
	dots := runLen(rest[indent:], '.')
	if dots < 5 {
		return 0
	}
	p := indent + dots
	if !bytes.HasPrefix(rest[p:], doubleNewline) {
		return 0
	}
	return p + 2
}

// matchDottedRule matches an indented dotted rule followed by a blank
// line, which ends the Unicode paragraph section.
func matchDottedRule(rest []byte) int {
	sp := text.LeadingSpaces(rest)
	if sp == 0 {
		return 0
	}
	dots := runLen(rest[sp:], '.')
	if dots < 3 {
		return 0
	}
	p := sp + dots
	if !bytes.HasPrefix(rest[p:], doubleNewline) {
		return 0
	}
	return p + 2
}

// matchUnderlined returns a matcher for a line of three or more characters
// underlined by three or more copies of underline.
func matchUnderlined(underline byte) scan.Matcher {
	return func(rest []byte) int {
		l := lineLen(rest)
		if l < 4 {
			return 0
		}
		u := matchRunLine(rest[l:], underline, 3)
		if u == 0 {
			return 0
		}
		return l + u
	}
}

// matchOrderedMarker matches a list line: optional spaces, digits, '.' or
// ')', a space, the rest of the line.
func matchOrderedMarker(rest []byte) int {
	i := text.LeadingSpaces(rest)
	d := 0
	for i+d < len(rest) && rest[i+d] >= '0' && rest[i+d] <= '9' {
		d++
	}
	if d == 0 {
		return 0
	}
	i += d
	if i >= len(rest) || (rest[i] != '.' && rest[i] != ')') {
		return 0
	}
	i++
	if i >= len(rest) || rest[i] != ' ' {
		return 0
	}
	l := lineLen(rest[i:])
	if l == 0 {
		return 0
	}
	return i + l
}

// matchBulletMarker matches a list line: optional spaces, "- ", the rest
// of the line.
func matchBulletMarker(rest []byte) int {
	i := text.LeadingSpaces(rest)
	if i+1 >= len(rest) || rest[i] != '-' || rest[i+1] != ' ' {
		return 0
	}
	l := lineLen(rest[i:])
	if l == 0 {
		return 0
	}
	return i + l
}

// matchIndentedLine matches a line starting with four or more spaces.
func matchIndentedLine(rest []byte) int {
	if text.LeadingSpaces(rest) < 4 {
		return 0
	}
	return lineLen(rest)
}

// matchQuoteBoundary matches a newline followed by an unindented (or at
// most three-space-indented) non-space byte: the lookahead that ends a
// block quote. The whole lexeme is pushed back.
func matchQuoteBoundary(rest []byte) int {
	if !hasNewline(rest) {
		return 0
	}
	i := 1
	for i < len(rest) && i <= 3 && rest[i] == ' ' {
		i++
	}
	if i < len(rest) && rest[i] != ' ' {
		return i + 1
	}
	return 0
}

// matchMakeAssign matches the opening of a Makefile example: an
// upper-case make-variable assignment line, a non-blank block, and a blank
// line.
func matchMakeAssign(rest []byte) int {
	if len(rest) == 0 || rest[0] < 'A' || rest[0] > 'Z' {
		return 0
	}
	i := 1
	for i < len(rest) && (rest[i] == '_' || (rest[i] >= 'A' && rest[i] <= 'Z') || (rest[i] >= '0' && rest[i] <= '9')) {
		i++
	}
	if !bytes.HasPrefix(rest[i:], []byte(" = ")) {
		return 0
	}
	l := nonblankLine(rest)
	if l == 0 {
		return 0
	}
	b := nonblankBlock(rest[l:])
	if b == 0 {
		return 0
	}
	p := l + b
	if p >= len(rest) || rest[p] != '\n' {
		return 0
	}
	return p + 1
}

// matchMakeRecipe matches a continuation of the Makefile example: a target
// line, a tab-indented recipe line, further non-blank lines, and a blank
// line.
func matchMakeRecipe(rest []byte) int {
	l := nonblankLine(rest)
	if l == 0 {
		return 0
	}
	if l >= len(rest) || rest[l] != '\t' {
		return 0
	}
	r := lineLen(rest[l:])
	if r < 3 {
		return 0
	}
	p := l + r
	b := nonblankBlock(rest[p:])
	if b == 0 {
		return 0
	}
	p += b
	if p >= len(rest) || rest[p] != '\n' {
		return 0
	}
	return p + 1
}

// matchTableStart matches a header line, a divider of two or more
// three-dash runs, and any non-blank lines that follow.
func matchTableStart(rest []byte) int {
	l := nonblankLine(rest)
	if l == 0 {
		return 0
	}
	d := matchTableDivider(rest[l:])
	if d == 0 {
		return 0
	}
	return l + d + nonblankBlock(rest[l+d:])
}

// matchTableDivider matches a line of two or more space-separated runs of
// three or more dashes.
func matchTableDivider(rest []byte) int {
	i := 0
	groups := 0
	for {
		p := i + text.LeadingSpaces(rest[i:])
		d := runLen(rest[p:], '-')
		if d < 3 {
			break
		}
		groups++
		i = p + d
	}
	if groups < 2 {
		return 0
	}
	i += text.LeadingSpaces(rest[i:])
	if i < len(rest) && rest[i] == '\n' {
		return i + 1
	}
	return 0
}

// matchTableRow matches a line with a column gap of three or more spaces,
// or a blank line.
func matchTableRow(rest []byte) int {
	if hasNewline(rest) {
		return 1
	}
	l := lineLen(rest)
	if l == 0 {
		return 0
	}
	if bytes.Contains(rest[:l-1], []byte("   ")) {
		return l
	}
	return 0
}

// matchNameLine matches a line of two or more capitalized words, the shape
// of one acknowledgements entry.
func matchNameLine(rest []byte) int {
	i := 0
	words := 0
	for {
		w := matchNameWord(rest[i:])
		if w == 0 {
			break
		}
		i += w
		words++
		if i < len(rest) && rest[i] == ' ' {
			i++
			continue
		}
		break
	}
	if words < 2 || i >= len(rest) || rest[i] != '\n' {
		return 0
	}
	return i + 1
}

func matchNameWord(rest []byte) int {
	if len(rest) == 0 || rest[0] < 'A' || rest[0] > 'Z' {
		return 0
	}
	i := 1
	for i < len(rest) {
		c := rest[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '\'' || c == '-' || c == '.' {
			i++
			continue
		}
		break
	}
	return i
}

// matchNameBlock matches a non-blank block containing a run of three or
// more name lines: an acknowledgements block, with any introduction lines
// attached to it.
func matchNameBlock(rest []byte) int {
	b := nonblankBlock(rest)
	if b == 0 {
		return 0
	}
	pos := 0
	run := 0
	for pos < b {
		if l := matchNameLine(rest[pos:]); l > 0 {
			run++
			if run >= 3 {
				return b
			}
			pos += l
			continue
		}
		run = 0
		pos += lineLen(rest[pos:])
	}
	return 0
}

// matchMacroDescription matches an all-caps identifier containing an
// underscore alone on a line, a blank line, a description block, and a
// blank line.
func matchMacroDescription(rest []byte) int {
	i := 0
	underscore := false
	for i < len(rest) {
		c := rest[i]
		if c == '_' {
			underscore = true
			i++
			continue
		}
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9' && i > 0) {
			i++
			continue
		}
		break
	}
	if i < 2 || !underscore || i >= len(rest) || rest[i] != '\n' {
		return 0
	}
	i++
	if !hasNewline(rest[i:]) {
		return 0
	}
	i++
	b := nonblankBlock(rest[i:])
	if b == 0 {
		return 0
	}
	i += b
	if i >= len(rest) || rest[i] != '\n' {
		return 0
	}
	return i + 1
}

// matchFilesList matches an optional introduction line followed by one or
// more "name.ext  - description" lines.
func matchFilesList(rest []byte) int {
	direct := matchFileLines(rest)
	withLead := 0
	if l := nonblankLine(rest); l > 0 {
		if f := matchFileLines(rest[l:]); f > 0 {
			withLead = l + f
		}
	}
	if withLead > direct {
		return withLead
	}
	return direct
}

func matchFileLines(rest []byte) int {
	n := 0
	for {
		l := matchFileLine(rest[n:])
		if l == 0 {
			return n
		}
		n += l
	}
}

func matchFileLine(rest []byte) int {
	i := 0
	for i < len(rest) && isWordByte(rest[i]) {
		i++
	}
	if i == 0 || i >= len(rest) || rest[i] != '.' {
		return 0
	}
	i++
	ext := 0
	for i < len(rest) && rest[i] >= 'a' && rest[i] <= 'z' {
		i++
		ext++
	}
	if ext == 0 {
		return 0
	}
	sp := text.LeadingSpaces(rest[i:])
	if sp < 2 {
		return 0
	}
	i += sp
	if !bytes.HasPrefix(rest[i:], []byte("- ")) {
		return 0
	}
	l := lineLen(rest[i:])
	if l < 3 {
		return 0
	}
	return i + l
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}

// matchParagraph is the catch-all: a line opening with anything that is
// not whitespace, a digit, or a dash, plus any non-empty lines following.
func matchParagraph(rest []byte) int {
	if len(rest) == 0 {
		return 0
	}
	c := rest[0]
	if c == ' ' || c == '\t' || c == '\n' || c == '-' || (c >= '0' && c <= '9') {
		return 0
	}
	n := lineLen(rest)
	if n == 0 {
		return 0
	}
	for {
		l := matchNonemptyLine(rest[n:])
		if l == 0 {
			return n
		}
		n += l
	}
}
