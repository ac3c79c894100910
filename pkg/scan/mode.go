package scan

// Mode is the scanner's current block-type context. Exactly one mode is
// active at a time; it determines which rules are eligible to match.
type Mode uint8

const (
	// ModeDefault is the top-level context in which structural blocks are
	// recognized.
	ModeDefault Mode = iota
	// ModeOrderedList accumulates a numbered list item.
	ModeOrderedList
	// ModeUnorderedList accumulates a bulleted list item.
	ModeUnorderedList
	// ModeBlockQuote accumulates an indented block.
	ModeBlockQuote
	// ModeFuncHeader expects a function prototype block next.
	ModeFuncHeader
	// ModeFuncBody collects one function's description paragraphs.
	ModeFuncBody
	// ModeFuncExample treats exactly the next block as a code example
	// inside a function description.
	ModeFuncExample
	// ModeUniPars reformats indented text as ordinary paragraphs.
	ModeUniPars
	// ModeMakefile accumulates a Makefile example.
	ModeMakefile
	// ModeTable accumulates a column-aligned table.
	ModeTable

	modeCount

	// ModeSame, used as a rule's Next mode, keeps the current mode.
	ModeSame Mode = 0xFF
)

var modeNames = [modeCount]string{
	"default",
	"ordered-list",
	"unordered-list",
	"block-quote",
	"function-header",
	"function-body",
	"function-example",
	"unicode-paragraphs",
	"makefile-example",
	"table",
}

func (m Mode) String() string {
	if m == ModeSame {
		return "same"
	}
	if m >= modeCount {
		return "invalid"
	}
	return modeNames[m]
}

// ModeSet is a bit set of modes in which a rule is eligible.
type ModeSet uint16

// In builds a ModeSet from the given modes.
func In(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s |= 1 << m
	}
	return s
}

// Has reports whether m is in the set.
func (s ModeSet) Has(m Mode) bool {
	return s&(1<<m) != 0
}
