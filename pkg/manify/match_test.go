package manify

import "testing"

func TestMatchBlankLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"\n", 1},
		{"   \n", 4},
		{"\t \nrest", 3},
		{"  x\n", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := matchBlankLine([]byte(tt.input)); got != tt.want {
			t.Errorf("matchBlankLine(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestNonblankBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"one\ntwo\n\nthree\n", 8},
		{"one\n", 4},
		{"\none\n", 0},
		{"   \n", 0},
		{"no newline", 0},
	}

	for _, tt := range tests {
		if got := nonblankBlock([]byte(tt.input)); got != tt.want {
			t.Errorf("nonblankBlock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchColonParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"For example:\n\nrest", 14},
		{"two lines\nending so:\n\n", 22},
		{"no colon.\n\n", 0},
		{"no blank after:\nrest\n", 0},
	}

	for _, tt := range tests {
		if got := matchColonParagraph([]byte(tt.input)); got != tt.want {
			t.Errorf("matchColonParagraph(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchDottedDivider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"    .....\n\n", 11},
		{"    .........\n\nrest", 15},
		{"   .....\n\n", 0},   // three spaces only
		{"    ....\n\n", 0},   // four dots only
		{"    .....\nx\n", 0}, // no blank line
	}

	for _, tt := range tests {
		if got := matchDottedDivider([]byte(tt.input)); got != tt.want {
			t.Errorf("matchDottedDivider(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchUnderlined(t *testing.T) {
	t.Parallel()

	dash := matchUnderlined('-')
	dot := matchUnderlined('.')

	if got := dash([]byte("Introduction\n------------\n")); got != 26 {
		t.Errorf("dash heading = %d, want 26", got)
	}
	if got := dot([]byte("Sub topic\n.........\n")); got != 20 {
		t.Errorf("dot heading = %d, want 20", got)
	}
	if got := dash([]byte("Title\n--\n")); got != 0 {
		t.Error("two-dash underline should not match")
	}
	if got := dash([]byte("ab\n---\n")); got != 0 {
		t.Error("short title line should not match")
	}
}

func TestMatchOrderedMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"1. first item\n", 14},
		{"12) item\n", 9},
		{"  3. indented item\n", 19},
		{"1.no space\n", 0},
		{"x. not a digit\n", 0},
		{"1 no marker\n", 0},
	}

	for _, tt := range tests {
		if got := matchOrderedMarker([]byte(tt.input)); got != tt.want {
			t.Errorf("matchOrderedMarker(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchBulletMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"- item\n", 7},
		{"  - indented item\n", 18},
		{"-no space\n", 0},
		{"not a bullet\n", 0},
	}

	for _, tt := range tests {
		if got := matchBulletMarker([]byte(tt.input)); got != tt.want {
			t.Errorf("matchBulletMarker(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchQuoteBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"\nunindented", 2},
		{"\n   three spaces", 5},
		{"\n    four spaces", 0},
		{"\n\nstill blank", 2}, // a second newline is a valid boundary byte
		{"not a newline", 0},
	}

	for _, tt := range tests {
		if got := matchQuoteBoundary([]byte(tt.input)); got != tt.want {
			t.Errorf("matchQuoteBoundary(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchMakeAssign(t *testing.T) {
	t.Parallel()

	input := "BSTRDIR = ../bstrlib\nCFLAGS = -O2\n\nrest"
	if got := matchMakeAssign([]byte(input)); got != 35 {
		t.Errorf("matchMakeAssign() = %d, want 35", got)
	}

	if got := matchMakeAssign([]byte("lower = case\n\n")); got != 0 {
		t.Error("lower-case variable should not match")
	}
	if got := matchMakeAssign([]byte("BSTRDIR=nospaces\n\n")); got != 0 {
		t.Error("assignment without spaces should not match")
	}
}

func TestMatchMakeRecipe(t *testing.T) {
	t.Parallel()

	input := "all: prog\n\tcc -o prog main.c\nclean:\n\nrest"
	if got := matchMakeRecipe([]byte(input)); got != 37 {
		t.Errorf("matchMakeRecipe() = %d, want 37", got)
	}

	if got := matchMakeRecipe([]byte("all: prog\nno tab here\n\n")); got != 0 {
		t.Error("recipe without tab line should not match")
	}
}

func TestMatchTableStart(t *testing.T) {
	t.Parallel()

	input := "Value   Meaning\n-----   -------\n0       Ok\n\nrest"
	if got := matchTableStart([]byte(input)); got != 43 {
		t.Errorf("matchTableStart() = %d, want 43", got)
	}

	if got := matchTableStart([]byte("Header\n------\nrow\n")); got != 0 {
		t.Error("single-column divider should not match")
	}
}

func TestMatchTableRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"\nrest", 1},
		{"left   right\n", 13},
		{"no gap here\n", 0},
	}

	for _, tt := range tests {
		if got := matchTableRow([]byte(tt.input)); got != tt.want {
			t.Errorf("matchTableRow(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMatchNameBlock(t *testing.T) {
	t.Parallel()

	block := "Contributors:\nBjorn Augestad\nClint Olsen\nDarryl Bleau\n\nrest"
	if got := matchNameBlock([]byte(block)); got != 54 {
		t.Errorf("matchNameBlock() = %d, want 54", got)
	}

	two := "Bjorn Augestad\nClint Olsen\n\n"
	if got := matchNameBlock([]byte(two)); got != 0 {
		t.Error("two name lines should not match")
	}

	if got := matchNameBlock([]byte("plain paragraph text\nmore text\n\n")); got != 0 {
		t.Error("prose should not match")
	}
}

func TestMatchMacroDescription(t *testing.T) {
	t.Parallel()

	input := "BSTRLIB_NOVSNP\n\nThis macro disables those functions.\n\nrest"
	if got := matchMacroDescription([]byte(input)); got != 54 {
		t.Errorf("matchMacroDescription() = %d, want 54", got)
	}

	if got := matchMacroDescription([]byte("NOUNDERSCORE\n\ndesc\n\n")); got != 0 {
		t.Error("identifier without underscore should not match")
	}
	if got := matchMacroDescription([]byte("HAS_SCORE\ndesc right away\n\n")); got != 0 {
		t.Error("missing blank after identifier should not match")
	}
}

func TestMatchFilesList(t *testing.T) {
	t.Parallel()

	direct := "bstrlib.c   - The C file\nbstrlib.h   - The header\n\n"
	if got := matchFilesList([]byte(direct)); got != 50 {
		t.Errorf("matchFilesList() = %d, want 50", got)
	}

	withLead := "The files are:\nbstrlib.c   - The C file\n\n"
	if got := matchFilesList([]byte(withLead)); got != 40 {
		t.Errorf("matchFilesList() with lead = %d, want 40", got)
	}

	if got := matchFilesList([]byte("bstrlib.c - one space\n")); got != 0 {
		t.Error("single space before dash should not match")
	}
}

func TestMatchParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"Plain text line.\nsecond line\n\nrest", 29},
		{"One line.\n", 10},
		{" indented\n", 0},
		{"1 digit start\n", 0},
		{"- dash start\n", 0},
		{"\n", 0},
	}

	for _, tt := range tests {
		if got := matchParagraph([]byte(tt.input)); got != tt.want {
			t.Errorf("matchParagraph(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStripExtern(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		got := stripExtern([]byte("extern bstring bfromcstr (const char * str);\n"))
		want := "bstring bfromcstr (const char * str);\n"
		if string(got) != want {
			t.Errorf("stripExtern() = %q, want %q", got, want)
		}
	})

	t.Run("realigns continuation", func(t *testing.T) {
		t.Parallel()

		in := "extern int bstrcmp (const bstring b0,\n                    const bstring b1);\n"
		want := "int bstrcmp (const bstring b0,\n             const bstring b1);\n"
		got := stripExtern([]byte(in))
		if string(got) != want {
			t.Errorf("stripExtern() = %q, want %q", got, want)
		}
	})

	t.Run("no qualifier", func(t *testing.T) {
		t.Parallel()

		in := "int plain (void);\n"
		got := stripExtern([]byte(in))
		if string(got) != in {
			t.Errorf("stripExtern() = %q, want %q", got, in)
		}
	})
}
