package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/manify/pkg/runner"
)

const (
	defaultDividerWidth = 40
	maxDividerWidth     = 72
)

// FormatSummary renders a short post-run report: where the aggregate page
// went and how many per-symbol pages were written.
func (s *Styles) FormatSummary(result *runner.Result) string {
	var b strings.Builder

	b.WriteString(s.SummaryTitle.Render("Generated manual pages"))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(divider()))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s %s\n",
		s.SummaryValue.Render("Aggregate page:"),
		s.Bold.Render(result.AggregatePath),
		s.Dim.Render(fmt.Sprintf("(%d bytes)", result.Stats.AggregateBytes)),
	)

	pageWord := "pages"
	if result.Stats.SymbolPages == 1 {
		pageWord = "page"
	}
	fmt.Fprintf(&b, "%s %s\n",
		s.SummaryValue.Render("Symbol pages:"),
		s.Success.Render(fmt.Sprintf("%d %s", result.Stats.SymbolPages, pageWord)),
	)

	if len(result.Symbols) > 0 {
		fmt.Fprintf(&b, "%s %s\n",
			s.SummaryValue.Render("Symbols:"),
			s.Dim.Render(strings.Join(result.Symbols, ", ")),
		)
	}

	return b.String()
}

// divider sizes the rule to the terminal, falling back to a fixed width
// when the output is not a terminal.
func divider() string {
	width := defaultDividerWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
		if width > maxDividerWidth {
			width = maxDividerWidth
		}
	}
	return strings.Repeat("─", width)
}
