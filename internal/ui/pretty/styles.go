// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Dim          lipgloss.Style
	Bold         lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			SummaryTitle: plain,
			SummaryValue: plain,
			Success:      plain,
			Failure:      plain,
			Dim:          plain,
			Bold:         plain,
		}
	}
	return &Styles{
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:         lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled resolves a --color mode ("auto", "always", "never") against
// the output destination.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
