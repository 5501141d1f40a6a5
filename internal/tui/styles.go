package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rupertdev/houston/pkg/houston"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginLeft(4)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Symbols for visual feedback.
const (
	SymbolSelected   = "●"
	SymbolUnselected = "○"
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolWarning    = "!"
	SymbolInfo       = "i"
	SymbolBullet     = "•"
)

// SeverityStyle returns the style and symbol used for a diagnostic severity.
func SeverityStyle(s houston.Severity) (lipgloss.Style, string) {
	switch s {
	case houston.SeverityError:
		return ErrorStyle, SymbolCross
	case houston.SeverityWarn:
		return WarningStyle, SymbolWarning
	default:
		return InfoStyle, SymbolInfo
	}
}

// RenderDiagnostic formats a diagnostic as a single styled line, followed by
// its indented body when present.
func RenderDiagnostic(d houston.Diagnostic) string {
	style, symbol := SeverityStyle(d.Severity)

	var b strings.Builder
	b.WriteString(style.Render(symbol + " " + d.Severity.String()))
	b.WriteString(" ")
	b.WriteString(d.Check)
	if d.Field != "" {
		b.WriteString(" ")
		b.WriteString(FieldStyle.Render("[" + d.Field + "]"))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)

	if d.Body != "" {
		for _, line := range strings.Split(strings.TrimRight(d.Body, "\n"), "\n") {
			b.WriteString("\n    ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// RenderReport formats every diagnostic of a report followed by a summary line.
func RenderReport(r *houston.Report) string {
	var b strings.Builder
	for _, d := range r.Diagnostics {
		b.WriteString(RenderDiagnostic(d))
		b.WriteString("\n")
	}

	errorsFound := r.Count(houston.SeverityError)
	warnings := r.Count(houston.SeverityWarn)
	switch {
	case errorsFound > 0:
		b.WriteString(ErrorStyle.Render(SymbolCross + " " + r.Path + ": " + plural(errorsFound, "error") + ", " + plural(warnings, "warning")))
	case warnings > 0:
		b.WriteString(WarningStyle.Render(SymbolWarning + " " + r.Path + ": " + plural(warnings, "warning")))
	default:
		b.WriteString(SuccessStyle.Render(SymbolCheck + " " + r.Path + ": ok"))
	}
	b.WriteString("\n")
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
