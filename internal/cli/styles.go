// Package cli provides styled, verbosity-gated terminal output using lipgloss.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (shielded gold).
	PrimaryColor = lipgloss.Color("#F4B728")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray
)

// Icons.
const (
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
)

// Styles is the set of styles bound to one output writer. Colors are
// dropped when the writer is not a terminal.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles that render for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Bold(true).Foreground(PrimaryColor),
		Label:   r.NewStyle().Foreground(SubtleColor),
		Warning: r.NewStyle().Foreground(WarningColor),
		Error:   r.NewStyle().Foreground(ErrorColor),
	}
}

// FormatError formats an error message with icon.
func (s Styles) FormatError(message string) string {
	return s.Error.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func (s Styles) FormatWarning(message string) string {
	return s.Warning.Render(WarningIcon + " " + message)
}
