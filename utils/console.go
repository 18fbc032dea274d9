package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorLabel   = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Magenta
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray

	StyleLabel   = lipgloss.NewStyle().Foreground(ColorLabel).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Console prints the human-readable progress lines of a run
type Console struct {
	out io.Writer
}

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Field prints "Label: value"
func (c *Console) Field(label, value string) {
	fmt.Fprintf(c.out, "%s %s\n", StyleLabel.Render(label+":"), value)
}

// Success prints a highlighted completion line
func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintln(c.out, StyleSuccess.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a highlighted error line
func (c *Console) Failure(err error) {
	fmt.Fprintln(c.out, StyleError.Render("✘ Error: "+err.Error()))
}

// Note prints a dimmed informational line
func (c *Console) Note(format string, args ...interface{}) {
	fmt.Fprintln(c.out, StyleMuted.Render(fmt.Sprintf(format, args...)))
}
