// Package cli holds the output styling and logging setup shared by the
// command line tools.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#A40000")
	successColor = lipgloss.Color("#00AA00")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// KeyStyle renders the key of a key-value line.
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// ValueStyle renders the value of a key-value line.
	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	// ErrorStyle renders error prefixes.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// SuccessStyle renders success prefixes.
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)
)

// PrintHeader writes a section header.
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintln(w, HeaderStyle.Render(title))
}

// PrintKV writes a "key: value" line.
func PrintKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(fmt.Sprint(value)))
}

// PrintError writes an error message.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("Error:"), err)
}

// PrintSuccess writes a success message.
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// NewLogger returns a text logger on w, at debug level when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
