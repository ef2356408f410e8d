// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Error, Header, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI 256 palette entries.
const (
	colorError = "1"
	colorInfo  = "6"
	colorMuted = "245"
)

var (
	enabled bool

	errorStyle  lipgloss.Style
	infoStyle   lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
)

// Init turns styling on or off. NO_COLOR and SWCLI_NO_COLOR, when set to any
// non-empty value, force it off.
//
// Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SWCLI_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles()
	}
}

func initStyles() {
	// Render ANSI256 even when lipgloss cannot detect a terminal; the caller
	// already decided colour is wanted.
	lipgloss.SetColorProfile(termenv.ANSI256)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorInfo))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	headerStyle = lipgloss.NewStyle().Bold(true)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles flag names and commands.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles section headers such as "Usage:".
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
