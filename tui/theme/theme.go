// Package theme centralizes the color palette and styles shared by the
// servr TUI and CLI output.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// values adapt to light and dark backgrounds.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// DefaultColors is the palette used by DefaultTheme.
var DefaultColors = Colors{
	Green:              lipgloss.AdaptiveColor{Light: "#2aa198", Dark: "#5af78e"},
	Yellow:             lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#f3f99d"},
	Red:                lipgloss.AdaptiveColor{Light: "#dc322f", Dark: "#ff5c57"},
	Cyan:               lipgloss.AdaptiveColor{Light: "#268bd2", Dark: "#9aedfe"},
	Blue:               lipgloss.AdaptiveColor{Light: "#268bd2", Dark: "#57c7ff"},
	Violet:             lipgloss.AdaptiveColor{Light: "#6c71c4", Dark: "#bd93f9"},
	LightText:          lipgloss.AdaptiveColor{Light: "#073642", Dark: "#eff0eb"},
	MutedText:          lipgloss.AdaptiveColor{Light: "#93a1a1", Dark: "#606580"},
	Border:             lipgloss.AdaptiveColor{Light: "#93a1a1", Dark: "#3a3f58"},
	SelectedBackground: lipgloss.AdaptiveColor{Light: "#eee8d5", Dark: "#2a2f45"},
}

// Theme holds the lipgloss styles used across the application.
type Theme struct {
	Colors Colors

	// Chrome
	Header lipgloss.Style
	Title  lipgloss.Style
	Border lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style

	// Panes
	FocusedBorder lipgloss.Style
	BlurredBorder lipgloss.Style
}

// DefaultTheme is the theme used by all servr surfaces.
var DefaultTheme = New(DefaultColors)

// New builds a Theme from a palette.
func New(c Colors) *Theme {
	return &Theme{
		Colors: c,

		Header: lipgloss.NewStyle().Bold(true).Foreground(c.Blue),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(c.LightText),
		Border: lipgloss.NewStyle().Foreground(c.Border),

		Success: lipgloss.NewStyle().Foreground(c.Green),
		Error:   lipgloss.NewStyle().Foreground(c.Red),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow),
		Info:    lipgloss.NewStyle().Foreground(c.Cyan),

		Bold:     lipgloss.NewStyle().Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(c.LightText),
		Muted:    lipgloss.NewStyle().Foreground(c.MutedText),
		Accent:   lipgloss.NewStyle().Foreground(c.Violet),
		Selected: lipgloss.NewStyle().Foreground(c.LightText).Background(c.SelectedBackground).Bold(true),

		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Blue),
		BlurredBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border),
	}
}

// useNerdFont reports whether nerd-font glyphs should be rendered.
// SERVR_ASCII=1 forces the plain-glyph fallback; dumb terminals get it too.
func useNerdFont() bool {
	if os.Getenv("SERVR_ASCII") == "1" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
