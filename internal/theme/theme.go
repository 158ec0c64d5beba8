package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours the menu engine draws with. Entries are declared
// as Lip Gloss colours so the terminal presenter and the framebuffer agree.
type Palette struct {
	Background     lipgloss.Color
	Text           lipgloss.Color
	Accent         lipgloss.Color
	Highlight      lipgloss.Color
	Disabled       lipgloss.Color
	Rule           lipgloss.Color
	Button         lipgloss.Color
	ButtonSelected lipgloss.Color
	ProgressTrack  lipgloss.Color
	ProgressFill   lipgloss.Color
	Overlay        lipgloss.Color
}

var defaultPalette = Palette{
	Background:     lipgloss.Color("#101c3c"),
	Text:           lipgloss.Color("#ffffff"),
	Accent:         lipgloss.Color("#c8d2ff"),
	Highlight:      lipgloss.Color("#ffd23c"),
	Disabled:       lipgloss.Color("#808080"),
	Rule:           lipgloss.Color("#5a6ea0"),
	Button:         lipgloss.Color("#2a3f78"),
	ButtonSelected: lipgloss.Color("#3c5ab4"),
	ProgressTrack:  lipgloss.Color("#283250"),
	ProgressFill:   lipgloss.Color("#32b4ff"),
	Overlay:        lipgloss.Color("#000000"),
}

// DefaultPalette returns the standard installer colours.
func DefaultPalette() Palette {
	return defaultPalette
}

// NRGBA converts a hex palette entry for drawing. The conversion ignores the
// terminal colour profile, so frames look the same under any renderer.
// Malformed entries become opaque black.
func NRGBA(c lipgloss.Color) color.NRGBA {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Styles describes the Lip Gloss styles of the terminal presenter.
type Styles struct {
	Status      *lipgloss.Style
	StatusError *lipgloss.Style
	Keys        *lipgloss.Style
	Frame       *lipgloss.Style
}

var defaultStyles = Styles{
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Keys: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
