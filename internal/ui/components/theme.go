package components

import (
	"github.com/charmbracelet/lipgloss"
)

// PaletteSlot names a semantic colour of the theme.
type PaletteSlot int

const (
	PaletteText PaletteSlot = iota
	PaletteMuted
	PalettePrimary
	PaletteAccent
	PaletteTrack
	PaletteError
)

// Palette holds the adaptive colours components draw with.
type Palette struct {
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Track   lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
}

// Color returns the colour assigned to slot.
func (p Palette) Color(slot PaletteSlot) lipgloss.AdaptiveColor {
	switch slot {
	case PaletteMuted:
		return p.Muted
	case PalettePrimary:
		return p.Primary
	case PaletteAccent:
		return p.Accent
	case PaletteTrack:
		return p.Track
	case PaletteError:
		return p.Error
	default:
		return p.Text
	}
}

// Glyphs are the cell characters a slider track is drawn with.
type Glyphs struct {
	Track       string
	Fill        string
	Thumb       string
	ThumbActive string
	// ThumbPair is drawn where both range thumbs share a cell.
	ThumbPair string
}

// Theme is an immutable set of colours and glyphs.
type Theme struct {
	Name    string
	Palette Palette
	Glyphs  Glyphs
}

// DefaultTheme returns the box-drawing theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: Palette{
			Text:    lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#E2E8F0"},
			Muted:   lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"},
			Primary: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
			Accent:  lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#C084FC"},
			Track:   lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#475569"},
			Error:   lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
		},
		Glyphs: Glyphs{
			Track:       "─",
			Fill:        "━",
			Thumb:       "●",
			ThumbActive: "◉",
			ThumbPair:   "◆",
		},
	}
}

// ASCIITheme returns a theme restricted to 7-bit glyphs.
func ASCIITheme() Theme {
	t := DefaultTheme()
	t.Name = "ascii"
	t.Glyphs = Glyphs{
		Track:       "-",
		Fill:        "=",
		Thumb:       "o",
		ThumbActive: "O",
		ThumbPair:   "8",
	}
	return t
}

// ThemeByName resolves a theme name, falling back to the default theme.
func ThemeByName(name string) Theme {
	if name == "ascii" {
		return ASCIITheme()
	}
	return DefaultTheme()
}

// Foreground sets the text colour from a palette slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Foreground(theme.Palette.Color(slot))
	}
}

// Bold renders text in bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}

// Faint renders text dimmed.
func Faint() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Faint(true)
	}
}

// Width fixes the rendered width in cells.
func Width(cells int) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Width(cells)
	}
}
