package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

// Slider draws a slider track one terminal cell per unit of width.
type Slider struct {
	BaseComponent
	layout     slider.Layout
	isRange    bool
	width      int
	activeLow  bool
	activeHigh bool
}

// NewSlider creates a slider view of layout over width cells.
func NewSlider(layout slider.Layout, isRange bool, width int) *Slider {
	return &Slider{
		BaseComponent: NewBaseComponent(),
		layout:        layout,
		isRange:       isRange,
		width:         width,
	}
}

// WithActive highlights the thumbs being dragged. In single mode only high
// is consulted.
func (s *Slider) WithActive(low, high bool) *Slider {
	s.activeLow, s.activeHigh = low, high
	return s
}

// WithSession highlights the thumbs moved by a drag session of mode.
func (s *Slider) WithSession(mode slider.Mode, dragging bool) *Slider {
	if !dragging {
		return s.WithActive(false, false)
	}
	switch mode {
	case slider.ModeRangeLow:
		return s.WithActive(true, false)
	case slider.ModeRangeHigh, slider.ModeSingle:
		return s.WithActive(false, true)
	default:
		return s.WithActive(true, true)
	}
}

// WithAppliers applies theme-based style modifiers to the whole track.
func (s *Slider) WithAppliers(appliers ...StyleFunc) *Slider {
	s.SetAppliers(appliers...)
	return s
}

// View renders the slider with the default theme.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the track, fill and thumbs.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	if s.width <= 0 {
		return ""
	}

	theme := ctx.Theme
	glyphs := theme.Glyphs
	trackStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(PaletteTrack))
	fillStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(PalettePrimary))
	thumbStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(PalettePrimary)).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(PaletteAccent)).Bold(true)

	cells := s.Cells()
	var b strings.Builder
	for _, c := range cells {
		switch c {
		case CellTrack:
			b.WriteString(trackStyle.Render(glyphs.Track))
		case CellFill:
			b.WriteString(fillStyle.Render(glyphs.Fill))
		case CellThumbLow:
			b.WriteString(s.thumb(glyphs, thumbStyle, activeStyle, s.activeLow))
		case CellThumbHigh:
			b.WriteString(s.thumb(glyphs, thumbStyle, activeStyle, s.activeHigh))
		case CellThumbPair:
			style := thumbStyle
			if s.activeLow || s.activeHigh {
				style = activeStyle
			}
			b.WriteString(style.Render(glyphs.ThumbPair))
		}
	}
	return s.ComputeStyle(theme).Render(b.String())
}

func (s *Slider) thumb(glyphs Glyphs, idle, active lipgloss.Style, isActive bool) string {
	if isActive {
		return active.Render(glyphs.ThumbActive)
	}
	return idle.Render(glyphs.Thumb)
}

// Cell is the role of one terminal cell of the track.
type Cell int

const (
	CellTrack Cell = iota
	CellFill
	CellThumbLow
	CellThumbHigh
	CellThumbPair
)

// Cells classifies every cell of the track. A cell is filled when its center
// lies inside the fill segment; thumbs are drawn over the cell holding their
// center.
func (s *Slider) Cells() []Cell {
	if s.width <= 0 {
		return nil
	}

	cells := make([]Cell, s.width)
	for i := range cells {
		center := (float64(i) + 0.5) * 100 / float64(s.width)
		if center >= s.layout.FillStart && center <= s.layout.FillEnd {
			cells[i] = CellFill
		}
	}

	high := CellAt(s.layout.ThumbEnd, s.width)
	if !s.isRange {
		cells[high] = CellThumbHigh
		return cells
	}

	low := CellAt(s.layout.ThumbStart, s.width)
	if low == high {
		cells[low] = CellThumbPair
		return cells
	}
	cells[low] = CellThumbLow
	cells[high] = CellThumbHigh
	return cells
}

// CellAt returns the index of the cell containing percent of a track width
// cells wide.
func CellAt(percent float64, width int) int {
	if width <= 0 {
		return 0
	}
	idx := int(math.Floor(percent / 100 * float64(width)))
	return max(0, min(width-1, idx))
}
