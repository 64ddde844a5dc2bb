package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

// DefaultPrecision is the number of decimals a Readout shows.
const DefaultPrecision = 2

// Readout renders a slider label followed by its value or range.
type Readout struct {
	BaseComponent
	label      string
	state      slider.State
	precision  int
	labelWidth int
	active     bool
}

// NewReadout creates a readout for state.
func NewReadout(label string, state slider.State) *Readout {
	return &Readout{
		BaseComponent: NewBaseComponent(),
		label:         label,
		state:         state,
		precision:     DefaultPrecision,
	}
}

// WithPrecision sets the maximum number of decimals; negative shows the
// shortest exact form.
func (r *Readout) WithPrecision(p int) *Readout {
	r.precision = p
	return r
}

// WithLabelWidth pads the label to a fixed width so readouts align.
func (r *Readout) WithLabelWidth(cells int) *Readout {
	r.labelWidth = cells
	return r
}

// WithActive highlights the value while it is being dragged.
func (r *Readout) WithActive(active bool) *Readout {
	r.active = active
	return r
}

// WithAppliers applies theme-based style modifiers to the whole readout.
func (r *Readout) WithAppliers(appliers ...StyleFunc) *Readout {
	r.SetAppliers(appliers...)
	return r
}

// Value returns the formatted value part, e.g. "40" or "20 - 35".
func (r *Readout) Value() string {
	if r.state.IsRange {
		return FormatValue(r.state.Range.Low, r.precision) + " - " + FormatValue(r.state.Range.High, r.precision)
	}
	return FormatValue(r.state.Value, r.precision)
}

// View renders the readout with the default theme.
func (r *Readout) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label and value.
func (r *Readout) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(PaletteText)).Bold(true)
	if r.labelWidth > 0 {
		labelStyle = labelStyle.Width(r.labelWidth)
	}
	valueSlot := PalettePrimary
	if r.active {
		valueSlot = PaletteAccent
	}
	valueStyle := lipgloss.NewStyle().Foreground(theme.Palette.Color(valueSlot))

	line := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), " ", valueStyle.Render(r.Value()))
	return r.ComputeStyle(theme).Render(line)
}

// FormatValue formats v with at most precision decimals, trimming trailing
// zeros.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
