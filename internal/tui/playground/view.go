package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vkit/internal/ui/components"
)

// View renders every slider with its readout, then status and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme).WithParentWidth(m.width)
	trackWidth := m.trackWidth()
	labelWidth := m.labelWidth()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n")

	for _, e := range m.sliders {
		session, dragging := e.engine.Session()
		readout := components.NewReadout(e.spec.DisplayLabel(), e.engine.State()).
			WithLabelWidth(labelWidth).
			WithActive(dragging)
		track := components.NewSlider(e.engine.Layout(), e.spec.IsRange, trackWidth).
			WithSession(session.Mode, dragging)

		b.WriteString("\n")
		b.WriteString(readout.ViewWithContext(ctx))
		b.WriteString("\n")
		b.WriteString(trackIndent)
		b.WriteString(m.locator.Mark(e.spec.ID, track.ViewWithContext(ctx)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(statusStyle.Render(components.ErrorText(m.err.Error()).ViewWithContext(ctx)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(components.MutedText(m.status).ViewWithContext(ctx)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return m.locator.Scan(b.String())
}

func (m Model) title() string {
	if m.kit != nil && m.kit.Name != "" {
		return m.kit.Name
	}
	return "vkit playground"
}

// trackWidth is the kit's track width, narrowed to fit the window.
func (m Model) trackWidth() int {
	width := m.kit.EffectiveTrackWidth()
	if m.width > 0 {
		width = min(width, m.width-lipgloss.Width(trackIndent)-1)
	}
	return max(width, 1)
}

func (m Model) labelWidth() int {
	width := 0
	for _, e := range m.sliders {
		width = max(width, lipgloss.Width(e.spec.DisplayLabel()))
	}
	return width
}
