package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.BlurMsg:
		m.loseCapture()
		return m, nil
	case KitReloadedMsg:
		m.applyKit(msg)
		return m, m.waitForChange()
	case ReloadErrorMsg:
		m.err = msg.Err
		m.status = ""
		m.log.Error(msg.Err, "kit reload failed")
		return m, m.waitForChange()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Reset):
		m.sliders = m.resetEntries()
		m.status = "values reset"
		m.log.Info("slider values reset")
	}
	return m, nil
}

func (m Model) resetEntries() []*entry {
	entries := make([]*entry, 0, len(m.sliders))
	for _, e := range m.sliders {
		entries = append(entries, m.newEntry(e.spec))
	}
	return entries
}

func (m *Model) applyKit(msg KitReloadedMsg) {
	if msg.Kit == nil {
		return
	}
	m.sliders = m.buildEntries(msg.Kit, m.sliders)
	m.kit = msg.Kit
	m.err = nil
	m.status = fmt.Sprintf("reloaded %d sliders", len(m.sliders))
	m.log.With("sliders", len(m.sliders)).Info("kit reloaded")
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev := pointerEvent(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return
		}
		for _, e := range m.sliders {
			z, ok := m.locator.Locate(e.spec.ID)
			if !ok || !z.Contains(msg.X, msg.Y) {
				continue
			}
			target := e.engine.HitTest(ev.ClientX)
			if e.engine.PointerDown(ev, target) {
				m.status = ""
			}
			return
		}
	case tea.MouseActionMotion:
		if e := m.captor(); e != nil {
			e.engine.PointerMove(ev)
		}
	case tea.MouseActionRelease:
		if e := m.captor(); e != nil {
			e.engine.PointerUp(ev)
		}
	}
}

// loseCapture ends any drag when the terminal loses focus.
func (m *Model) loseCapture() {
	if e := m.captor(); e != nil {
		e.host.dropCapture(MousePointerID)
		e.engine.LostPointerCapture(MousePointerID)
	}
}

// captor returns the slider holding the mouse capture.
func (m Model) captor() *entry {
	for _, e := range m.sliders {
		if e.host.HasPointerCapture(MousePointerID) {
			return e
		}
	}
	return nil
}

// pointerEvent converts a terminal mouse message. The pointer sits at the
// center of the reported cell.
func pointerEvent(msg tea.MouseMsg) slider.PointerEvent {
	return slider.PointerEvent{
		ClientX:     float64(msg.X) + 0.5,
		ClientY:     float64(msg.Y) + 0.5,
		PointerID:   MousePointerID,
		Button:      buttonNumber(msg.Button),
		PointerType: slider.PointerMouse,
		IsPrimary:   true,
	}
}

func buttonNumber(b tea.MouseButton) int {
	switch b {
	case tea.MouseButtonLeft:
		return slider.ButtonPrimary
	case tea.MouseButtonMiddle:
		return 1
	case tea.MouseButtonRight:
		return 2
	case tea.MouseButtonBackward:
		return 3
	case tea.MouseButtonForward:
		return 4
	default:
		return -1
	}
}
