package playground

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

type fixedLocator map[string]TrackZone

func (l fixedLocator) Mark(_ string, view string) string { return view }

func (l fixedLocator) Scan(view string) string { return view }

func (l fixedLocator) Locate(id string) (TrackZone, bool) {
	z, ok := l[id]
	return z, ok
}

func f(v float64) *float64 { return &v }

// volumeSpec maps one cell to one unit on a 20 cell track: cell c is value c.
func volumeSpec() config.SliderSpec {
	return config.SliderSpec{ID: "volume", Label: "Volume", Min: f(0), Max: f(19), ThumbSize: f(1), UnitPx: f(1)}
}

func priceSpec() config.SliderSpec {
	return config.SliderSpec{ID: "price", IsRange: true, Min: f(0), Max: f(18), ThumbSize: f(1), UnitPx: f(1), Range: []float64{4, 12}}
}

func newTestModel(specs ...config.SliderSpec) Model {
	locator := fixedLocator{
		"volume": {Left: 2, Right: 21, Top: 3, Bottom: 3},
		"price":  {Left: 2, Right: 21, Top: 6, Bottom: 6},
	}
	kit := &config.Kit{Name: "test kit", TrackWidth: 20, Sliders: specs}
	return NewModel(kit, WithLocator(locator))
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func engine(t *testing.T, m Model, id string) *slider.Engine {
	t.Helper()
	e, ok := m.Engine(id)
	require.True(t, ok)
	return e
}

func TestMouseDragMovesValue(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 12, 3))

	e := engine(t, m, "volume")
	require.True(t, e.Dragging())
	require.Equal(t, 10.0, e.Value())

	m = send(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 15, 3))
	require.Equal(t, 13.0, e.Value())

	m = send(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 15, 3))
	require.False(t, e.Dragging())
	require.Equal(t, 2, m.Commits("volume"))

	m = send(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, 4, 3))
	require.Equal(t, 13.0, e.Value())
}

func TestCaptureFollowsPointerOffTrack(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 3),
		mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 100, 40),
	)
	require.Equal(t, 19.0, engine(t, m, "volume").Value())
}

func TestPressOutsideTracksAndSecondaryButtonsAreIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 12, 0),
		mouse(tea.MouseActionPress, tea.MouseButtonRight, 12, 3),
		mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 12, 3),
	)

	e := engine(t, m, "volume")
	require.False(t, e.Dragging())
	require.Equal(t, 0.0, e.Value())
}

func TestRangeTrackClickMovesNearestThumb(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec(), priceSpec())
	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 19, 6))

	e := engine(t, m, "price")
	session, ok := e.Session()
	require.True(t, ok)
	assert.Equal(t, slider.ModeRangeHigh, session.Mode)
	assert.Equal(t, slider.Range{Low: 4, High: 16}, e.Range())
	assert.False(t, engine(t, m, "volume").Dragging())
}

func TestBlurEndsDrag(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 12, 3), tea.BlurMsg{})

	require.False(t, engine(t, m, "volume").Dragging())
	require.Nil(t, m.captor())
}

func TestResetRestoresConfiguredValues(t *testing.T) {
	t.Parallel()

	spec := volumeSpec()
	spec.Value = f(5)
	m := newTestModel(spec)
	m = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 12, 3),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}},
	)

	e := engine(t, m, "volume")
	require.Equal(t, 5.0, e.Value())
	require.False(t, e.Dragging())
	require.Zero(t, m.Commits("volume"))
	require.Contains(t, m.View(), "values reset")
}

func TestKitReloadRenormalizes(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m,
		mouse(tea.MouseActionPress, tea.MouseButtonLeft, 12, 3),
		mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 15, 3),
		mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 15, 3),
	)
	before := engine(t, m, "volume")

	narrowed := volumeSpec()
	narrowed.Max = f(10)
	kit := &config.Kit{Name: "reloaded", Sliders: []config.SliderSpec{narrowed, priceSpec()}}
	m = send(t, m, KitReloadedMsg{Kit: kit})

	after := engine(t, m, "volume")
	require.Same(t, before, after)
	require.Equal(t, 10.0, after.Value())
	require.Equal(t, slider.Range{Low: 4, High: 12}, engine(t, m, "price").Range())
	require.Same(t, kit, m.Kit())
	require.Contains(t, m.View(), "reloaded 2 sliders")
}

func TestReloadErrorIsShown(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())
	m = send(t, m, ReloadErrorMsg{Err: errors.New("parse error: kit.yaml:3: bad")})

	require.Error(t, m.Err())
	require.Contains(t, m.View(), "kit.yaml:3: bad")

	m = send(t, m, KitReloadedMsg{Kit: &config.Kit{Sliders: []config.SliderSpec{volumeSpec()}}})
	require.NoError(t, m.Err())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(volumeSpec())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	require.Nil(t, cmd)
	require.True(t, m.showHelp)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}

func TestReloadCommandReadsChanges(t *testing.T) {
	t.Parallel()

	changes := make(chan struct{}, 1)
	kit := &config.Kit{Sliders: []config.SliderSpec{volumeSpec()}}
	m := NewModel(kit, WithLocator(fixedLocator{}), WithReload(changes, func() (*config.Kit, error) {
		return kit, nil
	}))

	changes <- struct{}{}
	cmd := m.Init()
	require.NotNil(t, cmd)
	require.Equal(t, KitReloadedMsg{Kit: kit}, cmd())

	close(changes)
	require.Nil(t, m.Init()())
}

func TestInitWithoutReload(t *testing.T) {
	t.Parallel()

	require.Nil(t, newTestModel(volumeSpec()).Init())
}
