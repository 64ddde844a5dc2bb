package playground

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/logger"
	"github.com/alexisbeaulieu97/vkit/internal/slider"
	"github.com/alexisbeaulieu97/vkit/internal/ui/components"
)

// MousePointerID is the pointer id of the terminal mouse. Terminals report a
// single pointer.
const MousePointerID = 1

// KitReloadedMsg carries a freshly parsed kit.
type KitReloadedMsg struct {
	Kit *config.Kit
}

// ReloadErrorMsg reports a kit that failed to reload.
type ReloadErrorMsg struct {
	Err error
}

// Loader re-reads the kit after the watched file changed.
type Loader func() (*config.Kit, error)

// Option customises a Model.
type Option func(*Model)

// WithLogger attaches a logger for host and engine entries.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithTheme selects the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithLocator replaces the bubblezone locator.
func WithLocator(l Locator) Option {
	return func(m *Model) {
		m.locator = l
	}
}

// WithReload re-applies the kit returned by load after every value received
// on changes.
func WithReload(changes <-chan struct{}, load Loader) Option {
	return func(m *Model) {
		m.changes = changes
		m.load = load
	}
}

type entry struct {
	spec    config.SliderSpec
	engine  *slider.Engine
	host    *trackHost
	commits int
}

// Model is the Bubbletea state of the slider playground: one engine per
// configured slider, each hosted on a terminal track.
type Model struct {
	kit     *config.Kit
	sliders []*entry
	locator Locator
	theme   components.Theme
	keys    keyMap
	help    help.Model
	log     *logger.Logger

	changes <-chan struct{}
	load    Loader

	width    int
	showHelp bool
	status   string
	err      error
	quitting bool
}

// NewModel builds a playground for kit.
func NewModel(kit *config.Kit, opts ...Option) Model {
	m := Model{
		kit:   kit,
		theme: components.DefaultTheme(),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.locator == nil {
		m.locator = NewZoneLocator()
	}
	m.sliders = m.buildEntries(kit, nil)
	return m
}

// Init starts waiting for kit changes when reloading is enabled.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Kit returns the active kit.
func (m Model) Kit() *config.Kit {
	return m.kit
}

// Engine returns the engine of the slider with id.
func (m Model) Engine(id string) (*slider.Engine, bool) {
	if e := m.entry(id); e != nil {
		return e.engine, true
	}
	return nil, false
}

// Commits returns how many state changes the slider with id has committed.
func (m Model) Commits(id string) int {
	if e := m.entry(id); e != nil {
		return e.commits
	}
	return 0
}

// Err returns the last reload error, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) entry(id string) *entry {
	for _, e := range m.sliders {
		if e.spec.ID == id {
			return e
		}
	}
	return nil
}

// buildEntries creates engines for every slider of kit. Sliders present in
// previous keep their engine and state; their configuration is replaced.
func (m Model) buildEntries(kit *config.Kit, previous []*entry) []*entry {
	if kit == nil {
		return nil
	}

	byID := make(map[string]*entry, len(previous))
	for _, e := range previous {
		byID[e.spec.ID] = e
	}

	entries := make([]*entry, 0, len(kit.Sliders))
	for _, spec := range kit.Sliders {
		if e, ok := byID[spec.ID]; ok {
			e.spec = spec
			e.engine.SetConfig(spec.SliderConfig())
			entries = append(entries, e)
			continue
		}
		entries = append(entries, m.newEntry(spec))
	}
	return entries
}

func (m Model) newEntry(spec config.SliderSpec) *entry {
	e := &entry{spec: spec, host: newTrackHost(m.locator, spec.ID)}
	opts := append(spec.InitialOptions(),
		slider.WithLogger(m.log.With("slider", spec.ID)),
		slider.WithOnChange(func(slider.State) { e.commits++ }),
	)
	e.engine = slider.New(spec.SliderConfig(), e.host, opts...)
	return e
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil || m.load == nil {
		return nil
	}
	changes, load := m.changes, m.load
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		kit, err := load()
		if err != nil {
			return ReloadErrorMsg{Err: err}
		}
		return KitReloadedMsg{Kit: kit}
	}
}
