package playground

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

// TrackZone is the cell rectangle a track was last drawn in. Bounds are
// inclusive.
type TrackZone struct {
	Left, Right int
	Top, Bottom int
}

// Contains reports whether the cell (x, y) lies inside the zone.
func (z TrackZone) Contains(x, y int) bool {
	return x >= z.Left && x <= z.Right && y >= z.Top && y <= z.Bottom
}

// Rect converts the zone to track coordinates where one cell is one unit
// wide and the cell at column c spans [c, c+1).
func (z TrackZone) Rect() slider.Rect {
	return slider.Rect{Left: float64(z.Left), Width: float64(z.Right - z.Left + 1)}
}

// Locator marks tracks in rendered output and reports where they landed.
type Locator interface {
	Mark(id, view string) string
	Scan(view string) string
	Locate(id string) (TrackZone, bool)
}

// ZoneLocator is a Locator backed by a bubblezone manager.
type ZoneLocator struct {
	manager *zone.Manager
	prefix  string
}

// NewZoneLocator creates a locator with its own zone manager.
func NewZoneLocator() *ZoneLocator {
	m := zone.New()
	return &ZoneLocator{manager: m, prefix: m.NewPrefix()}
}

func (l *ZoneLocator) Mark(id, view string) string {
	return l.manager.Mark(l.prefix+id, view)
}

func (l *ZoneLocator) Scan(view string) string {
	return l.manager.Scan(view)
}

func (l *ZoneLocator) Locate(id string) (TrackZone, bool) {
	info := l.manager.Get(l.prefix + id)
	if info == nil || info.IsZero() {
		return TrackZone{}, false
	}
	return TrackZone{Left: info.StartX, Right: info.EndX, Top: info.StartY, Bottom: info.EndY}, true
}

// Close stops the zone manager.
func (l *ZoneLocator) Close() {
	l.manager.Close()
}

// trackHost adapts a located track to slider.Host. Terminals have no pointer
// capture, so capture is bookkeeping the model uses to route motion.
type trackHost struct {
	locator  Locator
	id       string
	captured map[int]bool
}

func newTrackHost(locator Locator, id string) *trackHost {
	return &trackHost{locator: locator, id: id, captured: make(map[int]bool)}
}

func (h *trackHost) TrackRect() slider.Rect {
	z, ok := h.locator.Locate(h.id)
	if !ok {
		return slider.Rect{}
	}
	return z.Rect()
}

func (h *trackHost) SetPointerCapture(pointerID int) {
	h.captured[pointerID] = true
}

func (h *trackHost) ReleasePointerCapture(pointerID int) {
	delete(h.captured, pointerID)
}

func (h *trackHost) HasPointerCapture(pointerID int) bool {
	return h.captured[pointerID]
}

func (h *trackHost) dropCapture(pointerID int) {
	delete(h.captured, pointerID)
}
