package slider

// PointerType mirrors the pointer device categories hosts report.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)

// ButtonPrimary is the button number of the primary button or contact.
const ButtonPrimary = 0

// PointerEvent is the subset of a host pointer event the engine consumes.
// Move, up and cancel events only need ClientX and PointerID.
type PointerEvent struct {
	ClientX     float64
	ClientY     float64
	PointerID   int
	Button      int
	PointerType PointerType
	// IsPrimary marks the first contact of a touch interaction.
	IsPrimary bool
}

func (ev PointerEvent) opensSession() bool {
	if ev.Button != ButtonPrimary {
		return false
	}
	if ev.PointerType == PointerTouch && !ev.IsPrimary {
		return false
	}
	return true
}

// Target is the slider element a pointer-down landed on.
type Target int

const (
	TargetNone Target = iota
	TargetTrack
	// TargetThumbLow and TargetThumbHigh both mean "the thumb" in single mode.
	TargetThumbLow
	TargetThumbHigh
	TargetFill
)

func (t Target) String() string {
	switch t {
	case TargetTrack:
		return "track"
	case TargetThumbLow:
		return "thumb-low"
	case TargetThumbHigh:
		return "thumb-high"
	case TargetFill:
		return "fill"
	default:
		return "none"
	}
}

// ParseTarget resolves the textual form produced by Target.String.
func ParseTarget(s string) (Target, bool) {
	for _, t := range []Target{TargetTrack, TargetThumbLow, TargetThumbHigh, TargetFill} {
		if t.String() == s {
			return t, true
		}
	}
	return TargetNone, false
}

// Host supplies layout measurements and pointer capture for an engine.
type Host interface {
	TrackRect() Rect
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
	HasPointerCapture(pointerID int) bool
}

// StaticHost is a Host with a fixed track rectangle, used by headless hosts
// and tests.
type StaticHost struct {
	Rect     Rect
	captured map[int]bool
}

// NewStaticHost creates a StaticHost for rect.
func NewStaticHost(rect Rect) *StaticHost {
	return &StaticHost{Rect: rect, captured: make(map[int]bool)}
}

func (h *StaticHost) TrackRect() Rect {
	return h.Rect
}

func (h *StaticHost) SetPointerCapture(pointerID int) {
	if h.captured == nil {
		h.captured = make(map[int]bool)
	}
	h.captured[pointerID] = true
}

func (h *StaticHost) ReleasePointerCapture(pointerID int) {
	delete(h.captured, pointerID)
}

func (h *StaticHost) HasPointerCapture(pointerID int) bool {
	return h.captured[pointerID]
}

// DropCapture forgets a capture without notifying the engine, as a browser
// does when the captured element is removed.
func (h *StaticHost) DropCapture(pointerID int) {
	delete(h.captured, pointerID)
}
