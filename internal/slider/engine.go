package slider

import (
	"math"

	"github.com/alexisbeaulieu97/vkit/internal/logger"
)

// State is the observable value of a slider. Value is bound in single mode,
// Range in range mode; both are kept normalized.
type State struct {
	IsRange bool
	Value   float64
	Range   Range
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a logger for session lifecycle entries.
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithOnChange installs the callback invoked synchronously after every commit
// that changes the state.
func WithOnChange(fn func(State)) Option {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// WithValue sets the initial single value.
func WithValue(v float64) Option {
	return func(e *Engine) {
		e.state.Value = v
	}
}

// WithRange sets the initial range.
func WithRange(r Range) Option {
	return func(e *Engine) {
		e.state.Range = r
	}
}

// Engine is the slider interaction state machine: Idle while session is nil,
// Dragging otherwise.
type Engine struct {
	cfg      Config
	bounds   Bounds
	host     Host
	state    State
	session  *Session
	onChange func(State)
	log      *logger.Logger
}

// New creates an engine for cfg. A nil host behaves as an unmeasured track.
func New(cfg Config, host Host, opts ...Option) *Engine {
	if host == nil {
		host = NewStaticHost(Rect{})
	}
	e := &Engine{
		cfg:    cfg,
		bounds: ResolveBounds(cfg),
		host:   host,
		state:  State{Value: 0, Range: Range{Low: 0, High: 100}},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = e.normalizedState(e.state)
	return e
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Bounds returns the resolved value domain.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// State returns the current value(s).
func (e *Engine) State() State {
	return e.state
}

// Value returns the single-mode value.
func (e *Engine) Value() float64 {
	return e.state.Value
}

// Range returns the range-mode value.
func (e *Engine) Range() Range {
	return e.state.Range
}

// Dragging reports whether a session is open.
func (e *Engine) Dragging() bool {
	return e.session != nil
}

// Session returns a copy of the open session.
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// SetConfig replaces the configuration and re-normalizes the bound values.
// An open session is closed when the slider switches between single and
// range mode.
func (e *Engine) SetConfig(cfg Config) {
	if e.session != nil && cfg.IsRange != e.cfg.IsRange {
		e.endSession(e.session.PointerID, true, "mode changed")
	}
	e.cfg = cfg
	e.bounds = ResolveBounds(cfg)
	e.commit(e.normalizedState(e.state))
}

// SetValue assigns the single value from outside, normalizing it.
func (e *Engine) SetValue(v float64) {
	next := e.state
	next.Value = e.bounds.Normalize(v)
	e.commit(next)
}

// SetRange assigns the range from outside, normalizing and ordering it.
func (e *Engine) SetRange(r Range) {
	next := e.state
	next.Range = e.bounds.NormalizeRange(r)
	e.commit(next)
}

// PointerDown opens a drag session when ev qualifies and no session is open.
// Clicking the empty track moves the nearest thumb to the pointer at once.
func (e *Engine) PointerDown(ev PointerEvent, target Target) bool {
	if e.session != nil {
		e.debug("pointer down ignored: session already open", ev.PointerID)
		return false
	}
	if target == TargetNone || !ev.opensSession() {
		return false
	}

	g := e.geometry()
	s := Session{
		PointerID:  ev.PointerID,
		Anchor:     ev.ClientX,
		StartValue: e.state.Value,
		StartRange: e.state.Range,
	}

	jump := false
	if !e.cfg.IsRange {
		s.Mode = ModeSingle
		jump = target == TargetTrack || target == TargetFill
	} else {
		switch target {
		case TargetThumbLow:
			s.Mode = ModeRangeLow
		case TargetThumbHigh:
			s.Mode = ModeRangeHigh
		case TargetFill:
			s.Mode = ModeRangeShift
		default:
			s.Mode = e.closestThumb(g, ev.ClientX)
			jump = true
		}
	}

	e.session = &s
	e.host.SetPointerCapture(ev.PointerID)
	e.sessionLog(s).Debug("drag session opened")

	if jump && g.Valid() {
		e.jumpTo(g, s.Mode, ev.ClientX)
		e.session.StartValue = e.state.Value
		e.session.StartRange = e.state.Range
	}
	return true
}

// PointerMove applies the movement of the session's pointer. Events for any
// other pointer are ignored.
func (e *Engine) PointerMove(ev PointerEvent) bool {
	s := e.session
	if s == nil {
		return false
	}
	if ev.PointerID != s.PointerID {
		e.debug("pointer move ignored: foreign pointer", ev.PointerID)
		return false
	}

	delta := DeltaToValue(e.bounds, e.geometry(), ev.ClientX-s.Anchor, s.Mode)
	next := e.state
	switch s.Mode {
	case ModeSingle:
		next.Value = e.bounds.Normalize(s.StartValue + delta)
	case ModeRangeLow:
		next.Range.Low = math.Min(e.bounds.Normalize(s.StartRange.Low+delta), e.state.Range.High)
	case ModeRangeHigh:
		next.Range.High = math.Max(e.bounds.Normalize(s.StartRange.High+delta), e.state.Range.Low)
	case ModeRangeShift:
		next.Range = e.shift(s.StartRange, delta)
	}
	e.commit(next)
	return true
}

// PointerUp closes the session owned by ev.PointerID.
func (e *Engine) PointerUp(ev PointerEvent) bool {
	return e.endSession(ev.PointerID, true, "pointer up")
}

// PointerCancel is handled exactly like PointerUp; every intermediate commit
// is already a valid state, so nothing is rolled back.
func (e *Engine) PointerCancel(ev PointerEvent) bool {
	return e.endSession(ev.PointerID, true, "pointer cancel")
}

// LostPointerCapture closes the session when the host revoked capture.
func (e *Engine) LostPointerCapture(pointerID int) bool {
	return e.endSession(pointerID, false, "capture lost")
}

// HitTest resolves clientX into the element under it: a thumb, the filled
// segment (range mode), or the bare track. Points outside the track yield
// TargetNone.
func (e *Engine) HitTest(clientX float64) Target {
	g := e.geometry()
	if !g.Valid() {
		return TargetTrack
	}
	x := clientX - g.Track.Left
	if x < 0 || x > g.Track.Width {
		return TargetNone
	}

	l := e.Layout()
	half := math.Max(g.halfThumb(), 0.5)
	at := func(percent float64) float64 { return percent / 100 * g.Track.Width }

	if !e.cfg.IsRange {
		if math.Abs(x-at(l.ThumbEnd)) <= half {
			return TargetThumbHigh
		}
		return TargetTrack
	}

	dLow := math.Abs(x - at(l.ThumbStart))
	dHigh := math.Abs(x - at(l.ThumbEnd))
	if dLow <= half || dHigh <= half {
		if dLow < dHigh || (dLow == dHigh && x <= at(l.ThumbStart)) {
			return TargetThumbLow
		}
		return TargetThumbHigh
	}
	if x > at(l.FillStart) && x < at(l.FillEnd) {
		return TargetFill
	}
	return TargetTrack
}

func (e *Engine) geometry() Geometry {
	return Geometry{Track: e.host.TrackRect(), ThumbPx: e.cfg.ThumbPx()}
}

func (e *Engine) normalizedState(s State) State {
	return State{
		IsRange: e.cfg.IsRange,
		Value:   e.bounds.Normalize(s.Value),
		Range:   e.bounds.NormalizeRange(s.Range),
	}
}

// closestThumb picks the endpoint whose edge position is nearest the click.
// Ties go to the low thumb unless the click lies above a collapsed pair.
func (e *Engine) closestThumb(g Geometry, clientX float64) Mode {
	v := e.bounds.PositionToValue(g.EdgeFraction(clientX))
	r := e.state.Range
	dLow, dHigh := math.Abs(v-r.Low), math.Abs(v-r.High)
	switch {
	case dLow < dHigh:
		return ModeRangeLow
	case dHigh < dLow:
		return ModeRangeHigh
	case v > r.High:
		return ModeRangeHigh
	default:
		return ModeRangeLow
	}
}

func (e *Engine) jumpTo(g Geometry, mode Mode, clientX float64) {
	next := e.state
	switch mode {
	case ModeSingle:
		next.Value = e.bounds.Normalize(e.bounds.PositionToValue(g.SingleFraction(clientX)))
	case ModeRangeLow:
		v := e.bounds.Normalize(e.bounds.PositionToValue(g.ThumbFraction(clientX, EdgeLow)))
		next.Range.Low = math.Min(v, next.Range.High)
	case ModeRangeHigh:
		v := e.bounds.Normalize(e.bounds.PositionToValue(g.ThumbFraction(clientX, EdgeHigh)))
		next.Range.High = math.Max(v, next.Range.Low)
	}
	e.commit(next)
}

// shift translates start by delta, pushing the pair back inside the bounds
// with its length preserved, then snaps and re-orders both endpoints.
func (e *Engine) shift(start Range, delta float64) Range {
	low, high := start.Low+delta, start.High+delta
	if low < e.bounds.Min {
		high += e.bounds.Min - low
		low = e.bounds.Min
	}
	if high > e.bounds.Max {
		low -= high - e.bounds.Max
		high = e.bounds.Max
	}
	return e.bounds.NormalizeRange(Range{Low: low, High: high})
}

func (e *Engine) commit(next State) {
	next.Range = next.Range.Ordered()
	if next == e.state {
		return
	}
	e.state = next
	if e.onChange != nil {
		e.onChange(next)
	}
}

func (e *Engine) endSession(pointerID int, release bool, reason string) bool {
	s := e.session
	if s == nil || s.PointerID != pointerID {
		return false
	}
	e.session = nil
	if release && e.host.HasPointerCapture(pointerID) {
		e.host.ReleasePointerCapture(pointerID)
	}
	e.sessionLog(*s).With("reason", reason).Debug("drag session closed")
	return true
}

func (e *Engine) sessionLog(s Session) *logger.Logger {
	if !e.log.DebugEnabled() {
		return nil
	}
	return e.log.WithFields(map[string]any{
		"pointer_id": s.PointerID,
		"mode":       s.Mode.String(),
	})
}

func (e *Engine) debug(msg string, pointerID int) {
	if !e.log.DebugEnabled() {
		return
	}
	e.log.With("pointer_id", pointerID).Debug(msg)
}
