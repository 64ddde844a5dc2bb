package slider

// Mode identifies what a drag session moves.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRangeLow
	ModeRangeHigh
	// ModeRangeShift translates both endpoints together.
	ModeRangeShift
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeRangeLow:
		return "range-low"
	case ModeRangeHigh:
		return "range-high"
	case ModeRangeShift:
		return "range-shift"
	default:
		return "unknown"
	}
}

// Session records one pointer-driven drag. Deltas are always applied to the
// start snapshot, never accumulated.
type Session struct {
	Mode       Mode
	PointerID  int
	Anchor     float64
	StartValue float64
	StartRange Range
}
