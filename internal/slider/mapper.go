package slider

// PositionToValue maps a [0,1] track position onto the value domain.
func (b Bounds) PositionToValue(fraction float64) float64 {
	return b.Min + fraction*b.Span()
}

// ValueToPosition maps a value onto [0,1]. A zero span maps everything to 0.
func (b Bounds) ValueToPosition(v float64) float64 {
	span := b.Span()
	if span == 0 {
		return 0
	}
	return (v - b.Min) / span
}

// DeltaToValue converts a pointer movement in pixels into a value delta using
// the usable travel of the drag mode, so pointer motion tracks the thumb 1:1.
func DeltaToValue(b Bounds, g Geometry, deltaX float64, mode Mode) float64 {
	travel := g.Travel(mode)
	span := b.Span()
	if !g.Valid() || travel <= 0 || span == 0 {
		return 0
	}
	return deltaX * span / travel
}
