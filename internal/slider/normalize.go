package slider

import (
	"math"
	"sort"
)

// Range is the value of a range-mode slider.
type Range struct {
	Low  float64
	High float64
}

// Ordered returns r with Low <= High.
func (r Range) Ordered() Range {
	if r.Low > r.High {
		return Range{Low: r.High, High: r.Low}
	}
	return r
}

// Length returns High - Low.
func (r Range) Length() float64 {
	return r.High - r.Low
}

// Clamp restricts v to [Min, Max]. NaN resolves to Min.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Min
	}
	return math.Min(b.Max, math.Max(b.Min, v))
}

// Normalize is the single choke point for candidate values: it clamps v and,
// when a value list is configured, snaps it to the closest stop. Exact ties go
// to the lower stop. Normalize is idempotent.
func (b Bounds) Normalize(v float64) float64 {
	v = b.Clamp(v)
	if !b.Discrete() {
		return v
	}

	stops := b.Stops
	i := sort.SearchFloat64s(stops, v)
	if i == 0 {
		return stops[0]
	}
	if i == len(stops) {
		return stops[len(stops)-1]
	}

	low, high := stops[i-1], stops[i]
	if v-low <= high-v {
		return low
	}
	return high
}

// NormalizeRange normalizes both endpoints and restores Low <= High.
func (b Bounds) NormalizeRange(r Range) Range {
	return Range{Low: b.Normalize(r.Low), High: b.Normalize(r.High)}.Ordered()
}
