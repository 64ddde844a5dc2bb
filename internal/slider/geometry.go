package slider

import "math"

// Rect is the horizontal extent of the track in client coordinates.
type Rect struct {
	Left  float64
	Width float64
}

// EdgeDirection selects the reference point reported for a range endpoint.
type EdgeDirection int

const (
	// EdgeLow refers to the low thumb, whose right edge carries its value.
	EdgeLow EdgeDirection = -1
	// EdgeFill refers to the edges of the filled segment.
	EdgeFill EdgeDirection = 0
	// EdgeHigh refers to the high thumb, whose left edge carries its value.
	EdgeHigh EdgeDirection = 1
)

// Geometry maps client coordinates onto a measured track.
type Geometry struct {
	Track   Rect
	ThumbPx float64
}

// Valid reports whether the track has been laid out.
func (g Geometry) Valid() bool {
	return g.Track.Width > 0
}

func (g Geometry) halfThumb() float64 {
	return g.ThumbPx / 2
}

// ClampedCenter returns clientX relative to the track, clamped to the span a
// thumb's center may occupy without overflowing the track.
func (g Geometry) ClampedCenter(clientX float64) float64 {
	half := g.halfThumb()
	return math.Min(g.Track.Width-half, math.Max(half, clientX-g.Track.Left))
}

// SingleTravel is the usable travel of a single thumb's center.
func (g Geometry) SingleTravel() float64 {
	return math.Max(0, g.Track.Width-g.ThumbPx)
}

// RangeTravel is the usable travel of a range thumb's inner edge.
func (g Geometry) RangeTravel() float64 {
	return math.Max(0, g.Track.Width-2*g.ThumbPx)
}

// Travel returns the usable travel that drives the given drag mode.
func (g Geometry) Travel(mode Mode) float64 {
	if mode == ModeSingle {
		return g.SingleTravel()
	}
	return g.RangeTravel()
}

// SingleFraction converts clientX into a [0,1] position for a single thumb.
func (g Geometry) SingleFraction(clientX float64) float64 {
	travel := g.SingleTravel()
	if !g.Valid() || travel == 0 {
		return 0
	}
	return (g.ClampedCenter(clientX) - g.halfThumb()) / travel
}

// ThumbFraction converts clientX into a [0,1] position for the range thumb on
// the given side, measured at the thumb's inner edge.
func (g Geometry) ThumbFraction(clientX float64, edge EdgeDirection) float64 {
	travel := g.RangeTravel()
	if !g.Valid() || travel == 0 {
		return 0
	}
	pos := g.ClampedCenter(clientX) - float64(edge)*g.halfThumb()
	return g.edgeRatio(pos)
}

// EdgeFraction converts clientX into a [0,1] position on the edge-based
// range scale without a thumb offset.
func (g Geometry) EdgeFraction(clientX float64) float64 {
	if !g.Valid() || g.RangeTravel() == 0 {
		return 0
	}
	return g.edgeRatio(clientX - g.Track.Left)
}

func (g Geometry) edgeRatio(pos float64) float64 {
	edgeMin := g.ThumbPx
	edgeMax := g.Track.Width - g.ThumbPx
	clamped := math.Min(edgeMax, math.Max(edgeMin, pos))
	return (clamped - edgeMin) / g.RangeTravel()
}

// SinglePercent converts a [0,1] position into the thumb center's offset as a
// percentage of the track width.
func (g Geometry) SinglePercent(fraction float64) float64 {
	if !g.Valid() {
		return 0
	}
	pos := g.halfThumb() + fraction*g.SingleTravel()
	return pos * 100 / g.Track.Width
}

// EdgePercent converts a [0,1] edge position into a percentage of the track
// width, shifted by half a thumb toward the thumb's center for EdgeLow and
// EdgeHigh.
func (g Geometry) EdgePercent(fraction float64, edge EdgeDirection) float64 {
	if !g.Valid() {
		return 0
	}
	pos := g.ThumbPx + fraction*g.RangeTravel() + float64(edge)*g.halfThumb()
	return pos * 100 / g.Track.Width
}
