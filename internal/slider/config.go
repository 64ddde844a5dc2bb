package slider

import (
	"math"
	"slices"
)

// DefaultUnitPx is the pixel size of one thumb-size unit.
const DefaultUnitPx = 4

// Config describes a slider's value domain. It is treated as read-only for the
// duration of an interaction; use Engine.SetConfig to replace it.
type Config struct {
	Min float64
	Max float64
	// ValueList, when it holds at least two distinct finite values, replaces
	// Min/Max with its extremes and restricts commits to its members.
	ValueList []float64
	IsRange   bool
	ThumbSize float64
	UnitPx    float64
}

// DefaultConfig returns the configuration applied beneath user overrides.
func DefaultConfig() Config {
	return Config{
		Min:       0,
		Max:       100,
		ThumbSize: 6,
		UnitPx:    DefaultUnitPx,
	}
}

// ThumbPx returns the thumb size converted to pixels.
func (c Config) ThumbPx() float64 {
	unit := c.UnitPx
	if !isFinite(unit) || unit <= 0 {
		unit = DefaultUnitPx
	}
	size := c.ThumbSize
	if !isFinite(size) || size < 0 {
		size = 0
	}
	return size * unit
}

// Bounds is the resolved value domain of a configuration.
type Bounds struct {
	Min float64
	Max float64
	// Stops is the sanitised value list, sorted ascending. It is empty when no
	// discrete constraint applies.
	Stops []float64
}

// ResolveBounds orders the configured bounds and folds in the value list.
func ResolveBounds(cfg Config) Bounds {
	stops := sanitizeStops(cfg.ValueList)
	if len(stops) >= 2 {
		return Bounds{Min: stops[0], Max: stops[len(stops)-1], Stops: stops}
	}

	lo, hi := finiteOr(cfg.Min, 0), finiteOr(cfg.Max, 0)
	return Bounds{Min: math.Min(lo, hi), Max: math.Max(lo, hi)}
}

// Span returns Max - Min.
func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// Discrete reports whether commits snap to Stops.
func (b Bounds) Discrete() bool {
	return len(b.Stops) >= 2
}

func sanitizeStops(list []float64) []float64 {
	if len(list) < 2 {
		return nil
	}
	stops := make([]float64, 0, len(list))
	for _, v := range list {
		if isFinite(v) {
			stops = append(stops, v)
		}
	}
	slices.Sort(stops)
	stops = slices.Compact(stops)
	if len(stops) < 2 {
		return nil
	}
	return stops
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}
