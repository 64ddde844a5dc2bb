package slider

import "strconv"

// Layout holds the positions the rendering layer needs, as percentages of the
// track width. It is derived on demand from the current state.
type Layout struct {
	ThumbStart float64
	ThumbEnd   float64
	FillStart  float64
	FillEnd    float64
}

// Styles is Layout formatted as CSS-style percentage strings.
type Styles struct {
	ThumbStart string
	ThumbEnd   string
	FillStart  string
	FillEnd    string
}

// Layout computes thumb and fill positions. In single mode both thumb fields
// carry the single thumb's center and the fill starts at 0.
func (e *Engine) Layout() Layout {
	g := e.geometry()
	if !e.cfg.IsRange {
		p := e.singlePercent(g, e.state.Value)
		return Layout{ThumbStart: p, ThumbEnd: p, FillStart: 0, FillEnd: p}
	}

	r := e.state.Range
	return Layout{
		ThumbStart: e.edgePercent(g, r.Low, EdgeLow),
		ThumbEnd:   e.edgePercent(g, r.High, EdgeHigh),
		FillStart:  e.edgePercent(g, r.Low, EdgeFill),
		FillEnd:    e.edgePercent(g, r.High, EdgeFill),
	}
}

func (e *Engine) singlePercent(g Geometry, v float64) float64 {
	if e.bounds.Span() == 0 {
		return 0
	}
	return g.SinglePercent(e.bounds.ValueToPosition(v))
}

func (e *Engine) edgePercent(g Geometry, v float64, edge EdgeDirection) float64 {
	if e.bounds.Span() == 0 {
		return 0
	}
	return g.EdgePercent(e.bounds.ValueToPosition(v), edge)
}

// Styles formats the layout for style bindings.
func (l Layout) Styles() Styles {
	return Styles{
		ThumbStart: Percent(l.ThumbStart),
		ThumbEnd:   Percent(l.ThumbEnd),
		FillStart:  Percent(l.FillStart),
		FillEnd:    Percent(l.FillEnd),
	}
}

// Percent formats p with the shortest exact representation, e.g. "37.5%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
