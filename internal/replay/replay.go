package replay

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/logger"
	"github.com/alexisbeaulieu97/vkit/internal/slider"
	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

const expectTolerance = 1e-9

// Snapshot is a serialisable slider state. Value is set in single mode, Low
// and High in range mode.
type Snapshot struct {
	Value *float64 `json:"value,omitempty"`
	Low   *float64 `json:"low,omitempty"`
	High  *float64 `json:"high,omitempty"`
}

// SnapshotOf captures the bound part of s.
func SnapshotOf(s slider.State) Snapshot {
	if s.IsRange {
		low, high := s.Range.Low, s.Range.High
		return Snapshot{Low: &low, High: &high}
	}
	v := s.Value
	return Snapshot{Value: &v}
}

// Values returns the snapshot's numbers in ascending order.
func (s Snapshot) Values() []float64 {
	if s.Value != nil {
		return []float64{*s.Value}
	}
	if s.Low != nil && s.High != nil {
		return []float64{*s.Low, *s.High}
	}
	return nil
}

// String renders the snapshot as "value=40" or "low=20 high=35".
func (s Snapshot) String() string {
	if s.Value != nil {
		return "value=" + formatNumber(*s.Value)
	}
	if s.Low != nil && s.High != nil {
		return "low=" + formatNumber(*s.Low) + " high=" + formatNumber(*s.High)
	}
	return "-"
}

// Step records how one scripted event was handled.
type Step struct {
	Index    int       `json:"index"`
	Type     EventType `json:"type"`
	Target   string    `json:"target,omitempty"`
	Handled  bool      `json:"handled"`
	Dragging bool      `json:"dragging"`
}

// Commit is one state change reported by the engine.
type Commit struct {
	Index int       `json:"index"`
	Event EventType `json:"event"`
	State Snapshot  `json:"state"`
}

// Summary aggregates the committed values.
type Summary struct {
	Commits int     `json:"commits"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Extent  float64 `json:"extent"`
}

// Report is the outcome of a replay.
type Report struct {
	Slider   string   `json:"slider"`
	Mode     string   `json:"mode"`
	Initial  Snapshot `json:"initial"`
	Steps    []Step   `json:"steps"`
	Commits  []Commit `json:"commits"`
	Final    Snapshot `json:"final"`
	Dragging bool     `json:"dragging"`
	Summary  Summary  `json:"summary"`
}

// RunKit replays script against the slider it names in kit.
func RunKit(kit *config.Kit, script *Script, log *logger.Logger) (*Report, error) {
	if script == nil {
		return nil, vkiterrors.NewValidationError("script", "script is nil", nil)
	}
	spec, ok := kit.Slider(script.Slider)
	if !ok {
		return nil, vkiterrors.NewValidationError("slider", unknownSliderMessage(kit, script.Slider), nil)
	}
	return Run(spec, script, log)
}

// Run feeds every scripted event to a fresh engine built from spec over a
// static host and records the resulting commits. It stops at the first
// failed expectation.
func Run(spec config.SliderSpec, script *Script, log *logger.Logger) (*Report, error) {
	if script == nil {
		return nil, vkiterrors.NewValidationError("script", "script is nil", nil)
	}

	host := slider.NewStaticHost(slider.Rect{Left: script.Track.Left, Width: script.Track.Width})
	report := &Report{Slider: spec.ID, Mode: "single"}
	if spec.IsRange {
		report.Mode = "range"
	}

	current := -1
	var currentType EventType
	opts := append(spec.InitialOptions(),
		slider.WithLogger(log.With("slider", spec.ID)),
		slider.WithOnChange(func(s slider.State) {
			report.Commits = append(report.Commits, Commit{Index: current, Event: currentType, State: SnapshotOf(s)})
		}),
	)
	engine := slider.New(spec.SliderConfig(), host, opts...)
	report.Initial = SnapshotOf(engine.State())

	for i, ev := range script.Events {
		current, currentType = i, ev.Type
		step := apply(engine, host, ev)
		step.Index = i
		report.Steps = append(report.Steps, step)

		if err := checkExpect(engine, ev.Expect); err != nil {
			return report, vkiterrors.NewReplayError(i, string(ev.Type), err)
		}
	}

	report.Final = SnapshotOf(engine.State())
	report.Dragging = engine.Dragging()
	report.Summary = summarize(report)
	log.WithFields(map[string]any{
		"slider":  spec.ID,
		"events":  len(script.Events),
		"commits": report.Summary.Commits,
	}).Debug("replay finished")
	return report, nil
}

func apply(engine *slider.Engine, host *slider.StaticHost, ev Event) Step {
	pe := ev.PointerEvent()
	step := Step{Type: ev.Type}

	switch ev.Type {
	case EventDown:
		target := engine.HitTest(pe.ClientX)
		if name := ev.TargetName(); name != TargetAuto {
			target, _ = slider.ParseTarget(name)
		}
		step.Target = target.String()
		step.Handled = engine.PointerDown(pe, target)
	case EventMove:
		step.Handled = engine.PointerMove(pe)
	case EventUp:
		step.Handled = engine.PointerUp(pe)
	case EventCancel:
		step.Handled = engine.PointerCancel(pe)
	case EventLostCapture:
		host.DropCapture(pe.PointerID)
		step.Handled = engine.LostPointerCapture(pe.PointerID)
	}

	step.Dragging = engine.Dragging()
	return step
}

func checkExpect(engine *slider.Engine, want *Expect) error {
	if want == nil {
		return nil
	}

	state := engine.State()
	var mismatches []string
	check := func(name string, got float64, want *float64) {
		if want != nil && !scalar.EqualWithinAbsOrRel(got, *want, expectTolerance, expectTolerance) {
			mismatches = append(mismatches, fmt.Sprintf("%s = %s, want %s", name, formatNumber(got), formatNumber(*want)))
		}
	}
	check("value", state.Value, want.Value)
	check("low", state.Range.Low, want.Low)
	check("high", state.Range.High, want.High)
	if want.Dragging != nil && engine.Dragging() != *want.Dragging {
		mismatches = append(mismatches, fmt.Sprintf("dragging = %t, want %t", engine.Dragging(), *want.Dragging))
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("unexpected state: %s", strings.Join(mismatches, ", "))
	}
	return nil
}

func summarize(report *Report) Summary {
	var values []float64
	for _, c := range report.Commits {
		values = append(values, c.State.Values()...)
	}
	if len(values) == 0 {
		values = report.Final.Values()
	}

	s := Summary{Commits: len(report.Commits)}
	if len(values) == 0 {
		return s
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Extent = s.Max - s.Min
	return s
}

func unknownSliderMessage(kit *config.Kit, id string) string {
	msg := fmt.Sprintf("kit has no slider %q", id)
	if kit == nil {
		return msg
	}

	ids := make([]string, 0, len(kit.Sliders))
	for _, s := range kit.Sliders {
		ids = append(ids, s.ID)
	}
	if suggestion, ok := suggestSlider(id, ids); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

// suggestSlider finds the id that best matches a mistyped one, either as a
// fuzzy match of id or as an id fuzzily contained in it.
func suggestSlider(id string, ids []string) (string, bool) {
	if matches := fuzzy.Find(id, ids); len(matches) > 0 {
		return matches[0].Str, true
	}
	best, bestScore := "", 0
	for _, candidate := range ids {
		matches := fuzzy.Find(candidate, []string{id})
		if len(matches) > 0 && (best == "" || matches[0].Score > bestScore) {
			best, bestScore = candidate, matches[0].Score
		}
	}
	return best, best != ""
}
