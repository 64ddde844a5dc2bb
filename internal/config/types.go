package config

import (
	"github.com/alexisbeaulieu97/vkit/internal/slider"
)

// DefaultTrackWidth is the playground track width in cells when the kit does
// not set one.
const DefaultTrackWidth = 40

// Kit represents a full vkit configuration document.
type Kit struct {
	Name       string       `yaml:"name,omitempty" validate:"omitempty,max=100"`
	TrackWidth int          `yaml:"track_width,omitempty" validate:"omitempty,min=4,max=400"`
	Sliders    []SliderSpec `yaml:"sliders" validate:"required,min=1,dive"`
}

// SliderSpec declares one slider. Unset optional fields fall back to
// slider.DefaultConfig.
type SliderSpec struct {
	ID        string    `yaml:"id" validate:"required,slider_id"`
	Label     string    `yaml:"label,omitempty" validate:"omitempty,max=60"`
	Min       *float64  `yaml:"min,omitempty" validate:"omitempty,finite"`
	Max       *float64  `yaml:"max,omitempty" validate:"omitempty,finite"`
	ValueList []float64 `yaml:"value_list,omitempty" validate:"omitempty,dive,finite"`
	IsRange   bool      `yaml:"is_range,omitempty"`
	ThumbSize *float64  `yaml:"thumb_size,omitempty" validate:"omitempty,finite,gte=0"`
	UnitPx    *float64  `yaml:"unit_px,omitempty" validate:"omitempty,finite,gt=0"`
	Value     *float64  `yaml:"value,omitempty" validate:"omitempty,finite"`
	Range     []float64 `yaml:"range,omitempty" validate:"omitempty,len=2,dive,finite"`
}

// EffectiveTrackWidth returns the configured track width or the default.
func (k *Kit) EffectiveTrackWidth() int {
	if k == nil || k.TrackWidth == 0 {
		return DefaultTrackWidth
	}
	return k.TrackWidth
}

// Slider looks up a slider declaration by id.
func (k *Kit) Slider(id string) (SliderSpec, bool) {
	if k == nil {
		return SliderSpec{}, false
	}
	for _, s := range k.Sliders {
		if s.ID == id {
			return s, true
		}
	}
	return SliderSpec{}, false
}

// DisplayLabel returns the label, falling back to the id.
func (s SliderSpec) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// SliderConfig merges the declaration over the default slider configuration.
func (s SliderSpec) SliderConfig() slider.Config {
	cfg := slider.DefaultConfig()
	if s.Min != nil {
		cfg.Min = *s.Min
	}
	if s.Max != nil {
		cfg.Max = *s.Max
	}
	if len(s.ValueList) > 0 {
		cfg.ValueList = append([]float64(nil), s.ValueList...)
	}
	cfg.IsRange = s.IsRange
	if s.ThumbSize != nil {
		cfg.ThumbSize = *s.ThumbSize
	}
	if s.UnitPx != nil {
		cfg.UnitPx = *s.UnitPx
	}
	return cfg
}

// InitialOptions returns the engine options seeding the declared value or
// range. Out-of-bounds or reversed input is left for the engine to resolve.
func (s SliderSpec) InitialOptions() []slider.Option {
	var opts []slider.Option
	if s.Value != nil {
		opts = append(opts, slider.WithValue(*s.Value))
	}
	if len(s.Range) == 2 {
		opts = append(opts, slider.WithRange(slider.Range{Low: s.Range[0], High: s.Range[1]}))
	}
	return opts
}
