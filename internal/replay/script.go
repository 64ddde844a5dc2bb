package replay

import (
	"os"

	"github.com/alexisbeaulieu97/vkit/internal/config"
	"github.com/alexisbeaulieu97/vkit/internal/slider"
	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

// EventType names a scripted pointer event.
type EventType string

const (
	EventDown        EventType = "down"
	EventMove        EventType = "move"
	EventUp          EventType = "up"
	EventCancel      EventType = "cancel"
	EventLostCapture EventType = "lost-capture"
)

// TargetAuto resolves the pointer-down target with the engine's hit test.
const TargetAuto = "auto"

// DefaultPointerID is used when an event does not name a pointer.
const DefaultPointerID = 1

// Script is a recorded pointer interaction against one slider of a kit.
type Script struct {
	Slider string  `yaml:"slider" validate:"required,slider_id"`
	Track  Track   `yaml:"track"`
	Events []Event `yaml:"events" validate:"required,min=1,dive"`
}

// Track is the static track rectangle the replay host reports.
type Track struct {
	Left  float64 `yaml:"left" validate:"finite"`
	Width float64 `yaml:"width" validate:"finite,gte=0"`
}

// Event is one scripted pointer event. Optional fields fall back to a primary
// mouse button on pointer 1.
type Event struct {
	Type        EventType `yaml:"type" validate:"required,oneof=down move up cancel lost-capture"`
	X           float64   `yaml:"x,omitempty" validate:"finite"`
	Target      string    `yaml:"target,omitempty" validate:"omitempty,oneof=track fill thumb-low thumb-high auto"`
	Pointer     *int      `yaml:"pointer,omitempty"`
	Button      *int      `yaml:"button,omitempty"`
	PointerType string    `yaml:"pointer_type,omitempty" validate:"omitempty,oneof=mouse pen touch"`
	Primary     *bool     `yaml:"primary,omitempty"`
	Expect      *Expect   `yaml:"expect,omitempty"`
}

// Expect asserts the slider state after an event has been applied.
type Expect struct {
	Value    *float64 `yaml:"value,omitempty" validate:"omitempty,finite"`
	Low      *float64 `yaml:"low,omitempty" validate:"omitempty,finite"`
	High     *float64 `yaml:"high,omitempty" validate:"omitempty,finite"`
	Dragging *bool    `yaml:"dragging,omitempty"`
}

// PointerEvent converts the scripted event into the engine's event type.
func (e Event) PointerEvent() slider.PointerEvent {
	ev := slider.PointerEvent{
		ClientX:     e.X,
		PointerID:   DefaultPointerID,
		Button:      slider.ButtonPrimary,
		PointerType: slider.PointerMouse,
		IsPrimary:   true,
	}
	if e.Pointer != nil {
		ev.PointerID = *e.Pointer
	}
	if e.Button != nil {
		ev.Button = *e.Button
	}
	if e.PointerType != "" {
		ev.PointerType = slider.PointerType(e.PointerType)
	}
	if e.Primary != nil {
		ev.IsPrimary = *e.Primary
	}
	return ev
}

// TargetName returns the declared target, defaulting to auto.
func (e Event) TargetName() string {
	if e.Target == "" {
		return TargetAuto
	}
	return e.Target
}

// ParseScript loads and validates a replay script from disk.
func ParseScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vkiterrors.NewParseError(path, 0, err)
	}
	return DecodeScript(data, path)
}

// DecodeScript parses and validates script YAML.
func DecodeScript(data []byte, source string) (*Script, error) {
	var script Script
	if err := config.DecodeStrict(data, source, &script); err != nil {
		return nil, err
	}
	if err := ValidateScript(&script); err != nil {
		return nil, err
	}
	return &script, nil
}

// ValidateScript checks the script schema with the shared config validator.
func ValidateScript(script *Script) error {
	if script == nil {
		return vkiterrors.NewValidationError("script", "script is nil", nil)
	}
	if err := config.GetValidator().Struct(script); err != nil {
		return config.ConvertValidationError(err)
	}
	return nil
}
