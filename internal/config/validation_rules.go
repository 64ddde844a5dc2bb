package config

import (
	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

// validateSliderSpec checks the mode-dependent fields of one slider.
func validateSliderSpec(spec SliderSpec, index int) error {
	if spec.IsRange && spec.Value != nil {
		return vkiterrors.NewValidationError(fieldForSlider(index, "value"), "value is only valid for single sliders; use range", nil)
	}
	if !spec.IsRange && spec.Range != nil {
		return vkiterrors.NewValidationError(fieldForSlider(index, "range"), "range requires is_range: true", nil)
	}
	return nil
}
