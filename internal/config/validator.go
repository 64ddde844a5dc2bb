package config

import (
	"fmt"

	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

// ValidateKit performs schema and cross-field validation on the kit.
// Reversed bounds and out-of-bounds initial values are accepted; the slider
// engine resolves them.
func ValidateKit(kit *Kit) error {
	if kit == nil {
		return vkiterrors.NewValidationError("kit", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(kit); err != nil {
		return ConvertValidationError(err)
	}

	seen := make(map[string]int, len(kit.Sliders))
	for i, spec := range kit.Sliders {
		if first, exists := seen[spec.ID]; exists {
			return vkiterrors.NewValidationError(fieldForSlider(i, "id"), fmt.Sprintf("duplicate slider id %q (first declared at sliders[%d])", spec.ID, first), nil)
		}
		seen[spec.ID] = i

		if err := validateSliderSpec(spec, i); err != nil {
			return err
		}
	}

	return nil
}
