package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

// ConvertValidationError normalizes validator errors into vkit validation errors.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return vkiterrors.NewValidationError(field, msg, err)
	}

	return vkiterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the
// YAML path, e.g. "sliders[0].thumb_size".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

func fieldForSlider(index int, field string) string {
	return fmt.Sprintf("sliders[%d].%s", index, field)
}
