package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseKit loads a kit file from disk, validates it, and returns the resulting model.
func ParseKit(path string) (*Kit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vkiterrors.NewParseError(path, 0, err)
	}
	return DecodeKit(data, path)
}

// DecodeKit parses and validates kit YAML. source names the document in errors.
func DecodeKit(data []byte, source string) (*Kit, error) {
	var kit Kit
	if err := DecodeStrict(data, source, &kit); err != nil {
		return nil, err
	}

	if err := ValidateKit(&kit); err != nil {
		return nil, err
	}

	return &kit, nil
}

// DecodeStrict decodes a single YAML document into out, rejecting unknown keys.
func DecodeStrict(data []byte, source string, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return vkiterrors.NewParseError(source, 0, fmt.Errorf("document is empty"))
		}
		return vkiterrors.NewParseError(source, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
