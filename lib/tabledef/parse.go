// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tabledef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ParseJSONC strips JSONC comments and trailing commas from data,
// then unmarshals the result into a Definition.
func ParseJSONC(data []byte) (*Definition, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing table definition: %w", err)
	}

	return &definition, nil
}

// ParseYAML unmarshals YAML data into a Definition.
func ParseYAML(data []byte) (*Definition, error) {
	var definition Definition
	if err := yaml.Unmarshal(data, &definition); err != nil {
		return nil, fmt.Errorf("parsing table definition: %w", err)
	}

	return &definition, nil
}

// ReadFile reads a table definition from disk, choosing the format by
// file extension: .yaml/.yml parse as YAML, .json/.jsonc as JSONC.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var definition *Definition
	switch extension(path) {
	case ".yaml", ".yml":
		definition, err = ParseYAML(data)
	case ".json", ".jsonc":
		definition, err = ParseJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported definition format %q (want .yaml, .yml, .json, or .jsonc)", path, extension(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return definition, nil
}

// ParseRecordsJSONC unmarshals a JSONC array of objects into records.
func ParseRecordsJSONC(data []byte) ([]Record, error) {
	stripped := jsonc.ToJSON(data)

	var records []Record
	if err := json.Unmarshal(stripped, &records); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	return records, nil
}

// ParseRecordsYAML unmarshals a YAML sequence of mappings into
// records.
func ParseRecordsYAML(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	return records, nil
}

// ReadRecords reads row data from disk, choosing the format by file
// extension the same way ReadFile does.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []Record
	switch extension(path) {
	case ".yaml", ".yml":
		records, err = ParseRecordsYAML(data)
	case ".json", ".jsonc":
		records, err = ParseRecordsJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported records format %q (want .yaml, .yml, .json, or .jsonc)", path, extension(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
