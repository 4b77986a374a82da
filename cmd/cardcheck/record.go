package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// loadRecord reads a field→value mapping from a YAML file. "-" reads from
// stdin. Non-string scalars (a postal code parsed as a number, say) are
// stringified rather than rejected, since OCR exports are not strictly typed.
func loadRecord(path string) (map[string]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}

	record := make(map[string]string, len(raw))
	for field, value := range raw {
		switch v := value.(type) {
		case nil:
			record[field] = ""
		case string:
			record[field] = v
		default:
			record[field] = fmt.Sprintf("%v", v)
		}
	}
	return record, nil
}
