package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"readings-index/pkg/domain"
)

// ErrEmptyCatalog is returned when a catalog file lists no readings.
var ErrEmptyCatalog = errors.New("catalog has no readings")

// LoadFile reads a catalog from a YAML file holding a list of
// {id, week, title, file} mappings.
//
// Entries are returned as written. Duplicate ids and missing files are not
// checked here; the index run discovers those per entry.
func LoadFile(path string) ([]domain.ReadingEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog.
func Parse(data []byte) ([]domain.ReadingEntry, error) {
	var entries []domain.ReadingEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}
