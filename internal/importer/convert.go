package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// Convert turns a validated schema into term records. It validates first and
// returns all problems joined into one error.
func Convert(schema *ImportSchema) (domain.TermRecords, error) {
	if errs := ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}

	records := make(domain.TermRecords, len(schema.Terms))
	for label, raw := range schema.Terms {
		var grades []string
		if err := json.Unmarshal(raw, &grades); err != nil {
			records[label] = domain.OffTerm()
			continue
		}
		list := make([]domain.Grade, len(grades))
		for i, g := range grades {
			list[i] = domain.Grade(strings.TrimSpace(g))
		}
		records[label] = domain.Graded(list...)
	}
	return records, nil
}

// LoadRecords reads, validates and converts a term records file.
func LoadRecords(path string) (domain.TermRecords, error) {
	schema, err := LoadImportSchema(path)
	if err != nil {
		return nil, err
	}
	return Convert(schema)
}
