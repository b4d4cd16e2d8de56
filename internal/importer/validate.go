package importer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// ValidateImportSchema checks every term in the file against the catalogs.
// Returns a slice of all validation errors found, ordered by term label.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	labels := make([]string, 0, len(schema.Terms))
	for label := range schema.Terms {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if !domain.ValidTerms[label] {
			errs = append(errs, fmt.Errorf("terms: unknown term %q", label))
			continue
		}
		errs = append(errs, validateTermValue(label, schema.Terms[label])...)
	}
	return errs
}

func validateTermValue(label string, raw json.RawMessage) []error {
	var marker string
	if err := json.Unmarshal(raw, &marker); err == nil {
		if marker != domain.OffTermMarker {
			return []error{fmt.Errorf("terms[%q]: expected %q or a list of grades, got %q", label, domain.OffTermMarker, marker)}
		}
		return nil
	}

	var grades []string
	if err := json.Unmarshal(raw, &grades); err != nil {
		return []error{fmt.Errorf("terms[%q]: expected %q or a list of grades", label, domain.OffTermMarker)}
	}
	if len(grades) == 0 {
		return []error{fmt.Errorf("terms[%q]: grade list is empty", label)}
	}

	var errs []error
	for i, g := range grades {
		if !domain.ValidGrades[domain.Grade(strings.TrimSpace(g))] {
			errs = append(errs, fmt.Errorf("terms[%q][%d]: unknown grade %q", label, i, g))
		}
	}
	return errs
}
