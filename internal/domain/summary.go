package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GPA is a number-like value returned by the scoring service. The service
// may send a JSON number or a numeric string; the original text is kept so
// it displays exactly as received.
type GPA string

// Float parses the value. Non-numeric text yields an error.
func (g GPA) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(g)), 64)
}

func (g GPA) String() string { return string(g) }

func (g GPA) MarshalJSON() ([]byte, error) {
	raw := []byte(strings.TrimSpace(string(g)))
	if _, err := g.Float(); err == nil && json.Valid(raw) {
		return raw, nil
	}
	return json.Marshal(string(g))
}

func (g *GPA) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GPA(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("gpa must be a number or string: %w", err)
	}
	*g = GPA(n.String())
	return nil
}

// GPASummary is the scoring service's answer for one submission.
type GPASummary struct {
	CumulativeGPA GPA            `json:"cumulative_gpa"`
	TermGPAs      map[string]GPA `json:"term_gpas"`
}

// TermLabels returns the scored term labels in catalog order.
func (s *GPASummary) TermLabels() []string {
	labels := make([]string, 0, len(s.TermGPAs))
	for k := range s.TermGPAs {
		labels = append(labels, k)
	}
	sortLabels(labels)
	return labels
}
