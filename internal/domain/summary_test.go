package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPASummary_DecodeNumbers(t *testing.T) {
	var s GPASummary
	require.NoError(t, json.Unmarshal([]byte(`{"cumulative_gpa": 3.65, "term_gpas": {"Freshman Fall": 3.65}}`), &s))

	assert.Equal(t, GPA("3.65"), s.CumulativeGPA)
	assert.Equal(t, GPA("3.65"), s.TermGPAs["Freshman Fall"])
	f, err := s.CumulativeGPA.Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.65, f, 1e-9)
}

func TestGPASummary_DecodeNumericStrings(t *testing.T) {
	var s GPASummary
	require.NoError(t, json.Unmarshal([]byte(`{"cumulative_gpa": "3.50", "term_gpas": {"Junior Fall": "4.00"}}`), &s))

	assert.Equal(t, GPA("3.50"), s.CumulativeGPA, "string text is kept as sent")
	assert.Equal(t, GPA("4.00"), s.TermGPAs["Junior Fall"])
}

func TestGPA_RejectsObjects(t *testing.T) {
	var g GPA
	assert.Error(t, json.Unmarshal([]byte(`{"v": 1}`), &g))
}

func TestGPA_MarshalKeepsNumbersNumeric(t *testing.T) {
	data, err := json.Marshal(GPASummary{CumulativeGPA: "3.65", TermGPAs: map[string]GPA{"Senior Fall": "n/a"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cumulative_gpa":3.65,"term_gpas":{"Senior Fall":"n/a"}}`, string(data))
}

func TestGPASummary_TermLabelsInCatalogOrder(t *testing.T) {
	s := GPASummary{TermGPAs: map[string]GPA{
		"Senior Fall":   "3.0",
		"Freshman Fall": "3.5",
		"Junior Spring": "3.2",
	}}
	assert.Equal(t, []string{"Freshman Fall", "Junior Spring", "Senior Fall"}, s.TermLabels())
}
