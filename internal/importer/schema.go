package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a term records file. It
// has the same shape as the scoring request body, so a captured request can
// be replayed as-is:
//
//	{"terms": {"Freshman Fall": ["A", "B+"], "Sophomore Summer": "Off-Term"}}
//
// Values are kept raw until validation so every problem in the file can be
// reported at once.
type ImportSchema struct {
	Terms map[string]json.RawMessage `json:"terms"`
}

// LoadImportSchema reads and parses a term records JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if schema.Terms == nil {
		return nil, fmt.Errorf("parsing import file: missing \"terms\" object")
	}
	return &schema, nil
}
