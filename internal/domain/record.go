package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// OffTermMarker is the wire value of a term the student was not enrolled in.
const OffTermMarker = "Off-Term"

// TermKind distinguishes the two shapes a recorded term can take.
type TermKind int

const (
	TermGraded TermKind = iota
	TermOffTerm
)

// TermValue is either an ordered, non-empty list of grades or the off-term
// marker. The zero value is an empty Graded value and is never stored.
type TermValue struct {
	kind   TermKind
	grades []Grade
}

// Graded builds a graded term value holding a copy of grades.
func Graded(grades ...Grade) TermValue {
	cp := make([]Grade, len(grades))
	copy(cp, grades)
	return TermValue{kind: TermGraded, grades: cp}
}

// OffTerm builds the off-term value.
func OffTerm() TermValue {
	return TermValue{kind: TermOffTerm}
}

func (v TermValue) Kind() TermKind { return v.kind }

func (v TermValue) IsOffTerm() bool { return v.kind == TermOffTerm }

// Grades returns a copy of the grade list. It is nil for an off-term value.
func (v TermValue) Grades() []Grade {
	if v.kind != TermGraded {
		return nil
	}
	cp := make([]Grade, len(v.grades))
	copy(cp, v.grades)
	return cp
}

// Append returns a new graded value with g added at the end.
// Appending to an off-term value starts a fresh list.
func (v TermValue) Append(g Grade) TermValue {
	if v.kind == TermOffTerm {
		return Graded(g)
	}
	next := make([]Grade, len(v.grades), len(v.grades)+1)
	copy(next, v.grades)
	return TermValue{kind: TermGraded, grades: append(next, g)}
}

// String renders the value the way the term panel displays it.
func (v TermValue) String() string {
	if v.kind == TermOffTerm {
		return OffTermMarker
	}
	parts := make([]string, len(v.grades))
	for i, g := range v.grades {
		parts[i] = string(g)
	}
	return strings.Join(parts, ",")
}

func (v TermValue) MarshalJSON() ([]byte, error) {
	if v.kind == TermOffTerm {
		return json.Marshal(OffTermMarker)
	}
	grades := v.grades
	if grades == nil {
		grades = []Grade{}
	}
	return json.Marshal(grades)
}

func (v *TermValue) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != OffTermMarker {
			return fmt.Errorf("unexpected term marker %q", marker)
		}
		*v = OffTerm()
		return nil
	}
	var grades []Grade
	if err := json.Unmarshal(data, &grades); err != nil {
		return fmt.Errorf("decoding term value: %w", err)
	}
	if len(grades) == 0 {
		return fmt.Errorf("graded term must have at least one grade")
	}
	*v = Graded(grades...)
	return nil
}

// TermRecords maps a term label to its recorded value. A missing key means
// nothing has been entered for that term.
type TermRecords map[string]TermValue

// Clone returns an independent copy of r.
func (r TermRecords) Clone() TermRecords {
	out := make(TermRecords, len(r))
	for k, v := range r {
		out[k] = TermValue{kind: v.kind, grades: append([]Grade(nil), v.grades...)}
	}
	return out
}

// Labels returns the recorded term labels in catalog order. Labels outside
// the catalog sort last, alphabetically.
func (r TermRecords) Labels() []string {
	labels := make([]string, 0, len(r))
	for k := range r {
		labels = append(labels, k)
	}
	sortLabels(labels)
	return labels
}

func sortLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		return labelLess(labels[i], labels[j])
	})
}

func labelLess(a, b string) bool {
	ia, ib := TermIndex(a), TermIndex(b)
	switch {
	case ia >= 0 && ib >= 0:
		return ia < ib
	case ia >= 0:
		return true
	case ib >= 0:
		return false
	default:
		return a < b
	}
}
