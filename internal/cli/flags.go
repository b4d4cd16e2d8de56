package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/spf13/pflag"
)

// termGrades is one "Term=A,B+" flag occurrence.
type termGrades struct {
	Term   string
	Grades []string
}

// termGradesValue collects repeated --grades flags.
type termGradesValue struct {
	entries []termGrades
}

var _ pflag.Value = (*termGradesValue)(nil)

func (v *termGradesValue) String() string {
	parts := make([]string, len(v.entries))
	for i, e := range v.entries {
		parts[i] = e.Term + "=" + strings.Join(e.Grades, ",")
	}
	return strings.Join(parts, ";")
}

func (v *termGradesValue) Set(s string) error {
	term, list, ok := strings.Cut(s, "=")
	term = strings.TrimSpace(term)
	if !ok || term == "" {
		return fmt.Errorf("expected TERM=GRADE[,GRADE...], got %q", s)
	}
	if !domain.ValidTerms[term] {
		return fmt.Errorf("unknown term %q (see 'termtracker terms')", term)
	}
	var grades []string
	for _, g := range strings.Split(list, ",") {
		if g = strings.TrimSpace(g); g != "" {
			grades = append(grades, g)
		}
	}
	if len(grades) == 0 {
		return fmt.Errorf("term %q needs at least one grade", term)
	}
	v.entries = append(v.entries, termGrades{Term: term, Grades: grades})
	return nil
}

func (v *termGradesValue) Type() string { return "term=grades" }

// termListValue collects repeated term labels and validates each one.
type termListValue struct {
	terms []string
}

var _ pflag.Value = (*termListValue)(nil)

func (v *termListValue) String() string { return strings.Join(v.terms, ";") }

func (v *termListValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if !domain.ValidTerms[s] {
		return fmt.Errorf("unknown term %q (see 'termtracker terms')", s)
	}
	v.terms = append(v.terms, s)
	return nil
}

func (v *termListValue) Type() string { return "term" }
