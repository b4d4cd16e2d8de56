package domain

// Grade is a letter-grade token from the grade catalog.
type Grade string

// TermCatalog is the ordered list of academic-year slots a record can hold.
var TermCatalog = []string{
	"Freshman Fall", "Freshman Winter", "Freshman Spring", "Freshman Summer",
	"Sophomore Fall", "Sophomore Winter", "Sophomore Spring", "Sophomore Summer",
	"Junior Fall", "Junior Winter", "Junior Spring", "Junior Summer",
	"Senior Fall", "Senior Winter", "Senior Spring", "Senior Summer",
}

// GradeCatalog is the ordered list of accepted grade tokens.
var GradeCatalog = []Grade{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "E"}

// ValidTerms is the canonical set of accepted term labels.
var ValidTerms = func() map[string]bool {
	m := make(map[string]bool, len(TermCatalog))
	for _, t := range TermCatalog {
		m[t] = true
	}
	return m
}()

// ValidGrades is the canonical set of accepted grade tokens.
var ValidGrades = func() map[Grade]bool {
	m := make(map[Grade]bool, len(GradeCatalog))
	for _, g := range GradeCatalog {
		m[g] = true
	}
	return m
}()

// DefaultTerm is the term selected when a session starts.
func DefaultTerm() string {
	return TermCatalog[0]
}

// TermIndex returns the catalog position of label, or -1 when unknown.
func TermIndex(label string) int {
	for i, t := range TermCatalog {
		if t == label {
			return i
		}
	}
	return -1
}

// GradeStrings returns the grade catalog as plain strings, for suggestions.
func GradeStrings() []string {
	out := make([]string, len(GradeCatalog))
	for i, g := range GradeCatalog {
		out[i] = string(g)
	}
	return out
}
