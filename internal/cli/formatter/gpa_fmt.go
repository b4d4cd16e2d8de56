package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// NoCoursesText is shown for a term with nothing recorded.
const NoCoursesText = "No Courses Added"

// FormatTermValue renders one term's recorded value.
func FormatTermValue(v domain.TermValue, ok bool) string {
	if !ok {
		return Dim(NoCoursesText)
	}
	if v.IsOffTerm() {
		return StylePurple.Render(domain.OffTermMarker)
	}
	grades := v.Grades()
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = GradeStyle(g).Render(string(g))
	}
	return strings.Join(parts, Dim(", "))
}

// FormatRecords renders every recorded term in catalog order.
func FormatRecords(records domain.TermRecords) string {
	if len(records) == 0 {
		return Dim("No terms recorded.")
	}
	labels := records.Labels()
	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		v := records[label]
		count := fmt.Sprintf("%d", len(v.Grades()))
		if v.IsOffTerm() {
			count = Dim("--")
		}
		rows = append(rows, []string{label, FormatTermValue(v, true), count})
	}
	return RenderTable([]string{"TERM", "GRADES", "COURSES"}, rows)
}

// FormatSummary renders a GPA summary: the cumulative value followed by
// one line per scored term.
func FormatSummary(s *domain.GPASummary) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Cumulative GPA:"), GPAStyle(s.CumulativeGPA).Bold(true).Render(s.CumulativeGPA.String())))

	labels := s.TermLabels()
	if len(labels) > 0 {
		rows := make([][]string, 0, len(labels))
		for _, label := range labels {
			gpa := s.TermGPAs[label]
			rows = append(rows, []string{label, GPAStyle(gpa).Render(gpa.String())})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"TERM", "GPA"}, rows))
	}
	return RenderBox("GPA", strings.TrimRight(b.String(), "\n"))
}

// FormatError renders an error message line.
func FormatError(msg string) string {
	return StyleRed.Bold(true).Render(msg)
}

// FormatTermCatalog lists the selectable term labels.
func FormatTermCatalog() string {
	rows := make([][]string, len(domain.TermCatalog))
	for i, t := range domain.TermCatalog {
		rows[i] = []string{Dim(fmt.Sprintf("%2d", i+1)), t}
	}
	return RenderTable([]string{"#", "TERM"}, rows)
}

// FormatGradeCatalog lists the accepted grade tokens on one line.
func FormatGradeCatalog() string {
	parts := make([]string, len(domain.GradeCatalog))
	for i, g := range domain.GradeCatalog {
		parts[i] = GradeStyle(g).Render(string(g))
	}
	return strings.Join(parts, "  ")
}

// FormatHistory renders past submissions, newest first.
func FormatHistory(subs []*domain.Submission, now time.Time) string {
	if len(subs) == 0 {
		return Dim("No submissions recorded.")
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		result := GPAStyle(s.CumulativeGPA).Render(s.CumulativeGPA.String())
		switch s.Outcome {
		case domain.OutcomeFailed:
			result = StyleRed.Render(s.ErrorMessage)
		case domain.OutcomeDiscarded:
			result = Dim("superseded")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestampFrom(s.SubmittedAt, now),
			fmt.Sprintf("%d", len(s.Terms)),
			OutcomePill(s.Outcome),
			result,
		})
	}
	return RenderTable([]string{"ID", "SUBMITTED", "TERMS", "OUTCOME", "RESULT"}, rows)
}

// OutcomePill returns a colored indicator for a submission outcome.
func OutcomePill(o domain.SubmissionOutcome) string {
	switch o {
	case domain.OutcomeSucceeded:
		return StyleGreen.Render("✔ ok")
	case domain.OutcomeFailed:
		return StyleRed.Render("✖ failed")
	case domain.OutcomeDiscarded:
		return StyleDim.Render("⊘ superseded")
	default:
		return StyleDim.Render(string(o))
	}
}
