package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/termtracker/internal/cli/formatter"
	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/alexanderramin/termtracker/internal/importer"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/spf13/cobra"
)

// computeError carries the user-facing message for a failed computation
// while keeping the underlying cause for errors.Is.
type computeError struct {
	message string
	cause   error
}

func (e *computeError) Error() string { return e.message }
func (e *computeError) Unwrap() error { return e.cause }

func newComputeCmd(app *App) *cobra.Command {
	var grades termGradesValue
	var offTerms termListValue
	var asJSON bool
	var file string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Submit grades for GPA computation",
		Example: `  termtracker compute --grades "Freshman Fall=A,B+" --grades "Freshman Winter=A-"
  termtracker compute --grades "Junior Fall=B" --off-term "Junior Winter" --json
  termtracker compute --file terms.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				records, err := importer.LoadRecords(file)
				if err != nil {
					return err
				}
				if err := replayRecords(app.Tracker, records); err != nil {
					return err
				}
			}
			if err := loadTerms(app.Tracker, grades.entries, offTerms.terms); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			summary, err := app.Service.Compute(context.Background())
			if err != nil {
				return &computeError{message: tracker.ErrorMessage(err), cause: err}
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			fmt.Fprintln(out, formatter.FormatRecords(app.Tracker.Records()))
			fmt.Fprintln(out, formatter.FormatSummary(summary))
			return nil
		},
	}

	cmd.Flags().Var(&grades, "grades", `Grades for a term as "TERM=GRADE,GRADE" (repeatable)`)
	cmd.Flags().Var(&offTerms, "off-term", "Mark a term as off-term (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the service response as JSON")
	cmd.Flags().StringVarP(&file, "file", "f", "", `Load terms from a JSON file shaped like {"terms": {...}}`)

	return cmd
}

// loadTerms replays flag input through the tracker's own operations so the
// same validation applies as in the TUI. Off-term flags are applied last.
func loadTerms(t *tracker.Tracker, entries []termGrades, offTerms []string) error {
	for _, e := range entries {
		if err := t.SelectTerm(e.Term); err != nil {
			return fmt.Errorf("%s: %w", e.Term, err)
		}
		for _, g := range e.Grades {
			t.SetPendingGrade(g)
			if res := t.AddGrade(); !res.Accepted() {
				return fmt.Errorf("%s: grade %q %s", e.Term, g, res)
			}
		}
	}
	for _, term := range offTerms {
		if err := t.SelectTerm(term); err != nil {
			return fmt.Errorf("%s: %w", term, err)
		}
		t.MarkOffTerm()
	}
	return nil
}

// replayRecords applies imported records in catalog order. Flags given
// alongside --file are applied afterwards and extend these records.
func replayRecords(t *tracker.Tracker, records domain.TermRecords) error {
	for _, label := range records.Labels() {
		v := records[label]
		if err := t.SelectTerm(label); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if v.IsOffTerm() {
			t.MarkOffTerm()
			continue
		}
		for _, g := range v.Grades() {
			t.SetPendingGrade(string(g))
			if res := t.AddGrade(); !res.Accepted() {
				return fmt.Errorf("%s: grade %q %s", label, g, res)
			}
		}
	}
	return nil
}
