package domain

import "time"

type SubmissionOutcome string

const (
	OutcomeSucceeded SubmissionOutcome = "succeeded"
	OutcomeFailed    SubmissionOutcome = "failed"
	OutcomeDiscarded SubmissionOutcome = "discarded"
)

// Submission is one recorded computeGpa attempt.
type Submission struct {
	ID            string
	SubmittedAt   time.Time
	Terms         TermRecords
	Outcome       SubmissionOutcome
	CumulativeGPA GPA
	ErrorMessage  string
}
