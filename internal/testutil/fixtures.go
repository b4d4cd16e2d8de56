package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/google/uuid"
)

// Submission options
type SubmissionOption func(*domain.Submission)

func WithOutcome(o domain.SubmissionOutcome) SubmissionOption {
	return func(s *domain.Submission) {
		s.Outcome = o
	}
}

func WithSubmittedAt(t time.Time) SubmissionOption {
	return func(s *domain.Submission) {
		s.SubmittedAt = t
	}
}

func WithErrorMessage(msg string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Outcome = domain.OutcomeFailed
		s.CumulativeGPA = ""
		s.ErrorMessage = msg
	}
}

func NewTestSubmission(terms domain.TermRecords, opts ...SubmissionOption) *domain.Submission {
	s := &domain.Submission{
		ID:            uuid.New().String(),
		SubmittedAt:   time.Now().UTC(),
		Terms:         terms,
		Outcome:       domain.OutcomeSucceeded,
		CumulativeGPA: "3.50",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleRecords returns a small record set covering both term shapes.
func SampleRecords() domain.TermRecords {
	return domain.TermRecords{
		"Freshman Fall":    domain.Graded("A", "B+"),
		"Freshman Winter":  domain.Graded("A-"),
		"Sophomore Summer": domain.OffTerm(),
	}
}

// FakeScorer is a scripted scorer.Client. Each call pops the next response;
// when the script runs out the last entry repeats.
type FakeScorer struct {
	mu      sync.Mutex
	script  []FakeResponse
	Calls   []domain.TermRecords
	Release chan struct{} // when non-nil, Score blocks until it receives
}

// FakeResponse is one scripted outcome.
type FakeResponse struct {
	Summary *domain.GPASummary
	Err     error
}

func NewFakeScorer(script ...FakeResponse) *FakeScorer {
	return &FakeScorer{script: script}
}

func (f *FakeScorer) Score(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, terms.Clone())
	var resp FakeResponse
	if len(f.script) > 0 {
		resp = f.script[0]
		if len(f.script) > 1 {
			f.script = f.script[1:]
		}
	}
	release := f.Release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return resp.Summary, resp.Err
}

// CallCount returns how many times Score ran.
func (f *FakeScorer) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// Summary builds a GPASummary from a cumulative value and alternating
// label/value pairs.
func Summary(cumulative string, termPairs ...string) *domain.GPASummary {
	s := &domain.GPASummary{
		CumulativeGPA: domain.GPA(cumulative),
		TermGPAs:      map[string]domain.GPA{},
	}
	for i := 0; i+1 < len(termPairs); i += 2 {
		s.TermGPAs[termPairs[i]] = domain.GPA(termPairs[i+1])
	}
	return s
}
