package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/alexanderramin/termtracker/internal/repository"
	"github.com/alexanderramin/termtracker/internal/scorer"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/google/uuid"
)

// ErrSuperseded is returned when a newer computation was started before
// this one finished. The tracker ignores the superseded outcome.
var ErrSuperseded = errors.New("computation superseded by a newer request")

type trackerService struct {
	tracker  *tracker.Tracker
	scorer   scorer.Client
	history  repository.SubmissionRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewTrackerService wires a tracker to a scorer. history may be nil, in
// which case submissions are not recorded.
func NewTrackerService(t *tracker.Tracker, client scorer.Client, history repository.SubmissionRepo, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		tracker:  t,
		scorer:   client,
		history:  history,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *trackerService) Compute(ctx context.Context) (*domain.GPASummary, error) {
	start := s.now()
	ticket := s.tracker.BeginCompute()

	summary, err := s.scorer.Score(ctx, ticket.Terms)
	applied := s.tracker.CompleteCompute(ticket, summary, err)

	outcome := domain.OutcomeSucceeded
	switch {
	case !applied:
		outcome = domain.OutcomeDiscarded
	case err != nil:
		outcome = domain.OutcomeFailed
	}

	var histErr error
	if s.history != nil {
		histErr = s.record(ctx, start, ticket.Terms, outcome, summary, err)
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "compute_gpa",
		StartedAt: start,
		Duration:  s.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields: map[string]any{
			"terms":      len(ticket.Terms),
			"generation": ticket.Generation,
			"outcome":    string(outcome),
		},
	})

	if !applied {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	if histErr != nil {
		return summary, histErr
	}
	return summary, nil
}

func (s *trackerService) record(ctx context.Context, at time.Time, terms domain.TermRecords, outcome domain.SubmissionOutcome, summary *domain.GPASummary, scoreErr error) error {
	sub := &domain.Submission{
		ID:          uuid.New().String(),
		SubmittedAt: at.UTC(),
		Terms:       terms,
		Outcome:     outcome,
	}
	if scoreErr != nil {
		sub.ErrorMessage = tracker.ErrorMessage(scoreErr)
	} else if summary != nil {
		sub.CumulativeGPA = summary.CumulativeGPA
	}
	if err := s.history.Create(ctx, sub); err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

func (s *trackerService) History(ctx context.Context, limit int) ([]*domain.Submission, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListRecent(ctx, limit)
}

func (s *trackerService) ClearHistory(ctx context.Context) (int64, error) {
	if s.history == nil {
		return 0, nil
	}
	return s.history.DeleteAll(ctx)
}

func (s *trackerService) HistoryEnabled() bool {
	return s.history != nil
}
