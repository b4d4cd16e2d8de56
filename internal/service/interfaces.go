package service

import (
	"context"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// TrackerService runs the GPA computation for a tracker session and keeps
// the optional submission history.
type TrackerService interface {
	// Compute submits the tracker's current records and applies the outcome
	// to the tracker. The scorer's error is returned unchanged.
	Compute(ctx context.Context) (*domain.GPASummary, error)
	History(ctx context.Context, limit int) ([]*domain.Submission, error)
	ClearHistory(ctx context.Context) (int64, error)
	HistoryEnabled() bool
}
