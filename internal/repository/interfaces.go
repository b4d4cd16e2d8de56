package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error)
	DeleteAll(ctx context.Context) (int64, error)
}
