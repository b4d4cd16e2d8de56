package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/termtracker/internal/db"
	"github.com/alexanderramin/termtracker/internal/domain"
)

// submittedAtLayout is fixed-width so submitted_at sorts lexically.
const submittedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(db db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	terms := s.Terms
	if terms == nil {
		terms = domain.TermRecords{}
	}
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("encoding submission terms: %w", err)
	}

	query := `INSERT INTO submissions (id, submitted_at, terms_json, outcome, cumulative_gpa, error_message)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.SubmittedAt.UTC().Format(submittedAtLayout),
		string(termsJSON),
		string(s.Outcome),
		string(s.CumulativeGPA),
		s.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT id, submitted_at, terms_json, outcome, cumulative_gpa, error_message
		FROM submissions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("submission: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, submitted_at, terms_json, outcome, cumulative_gpa, error_message
		FROM submissions ORDER BY submitted_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return out, nil
}

func (r *SQLiteSubmissionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions`)
	if err != nil {
		return 0, fmt.Errorf("deleting submissions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted submissions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var s domain.Submission
	var submittedAt, termsJSON, outcome, gpa string

	if err := row.Scan(&s.ID, &submittedAt, &termsJSON, &outcome, &gpa, &s.ErrorMessage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	t, err := time.Parse(submittedAtLayout, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing submitted_at: %w", err)
	}
	s.SubmittedAt = t
	s.Outcome = domain.SubmissionOutcome(outcome)
	s.CumulativeGPA = domain.GPA(gpa)

	if err := json.Unmarshal([]byte(termsJSON), &s.Terms); err != nil {
		return nil, fmt.Errorf("decoding submission terms: %w", err)
	}
	return &s, nil
}
