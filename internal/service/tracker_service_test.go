package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/alexanderramin/termtracker/internal/repository"
	"github.com/alexanderramin/termtracker/internal/scorer"
	"github.com/alexanderramin/termtracker/internal/testutil"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorerFunc func(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error)

func (f scorerFunc) Score(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error) {
	return f(ctx, terms)
}

type recordingUseCaseObserver struct {
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func seededTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	tr := tracker.New()
	for _, g := range []string{"A", "B+"} {
		tr.SetPendingGrade(g)
		require.True(t, tr.AddGrade().Accepted())
	}
	return tr
}

func TestCompute_SuccessAppliesSummaryAndRecordsHistory(t *testing.T) {
	tr := seededTracker(t)
	fake := testutil.NewFakeScorer(testutil.FakeResponse{Summary: testutil.Summary("3.65", "Freshman Fall", "3.65")})
	history := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	obs := &recordingUseCaseObserver{}
	svc := NewTrackerService(tr, fake, history, obs)
	ctx := context.Background()

	summary, err := svc.Compute(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.GPA("3.65"), summary.CumulativeGPA)
	assert.Equal(t, summary, tr.Result())
	assert.Empty(t, tr.Error())
	assert.Equal(t, tracker.Succeeded, tr.State())

	require.Equal(t, 1, fake.CallCount())
	assert.Equal(t, []domain.Grade{"A", "B+"}, fake.Calls[0]["Freshman Fall"].Grades())

	subs, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.OutcomeSucceeded, subs[0].Outcome)
	assert.Equal(t, domain.GPA("3.65"), subs[0].CumulativeGPA)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "compute_gpa", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].Fields["terms"])
	assert.Equal(t, "succeeded", obs.events[0].Fields["outcome"])
}

func TestCompute_RemoteErrorSurfacesMessage(t *testing.T) {
	tr := seededTracker(t)
	remote := &scorer.RemoteError{Status: 400, Message: "Invalid grade format"}
	fake := testutil.NewFakeScorer(testutil.FakeResponse{Err: remote})
	history := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	svc := NewTrackerService(tr, fake, history)
	ctx := context.Background()

	_, err := svc.Compute(ctx)
	assert.ErrorIs(t, err, scorer.ErrRemote)
	assert.Equal(t, "Invalid grade format", tr.Error())
	assert.Equal(t, tracker.Failed, tr.State())

	subs, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.OutcomeFailed, subs[0].Outcome)
	assert.Equal(t, "Invalid grade format", subs[0].ErrorMessage)
}

func TestCompute_UnstructuredErrorKeepsPriorResult(t *testing.T) {
	tr := seededTracker(t)
	first := testutil.Summary("3.65", "Freshman Fall", "3.65")
	fake := testutil.NewFakeScorer(
		testutil.FakeResponse{Summary: first},
		testutil.FakeResponse{Err: scorer.ErrUnavailable},
	)
	svc := NewTrackerService(tr, fake, nil)
	ctx := context.Background()

	_, err := svc.Compute(ctx)
	require.NoError(t, err)
	_, err = svc.Compute(ctx)
	assert.ErrorIs(t, err, scorer.ErrUnavailable)

	assert.Equal(t, tracker.GenericComputeError, tr.Error())
	assert.Equal(t, first, tr.Result(), "prior result stays displayed next to the error")
}

func TestCompute_SupersededResponseDiscarded(t *testing.T) {
	tr := seededTracker(t)
	history := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	var svc TrackerService
	calls := 0
	svc = NewTrackerService(tr, scorerFunc(func(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error) {
		calls++
		if calls == 1 {
			// A second submission overtakes the first one.
			_, err := svc.Compute(ctx)
			require.NoError(t, err)
			return testutil.Summary("1.00"), nil
		}
		return testutil.Summary("3.90"), nil
	}), history)

	_, err := svc.Compute(ctx)
	assert.ErrorIs(t, err, ErrSuperseded)

	require.NotNil(t, tr.Result())
	assert.Equal(t, domain.GPA("3.90"), tr.Result().CumulativeGPA)
	assert.False(t, tr.InFlight())

	subs, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	outcomes := []domain.SubmissionOutcome{subs[0].Outcome, subs[1].Outcome}
	assert.ElementsMatch(t, []domain.SubmissionOutcome{domain.OutcomeSucceeded, domain.OutcomeDiscarded}, outcomes)
}

func TestCompute_HistoryDisabled(t *testing.T) {
	tr := seededTracker(t)
	svc := NewTrackerService(tr, testutil.NewFakeScorer(testutil.FakeResponse{Summary: testutil.Summary("4.00")}), nil)
	ctx := context.Background()

	_, err := svc.Compute(ctx)
	require.NoError(t, err)

	assert.False(t, svc.HistoryEnabled())
	subs, err := svc.History(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, subs)
	n, err := svc.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClearHistory(t *testing.T) {
	tr := seededTracker(t)
	history := repository.NewSQLiteSubmissionRepo(testutil.NewTestDB(t))
	svc := NewTrackerService(tr, testutil.NewFakeScorer(testutil.FakeResponse{Summary: testutil.Summary("4.00")}), history)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Compute(ctx)
		require.NoError(t, err)
	}
	n, err := svc.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "compute_gpa",
		Success: true,
		Fields:  map[string]any{"terms": 2, "outcome": "succeeded"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "compute_gpa",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=compute_gpa")
	assert.Regexp(t, `outcome=succeeded terms=2`, out)
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
