package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/alexanderramin/termtracker/internal/repository"
	"github.com/alexanderramin/termtracker/internal/scorer"
	"github.com/alexanderramin/termtracker/internal/service"
	"github.com/alexanderramin/termtracker/internal/testutil"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, fake *testutil.FakeScorer) *App {
	t.Helper()
	tr := tracker.New()
	return &App{
		Tracker: tr,
		Service: service.NewTrackerService(tr, fake, nil),
	}
}

func testAppWithHistory(t *testing.T, fake *testutil.FakeScorer) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	tr := tracker.New()
	return &App{
		Tracker: tr,
		Service: service.NewTrackerService(tr, fake, repository.NewSQLiteSubmissionRepo(db)),
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t, testutil.NewFakeScorer())
	app.RunTUI = func(*App) error {
		t.Fatal("TUI must not start without a terminal")
		return nil
	}

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "termtracker")
	assert.Contains(t, out, "compute")
}

func TestRootCmd_InteractiveStartsTUI(t *testing.T) {
	app := testApp(t, testutil.NewFakeScorer())
	app.IsInteractive = func() bool { return true }
	started := false
	app.RunTUI = func(a *App) error {
		started = a == app
		return nil
	}

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.True(t, started)
}

// --- compute ---

func TestComputeCmd_Success(t *testing.T) {
	fake := testutil.NewFakeScorer(testutil.FakeResponse{
		Summary: testutil.Summary("3.65", "Freshman Fall", "3.65"),
	})
	app := testApp(t, fake)

	out, err := executeCmd(t, app, "compute",
		"--grades", "Freshman Fall=A, B+",
		"--off-term", "Sophomore Summer")
	require.NoError(t, err)

	require.Equal(t, 1, fake.CallCount())
	sent := fake.Calls[0]
	assert.Equal(t, []domain.Grade{"A", "B+"}, sent["Freshman Fall"].Grades())
	assert.True(t, sent["Sophomore Summer"].IsOffTerm())

	assert.Contains(t, out, "Cumulative GPA:")
	assert.Contains(t, out, "3.65")
	assert.Contains(t, out, domain.OffTermMarker)
	assert.Equal(t, tracker.Succeeded, app.Tracker.State())
}

func TestComputeCmd_JSON(t *testing.T) {
	fake := testutil.NewFakeScorer(testutil.FakeResponse{
		Summary: testutil.Summary("3.7", "Junior Fall", "3.7"),
	})
	app := testApp(t, fake)

	out, err := executeCmd(t, app, "compute", "--grades", "Junior Fall=A-", "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3.7, got["cumulative_gpa"])
	assert.Equal(t, map[string]any{"Junior Fall": 3.7}, got["term_gpas"])
}

func TestComputeCmd_InvalidGradeRejectedBeforeSubmit(t *testing.T) {
	fake := testutil.NewFakeScorer()
	app := testApp(t, fake)

	_, err := executeCmd(t, app, "compute", "--grades", "Freshman Fall=A,F")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `grade "F" rejected: unknown grade`)
	assert.Equal(t, 0, fake.CallCount())
}

func TestComputeCmd_UnknownTermFlag(t *testing.T) {
	app := testApp(t, testutil.NewFakeScorer())

	_, err := executeCmd(t, app, "compute", "--grades", "Fifth Year Fall=A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown term")

	_, err = executeCmd(t, app, "compute", "--off-term", "Senior Autumn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown term")
}

func TestComputeCmd_RemoteErrorMessage(t *testing.T) {
	fake := testutil.NewFakeScorer(testutil.FakeResponse{
		Err: &scorer.RemoteError{Status: 400, Message: "Invalid grade"},
	})
	app := testApp(t, fake)

	_, err := executeCmd(t, app, "compute", "--grades", "Freshman Fall=A")
	require.Error(t, err)
	assert.Equal(t, "Invalid grade", err.Error())
	assert.True(t, errors.Is(err, scorer.ErrRemote))
	assert.Equal(t, "Invalid grade", app.Tracker.Error())
}

func TestComputeCmd_UnavailableUsesGenericMessage(t *testing.T) {
	fake := testutil.NewFakeScorer(testutil.FakeResponse{Err: scorer.ErrUnavailable})
	app := testApp(t, fake)

	_, err := executeCmd(t, app, "compute")
	require.Error(t, err)
	assert.Equal(t, tracker.GenericComputeError, err.Error())
	assert.ErrorIs(t, err, scorer.ErrUnavailable)
}

func TestComputeCmd_FileWithFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"terms": {"Freshman Fall": ["A"], "Junior Fall": "Off-Term"}}`), 0o644))

	fake := testutil.NewFakeScorer(testutil.FakeResponse{Summary: testutil.Summary("3.85")})
	app := testApp(t, fake)

	_, err := executeCmd(t, app, "compute", "--file", path, "--grades", "Freshman Fall=B+")
	require.NoError(t, err)

	require.Equal(t, 1, fake.CallCount())
	sent := fake.Calls[0]
	assert.Equal(t, []domain.Grade{"A", "B+"}, sent["Freshman Fall"].Grades())
	assert.True(t, sent["Junior Fall"].IsOffTerm())
}

func TestComputeCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"terms": {"Freshman Fall": ["F"]}}`), 0o644))

	fake := testutil.NewFakeScorer()
	_, err := executeCmd(t, testApp(t, fake), "compute", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown grade "F"`)
	assert.Equal(t, 0, fake.CallCount())
}

// --- catalogs ---

func TestTermsCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t, testutil.NewFakeScorer()), "terms")
	require.NoError(t, err)
	for _, label := range domain.TermCatalog {
		assert.Contains(t, out, label)
	}
}

func TestGradesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t, testutil.NewFakeScorer()), "grades")
	require.NoError(t, err)
	for _, g := range domain.GradeCatalog {
		assert.Contains(t, out, string(g))
	}
}

// --- history ---

func TestHistoryCmd_Disabled(t *testing.T) {
	app := testApp(t, testutil.NewFakeScorer())

	_, err := executeCmd(t, app, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TERMTRACKER_DB")

	_, err = executeCmd(t, app, "history", "clear")
	require.Error(t, err)
}

func TestHistoryCmd_ListsAndClears(t *testing.T) {
	fake := testutil.NewFakeScorer(
		testutil.FakeResponse{Summary: testutil.Summary("3.20")},
		testutil.FakeResponse{Err: &scorer.RemoteError{Status: 422, Message: "Unknown term"}},
	)
	app := testAppWithHistory(t, fake)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No submissions recorded.")

	_, err = executeCmd(t, app, "compute", "--grades", "Freshman Fall=B")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "compute")
	require.Error(t, err)

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "3.20")
	assert.Contains(t, out, "Unknown term")
	assert.Contains(t, out, "failed")

	out, err = executeCmd(t, app, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 submission(s)")

	out, err = executeCmd(t, app, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No submissions recorded.")
}
