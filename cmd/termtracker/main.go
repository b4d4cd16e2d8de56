package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/termtracker/internal/cli"
	"github.com/alexanderramin/termtracker/internal/db"
	"github.com/alexanderramin/termtracker/internal/repository"
	"github.com/alexanderramin/termtracker/internal/scorer"
	"github.com/alexanderramin/termtracker/internal/service"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg := scorer.LoadConfig()

	var observer scorer.Observer = scorer.NoopObserver{}
	var useCaseObservers []service.UseCaseObserver
	if cfg.LogCalls {
		observer = scorer.NewLogObserver(os.Stderr)
		useCaseObservers = append(useCaseObservers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Submission history is opt-in.
	var history repository.SubmissionRepo
	if dbPath := os.Getenv("TERMTRACKER_DB"); dbPath != "" {
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		history = repository.NewSQLiteSubmissionRepo(database)
	}

	t := tracker.New()
	app := &cli.App{
		Tracker:  t,
		Service:  service.NewTrackerService(t, scorer.NewHTTPClient(cfg, observer), history, useCaseObservers...),
		Endpoint: cfg.Endpoint,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
