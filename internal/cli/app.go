package cli

import (
	"github.com/alexanderramin/termtracker/internal/service"
	"github.com/alexanderramin/termtracker/internal/tracker"
)

// App holds the session state and services used by CLI commands and the TUI.
type App struct {
	Tracker *tracker.Tracker
	Service service.TrackerService

	// Endpoint is shown in the TUI footer.
	Endpoint string

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// RunTUI starts the interactive tracker. Defaults to runTUI.
	RunTUI func(app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
