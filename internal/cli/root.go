package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "termtracker" command and registers all
// subcommands against the provided App. With no subcommand it opens the TUI
// on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "termtracker",
		Short:         "Record term grades and compute GPA",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			run := app.RunTUI
			if run == nil {
				run = runTUI
			}
			return run(app)
		},
	}

	root.AddCommand(
		newComputeCmd(app),
		newTermsCmd(),
		newGradesCmd(),
		newHistoryCmd(app),
	)

	return root
}
