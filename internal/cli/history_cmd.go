package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/termtracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past GPA submissions",
		Long:  "Show past GPA submissions. History is recorded only when TERMTRACKER_DB is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Service.HistoryEnabled() {
				return fmt.Errorf("submission history is disabled; set TERMTRACKER_DB to enable it")
			}
			subs, err := app.Service.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(subs, time.Now()))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of submissions to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Service.HistoryEnabled() {
				return fmt.Errorf("submission history is disabled; set TERMTRACKER_DB to enable it")
			}
			n, err := app.Service.ClearHistory(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %d submission(s)\n", formatter.StyleGreen.Render("✔"), n)
			return nil
		},
	})

	return cmd
}
