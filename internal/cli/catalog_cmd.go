package cli

import (
	"fmt"

	"github.com/alexanderramin/termtracker/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the selectable terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTermCatalog())
			return nil
		},
	}
}

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "List the accepted grades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGradeCatalog())
			return nil
		},
	}
}
