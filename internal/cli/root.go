package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/autowatch/internal/cli/formatter"
	"github.com/alexanderramin/autowatch/internal/service"
)

// App holds the services the CLI drives.
type App struct {
	Watch service.WatchService
}

// NewRootCmd creates the "autowatch" command. It takes no flags; everything
// else is asked interactively or read from the environment.
func NewRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "autowatch",
		Short: "Mark course videos as watched",
		Long: `autowatch signs in to the education platform, lets you pick subjects and
units, and marks every embedded video in them as fully watched.

The bearer token is read from AUTOWATCH_TOKEN (or a .env file) and asked for
when missing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Watch.Run(cmd.Context())
			if summary != nil && summary.SubjectsVisited > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderSummary(*summary))
			}
			return err
		},
	}
}
