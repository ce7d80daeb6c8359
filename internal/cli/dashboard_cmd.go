package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mverral/umbra/internal/cli/formatter"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Live program dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Outside a terminal, print the same content once and exit.
			if !app.interactive() {
				view, err := app.Dashboard.GetDashboard(context.Background(), defaultUser, nil)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatDashboard(view))
				return nil
			}

			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
