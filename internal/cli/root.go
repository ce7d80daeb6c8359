package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mverral/umbra/internal/service"
)

// defaultUser is the single local profile every command operates on.
const defaultUser = "local"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Programs  service.ProgramService
	Profiles  service.ProfileService
	Recommend service.RecommendService
	Dashboard service.DashboardService
	Exchange  service.ExchangeService

	// IsInteractive reports whether stdin is a terminal; forms are only
	// offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "umbra" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "umbra",
		Short: "Shadow work program for your inferior cognitive function",
	}

	root.AddCommand(
		newStartCmd(app),
		newLogCmd(app),
		newReflectCmd(app),
		newAdvanceCmd(app),
		newStatusCmd(app),
		newRecommendCmd(app),
		newDashboardCmd(app),
		newProfileCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

// addAtFlag registers the shared --at flag for back-dating an action.
func addAtFlag(fs *pflag.FlagSet, dest *string) {
	fs.StringVar(dest, "at", "", "Timestamp for the action (YYYY-MM-DD or RFC3339, default now)")
}

// parseAtFlag turns the --at value into an optional timestamp. Bare dates
// resolve to noon local time so day-based streak math lands on the right day.
func parseAtFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --at value %q: want YYYY-MM-DD or RFC3339", value)
	}
	t := d.Add(12 * time.Hour)
	return &t, nil
}
