package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverral/umbra/internal/cli/formatter"
	"github.com/mverral/umbra/internal/contract"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and enrich your psychological profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileTriggerCmd(app),
		newProfilePatternCmd(app),
		newProfileBreakthroughCmd(app),
		newProfileGrowthCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := app.Profiles.Get(context.Background(), defaultUser)
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.Header(fmt.Sprintf("%s profile", prof.Type)))
			b.WriteString("\n\n")
			b.WriteString(fmt.Sprintf("Stack: %s › %s › %s › %s\n",
				prof.Dominant, prof.Auxiliary, prof.Tertiary,
				formatter.Bold(string(prof.Inferior))))
			b.WriteString(formatter.IntegrationBar(prof.IntegrationLevel))
			b.WriteString("\n\n")

			writeList(&b, "Triggers", prof.Triggers)
			writeList(&b, "Patterns", prof.Patterns)

			if len(prof.GrowthAreas) > 0 {
				b.WriteString(formatter.Bold("Growth areas") + "\n")
				for _, g := range prof.GrowthAreas {
					b.WriteString(fmt.Sprintf("  %-24s %s\n", g.Name,
						formatter.RenderProgress(float64(g.Progress)/100, 12)))
				}
				b.WriteString("\n")
			}
			if len(prof.Breakthroughs) > 0 {
				b.WriteString(formatter.Bold("Breakthroughs") + "\n")
				for _, bt := range prof.Breakthroughs {
					b.WriteString(fmt.Sprintf("  week %d  %s  %s\n", bt.Week,
						formatter.Dim(formatter.HumanTimestamp(bt.OccurredAt)), bt.Note))
				}
			}

			fmt.Print(b.String())
			return nil
		},
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(formatter.Bold(title) + "\n")
	for _, it := range items {
		b.WriteString("  · " + it + "\n")
	}
	b.WriteString("\n")
}

func newProfileTriggerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trigger <text>",
		Short: "Record a trigger that pushes you into the shadow",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trigger := strings.Join(args, " ")
			if err := app.Profiles.AddTrigger(context.Background(), defaultUser, trigger); err != nil {
				return err
			}
			fmt.Printf("Trigger recorded: %s\n", trigger)
			return nil
		},
	}
}

func newProfilePatternCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <text>",
		Short: "Record a behavior pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := strings.Join(args, " ")
			if err := app.Profiles.AddPattern(context.Background(), defaultUser, pattern); err != nil {
				return err
			}
			fmt.Printf("Pattern recorded: %s\n", pattern)
			return nil
		},
	}
}

func newProfileBreakthroughCmd(app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "breakthrough <text>",
		Short: "Record a breakthrough, tagged with the current week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}
			b, err := app.Profiles.RecordBreakthrough(context.Background(), contract.BreakthroughRequest{
				UserID: defaultUser,
				Note:   strings.Join(args, " "),
				Now:    at,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Breakthrough recorded for week %d.\n", b.Week)
			return nil
		},
	}

	addAtFlag(cmd.Flags(), &atFlag)
	return cmd
}

func newProfileGrowthCmd(app *App) *cobra.Command {
	var progressPct int

	cmd := &cobra.Command{
		Use:   "growth <name>",
		Short: "Set progress on a named growth area",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := app.Profiles.SetGrowthArea(context.Background(), defaultUser, name, progressPct); err != nil {
				return err
			}
			fmt.Printf("Growth area %q at %d%%.\n", name, progressPct)
			return nil
		},
	}

	cmd.Flags().IntVar(&progressPct, "progress", 0, "Progress percentage 0-100")
	_ = cmd.MarkFlagRequired("progress")
	return cmd
}
