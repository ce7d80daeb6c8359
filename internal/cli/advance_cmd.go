package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverral/umbra/internal/cli/formatter"
	"github.com/mverral/umbra/internal/contract"
)

func newAdvanceCmd(app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move to the next week once the gate is met",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}

			prog, err := app.Programs.Advance(context.Background(), defaultUser, at)
			if err != nil {
				return err
			}

			bw := prog.BoundWeekFor(prog.CurrentWeek)
			fmt.Printf("Welcome to week %d: %s\n", prog.CurrentWeek, formatter.Bold(bw.Theme.Title))
			fmt.Println(formatter.Dim(bw.Theme.Goal))
			return nil
		},
	}

	addAtFlag(cmd.Flags(), &atFlag)
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-week progress and the advance gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Dashboard.GetDashboard(context.Background(), defaultUser, nil)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(view))
			return nil
		},
	}
}

func newRecommendCmd(app *App) *cobra.Command {
	var limit int
	var show string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank this week's exercises for you",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Recommend.Recommend(context.Background(), contract.RecommendRequest{
				UserID: defaultUser,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if show != "" {
				for _, rec := range resp.Recommendations {
					if rec.Exercise.ID == show {
						fmt.Print(formatter.FormatExerciseDetail(rec))
						return nil
					}
				}
				return fmt.Errorf("exercise %q is not in this week's list", show)
			}

			fmt.Print(formatter.FormatRecommendations(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N recommendations")
	cmd.Flags().StringVar(&show, "show", "", "Show full instructions for one exercise id")
	return cmd
}
