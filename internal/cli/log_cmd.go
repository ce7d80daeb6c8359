package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mverral/umbra/internal/cli/formatter"
	"github.com/mverral/umbra/internal/contract"
)

func newLogCmd(app *App) *cobra.Command {
	var minutes int
	var note, felt, atFlag string
	var insights []string
	var wantRepeat bool

	cmd := &cobra.Command{
		Use:   "log [exercise-id]",
		Short: "Log a completed exercise for the current week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var exerciseID string
			if len(args) > 0 {
				exerciseID = args[0]
			}

			if exerciseID == "" && app.interactive() {
				picked, err := pickExercise(ctx, app)
				if err != nil {
					return err
				}
				exerciseID = picked
			}
			if exerciseID == "" {
				return fmt.Errorf("exercise id required; see `umbra recommend`")
			}

			if minutes == 0 && app.interactive() {
				if err := runLogForm(&minutes, &note, &felt, &wantRepeat, &insights); err != nil {
					return err
				}
			}

			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}

			rec, err := app.Programs.LogCompletion(ctx, contract.LogCompletionRequest{
				UserID:         defaultUser,
				ExerciseID:     exerciseID,
				Minutes:        minutes,
				Note:           note,
				Insights:       insights,
				DifficultyFelt: felt,
				WantRepeat:     wantRepeat,
				Now:            at,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s (%d min).\n", formatter.Bold(exerciseID), rec.Minutes)

			check, err := app.Programs.CheckAdvance(ctx, defaultUser)
			if err == nil && !check.Allowed && check.CompletionsNeeded > 0 {
				fmt.Println(formatter.Dim(fmt.Sprintf("%d more to the weekly gate.", check.CompletionsNeeded)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Time spent in minutes")
	cmd.Flags().StringVar(&note, "note", "", "What happened")
	cmd.Flags().StringSliceVar(&insights, "insight", nil, "Insight gained (repeatable)")
	cmd.Flags().StringVar(&felt, "felt", "", "How hard it felt (easy, moderate, hard)")
	cmd.Flags().BoolVar(&wantRepeat, "repeat", false, "Mark the exercise worth repeating")
	addAtFlag(cmd.Flags(), &atFlag)
	return cmd
}

// pickExercise offers this week's ranked exercises as a select list.
func pickExercise(ctx context.Context, app *App) (string, error) {
	resp, err := app.Recommend.Recommend(ctx, contract.RecommendRequest{UserID: defaultUser})
	if err != nil {
		return "", err
	}
	if len(resp.Recommendations) == 0 {
		return "", fmt.Errorf("no exercises left this week")
	}

	var id string
	opts := make([]huh.Option[string], 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		label := fmt.Sprintf("%s (%d min, %s)", rec.Exercise.Title, rec.Exercise.Minutes, rec.Exercise.Difficulty)
		opts = append(opts, huh.NewOption(label, rec.Exercise.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which exercise did you do?").
				Options(opts...).
				Value(&id),
		),
	).WithTheme(umbraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}

func runLogForm(minutes *int, note, felt *string, wantRepeat *bool, insights *[]string) error {
	var minutesStr, insightStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes spent").
				Placeholder("15").
				Value(&minutesStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Note (optional)").
				Value(note),
			huh.NewInput().
				Title("Insight (optional)").
				Value(&insightStr),
			huh.NewSelect[string]().
				Title("How did it feel?").
				Options(
					huh.NewOption("easy", "easy"),
					huh.NewOption("moderate", "moderate"),
					huh.NewOption("hard", "hard"),
				).
				Value(felt),
			huh.NewConfirm().
				Title("Worth repeating?").
				Value(wantRepeat),
		),
	).WithTheme(umbraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	v, err := strconv.Atoi(strings.TrimSpace(minutesStr))
	if err != nil {
		return fmt.Errorf("invalid minutes %q", minutesStr)
	}
	*minutes = v
	if s := strings.TrimSpace(insightStr); s != "" {
		*insights = append(*insights, s)
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}
