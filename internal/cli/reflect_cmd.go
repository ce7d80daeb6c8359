package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mverral/umbra/internal/cli/formatter"
	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
)

func newReflectCmd(app *App) *cobra.Command {
	var answerFlags []string
	var atFlag string
	var weekFlag int

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Answer a week's reflection prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prog, err := app.Programs.Get(ctx, defaultUser)
			if err != nil {
				return err
			}
			week := weekFlag
			if week == 0 {
				week = prog.CurrentWeek
			}
			bw := prog.BoundWeekFor(week)
			if bw == nil {
				return fmt.Errorf("no bound week %d", week)
			}

			answers, err := parseAnswerFlags(answerFlags)
			if err != nil {
				return err
			}
			if len(answers) == 0 && app.interactive() {
				if answers, err = runReflectionForm(bw.Theme.Prompts); err != nil {
					return err
				}
			}
			if len(answers) == 0 {
				return fmt.Errorf("no answers given; use --answer prompt-id=text")
			}

			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}

			err = app.Programs.Reflect(ctx, contract.ReflectRequest{
				UserID:  defaultUser,
				Week:    weekFlag,
				Answers: answers,
				Now:     at,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Reflection for week %d recorded.\n", week)
			check, err := app.Programs.CheckAdvance(ctx, defaultUser)
			if err == nil && check.Allowed {
				fmt.Println(formatter.StyleGreen.Render("Gate open: run `umbra advance`."))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&answerFlags, "answer", nil, "Answer as prompt-id=text (repeatable)")
	cmd.Flags().IntVar(&weekFlag, "week", 0, "Week to reflect on (default: current week)")
	addAtFlag(cmd.Flags(), &atFlag)
	return cmd
}

func parseAnswerFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	answers := make(map[string]string, len(flags))
	for _, raw := range flags {
		id, text, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("invalid --answer %q: want prompt-id=text", raw)
		}
		answers[strings.TrimSpace(id)] = strings.TrimSpace(text)
	}
	return answers, nil
}

// runReflectionForm asks every prompt of the week as a multi-line field.
func runReflectionForm(prompts []domain.ReflectionPrompt) (map[string]string, error) {
	values := make([]string, len(prompts))
	fields := make([]huh.Field, 0, len(prompts))
	for i, p := range prompts {
		fields = append(fields, huh.NewText().
			Title(p.Template).
			Value(&values[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(umbraHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(prompts))
	for i, p := range prompts {
		if text := strings.TrimSpace(values[i]); text != "" {
			answers[p.ID] = text
		}
	}
	return answers, nil
}
