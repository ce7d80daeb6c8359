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

func newStartCmd(app *App) *cobra.Command {
	var typeFlag, atFlag string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the eight-week program for your personality type",
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(strings.TrimSpace(typeFlag))

			if code == "" && app.interactive() {
				picked, err := pickType()
				if err != nil {
					return err
				}
				code = picked
			}
			if code == "" {
				return fmt.Errorf("--type is required (one of %s)", typeList())
			}

			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}

			prog, err := app.Programs.Start(context.Background(), contract.StartRequest{
				UserID: defaultUser,
				Type:   domain.PersonalityType(code),
				Now:    at,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Started the program for %s.\n", formatter.Bold(string(prog.Type)))
			fmt.Printf("Your shadow is %s. Week 1: %s\n",
				formatter.Bold(prog.ShadowFunction.DisplayName()),
				prog.Weeks[0].Theme.Title)
			fmt.Println(formatter.Dim("Run `umbra recommend` to pick your first exercise."))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Four-letter personality type code, e.g. INTJ")
	addAtFlag(cmd.Flags(), &atFlag)
	return cmd
}

func pickType() (string, error) {
	var code string
	opts := make([]huh.Option[string], 0, len(domain.AllTypes))
	for _, t := range domain.AllTypes {
		inferior, _ := domain.ResolveInferior(t)
		label := fmt.Sprintf("%s (shadow %s)", t, inferior)
		opts = append(opts, huh.NewOption(label, string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Personality type").
				Options(opts...).
				Value(&code),
		),
	).WithTheme(umbraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return code, nil
}

func typeList() string {
	codes := make([]string, len(domain.AllTypes))
	for i, t := range domain.AllTypes {
		codes[i] = string(t)
	}
	return strings.Join(codes, ", ")
}
