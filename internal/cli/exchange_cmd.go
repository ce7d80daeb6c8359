package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the program and profile as a JSON archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Exchange.Export(context.Background(), defaultUser)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing archive: %w", err)
			}
			fmt.Printf("Exported to %s (%d bytes).\n", out, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a program and profile from a JSON archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading archive: %w", err)
			}

			prog, err := app.Exchange.Import(context.Background(), data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %s program at week %d (%d exercises logged).\n",
				prog.Type, prog.CurrentWeek, prog.TotalCompleted)
			return nil
		},
	}
}
