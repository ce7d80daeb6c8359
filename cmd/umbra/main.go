package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/cli"
	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/repository"
	"github.com/mverral/umbra/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.umbra/umbra.db
	dbPath := os.Getenv("UMBRA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".umbra", "umbra.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	programRepo := repository.NewSQLiteProgramRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	cat := catalog.Default()

	app := &cli.App{
		Programs:  service.NewProgramService(programRepo, profileRepo, cat, uow),
		Profiles:  service.NewProfileService(programRepo, profileRepo, uow),
		Recommend: service.NewRecommendService(programRepo, profileRepo, cat),
		Dashboard: service.NewDashboardService(programRepo, profileRepo, cat),
		Exchange:  service.NewExchangeService(programRepo, profileRepo, cat, uow),
	}

	// Forms and the TUI only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
