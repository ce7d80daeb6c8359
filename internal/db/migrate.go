package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order and must stay idempotent; the runner
// re-executes the full list on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL UNIQUE,
		type             TEXT NOT NULL,
		shadow_function  TEXT NOT NULL,
		start_date       TEXT NOT NULL,
		current_week     INTEGER NOT NULL,
		total_completed  INTEGER NOT NULL DEFAULT 0,
		streak_days      INTEGER NOT NULL DEFAULT 0,
		insights         TEXT NOT NULL DEFAULT '[]',
		last_activity_at TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS week_progress (
		program_id              TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		week                    INTEGER NOT NULL,
		started_at              TEXT NOT NULL,
		completed_at            TEXT,
		reflection_answers      TEXT,
		reflection_completed_at TEXT,
		PRIMARY KEY (program_id, week)
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_completions (
		id              TEXT PRIMARY KEY,
		program_id      TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		week            INTEGER NOT NULL,
		exercise_id     TEXT NOT NULL,
		completed_at    TEXT NOT NULL,
		minutes         INTEGER NOT NULL,
		note            TEXT NOT NULL DEFAULT '',
		insights        TEXT NOT NULL DEFAULT '[]',
		difficulty_felt TEXT NOT NULL DEFAULT '',
		want_repeat     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_program_week
		ON exercise_completions(program_id, week)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL UNIQUE,
		type              TEXT NOT NULL,
		dominant          TEXT NOT NULL,
		auxiliary         TEXT NOT NULL,
		tertiary          TEXT NOT NULL,
		inferior          TEXT NOT NULL,
		integration_level INTEGER NOT NULL DEFAULT 0,
		triggers          TEXT NOT NULL DEFAULT '[]',
		patterns          TEXT NOT NULL DEFAULT '[]',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS breakthroughs (
		id          TEXT PRIMARY KEY,
		profile_id  TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		week        INTEGER NOT NULL,
		note        TEXT NOT NULL,
		occurred_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS growth_areas (
		profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		progress   INTEGER NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (profile_id, name)
	)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
