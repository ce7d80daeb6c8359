package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

func NewSQLiteProgramRepo(dbtx db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: dbtx}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	query := `INSERT INTO programs
		(id, user_id, type, shadow_function, start_date, current_week,
		 total_completed, streak_days, insights, last_activity_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		string(p.Type),
		string(p.ShadowFunction),
		p.StartDate.Format(timeLayout),
		p.CurrentWeek,
		p.TotalCompleted,
		p.StreakDays,
		marshalStrings(p.Insights),
		nullableTimeToString(p.LastActivityAt),
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return r.saveChildren(ctx, p)
}

func (r *SQLiteProgramRepo) Save(ctx context.Context, p *domain.Program) error {
	query := `UPDATE programs SET
		current_week = ?, total_completed = ?, streak_days = ?, insights = ?,
		last_activity_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.CurrentWeek,
		p.TotalCompleted,
		p.StreakDays,
		marshalStrings(p.Insights),
		nullableTimeToString(p.LastActivityAt),
		p.UpdatedAt.Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating program: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("program %s: %w", p.ID, ErrNotFound)
	}
	return r.saveChildren(ctx, p)
}

// saveChildren upserts week-progress rows and appends any completions not
// yet stored. Completion rows are immutable once written.
func (r *SQLiteProgramRepo) saveChildren(ctx context.Context, p *domain.Program) error {
	for _, wp := range p.Progress {
		var answers any
		var reflectedAt any
		if wp.Reflection != nil {
			data, err := json.Marshal(wp.Reflection.Answers)
			if err != nil {
				return fmt.Errorf("encoding reflection answers: %w", err)
			}
			answers = string(data)
			reflectedAt = wp.Reflection.CompletedAt.Format(timeLayout)
		}

		query := `INSERT INTO week_progress
			(program_id, week, started_at, completed_at, reflection_answers, reflection_completed_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(program_id, week) DO UPDATE SET
				completed_at = excluded.completed_at,
				reflection_answers = excluded.reflection_answers,
				reflection_completed_at = excluded.reflection_completed_at`
		if _, err := r.db.ExecContext(ctx, query,
			p.ID, wp.Week,
			wp.StartedAt.Format(timeLayout),
			nullableTimeToString(wp.CompletedAt),
			answers, reflectedAt,
		); err != nil {
			return fmt.Errorf("upserting week %d progress: %w", wp.Week, err)
		}

		for _, c := range wp.Completions {
			query := `INSERT OR IGNORE INTO exercise_completions
				(id, program_id, week, exercise_id, completed_at, minutes, note, insights, difficulty_felt, want_repeat)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
			if _, err := r.db.ExecContext(ctx, query,
				c.ID, p.ID, wp.Week, c.ExerciseID,
				c.CompletedAt.Format(timeLayout),
				c.Minutes, c.Note,
				marshalStrings(c.Insights),
				c.DifficultyFelt,
				boolToInt(c.WantRepeat),
			); err != nil {
				return fmt.Errorf("inserting completion %s: %w", c.ID, err)
			}
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByUser(ctx context.Context, userID string) (*domain.Program, error) {
	query := `SELECT id, user_id, type, shadow_function, start_date, current_week,
		total_completed, streak_days, insights, last_activity_at, created_at, updated_at
		FROM programs WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Program
	var typ, shadow, startStr, insightsStr, createdStr, updatedStr string
	var lastActivity sql.NullString
	err := row.Scan(
		&p.ID, &p.UserID, &typ, &shadow, &startStr, &p.CurrentWeek,
		&p.TotalCompleted, &p.StreakDays, &insightsStr, &lastActivity, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("program for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}

	p.Type = domain.PersonalityType(typ)
	p.ShadowFunction = domain.CognitiveFunction(shadow)
	p.Insights = unmarshalStrings(insightsStr)
	p.LastActivityAt = parseNullableTime(lastActivity)
	if p.StartDate, err = parseStoredTime("start_date", startStr); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseStoredTime("created_at", createdStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseStoredTime("updated_at", updatedStr); err != nil {
		return nil, err
	}

	if p.Progress, err = r.loadProgress(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProgramRepo) loadProgress(ctx context.Context, programID string) ([]*domain.WeekProgress, error) {
	query := `SELECT week, started_at, completed_at, reflection_answers, reflection_completed_at
		FROM week_progress WHERE program_id = ? ORDER BY week`
	rows, err := r.db.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("listing week progress: %w", err)
	}
	defer rows.Close()

	var out []*domain.WeekProgress
	for rows.Next() {
		var wp domain.WeekProgress
		var startedStr string
		var completedAt, answers, reflectedAt sql.NullString
		if err := rows.Scan(&wp.Week, &startedStr, &completedAt, &answers, &reflectedAt); err != nil {
			return nil, fmt.Errorf("scanning week progress: %w", err)
		}
		if wp.StartedAt, err = parseStoredTime("started_at", startedStr); err != nil {
			return nil, err
		}
		wp.CompletedAt = parseNullableTime(completedAt)

		if answers.Valid && reflectedAt.Valid {
			parsed := map[string]string{}
			if err := json.Unmarshal([]byte(answers.String), &parsed); err != nil {
				return nil, fmt.Errorf("decoding reflection answers: %w", err)
			}
			at, err := parseStoredTime("reflection_completed_at", reflectedAt.String)
			if err != nil {
				return nil, err
			}
			wp.Reflection = &domain.WeeklyReflection{Answers: parsed, CompletedAt: at}
		}
		out = append(out, &wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating week progress: %w", err)
	}

	for _, wp := range out {
		if wp.Completions, err = r.loadCompletions(ctx, programID, wp.Week); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteProgramRepo) loadCompletions(ctx context.Context, programID string, week int) ([]domain.ExerciseCompletion, error) {
	query := `SELECT id, exercise_id, completed_at, minutes, note, insights, difficulty_felt, want_repeat
		FROM exercise_completions
		WHERE program_id = ? AND week = ?
		ORDER BY completed_at, id`
	rows, err := r.db.QueryContext(ctx, query, programID, week)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []domain.ExerciseCompletion
	for rows.Next() {
		var c domain.ExerciseCompletion
		var completedStr, insightsStr string
		var wantRepeat int
		if err := rows.Scan(&c.ID, &c.ExerciseID, &completedStr, &c.Minutes, &c.Note, &insightsStr, &c.DifficultyFelt, &wantRepeat); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		if c.CompletedAt, err = parseStoredTime("completed_at", completedStr); err != nil {
			return nil, err
		}
		c.Insights = unmarshalStrings(insightsStr)
		c.WantRepeat = wantRepeat != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return out, nil
}
