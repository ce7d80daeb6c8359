package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles
		(id, user_id, type, dominant, auxiliary, tertiary, inferior,
		 integration_level, triggers, patterns, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		string(p.Type),
		string(p.Dominant),
		string(p.Auxiliary),
		string(p.Tertiary),
		string(p.Inferior),
		p.IntegrationLevel,
		marshalStrings(p.Triggers),
		marshalStrings(p.Patterns),
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return r.saveChildren(ctx, p)
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET
		integration_level = ?, triggers = ?, patterns = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.IntegrationLevel,
		marshalStrings(p.Triggers),
		marshalStrings(p.Patterns),
		p.UpdatedAt.Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("profile %s: %w", p.ID, ErrNotFound)
	}
	return r.saveChildren(ctx, p)
}

func (r *SQLiteProfileRepo) saveChildren(ctx context.Context, p *domain.Profile) error {
	for _, b := range p.Breakthroughs {
		query := `INSERT OR IGNORE INTO breakthroughs
			(id, profile_id, week, note, occurred_at)
			VALUES (?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			b.ID, p.ID, b.Week, b.Note, b.OccurredAt.Format(timeLayout),
		); err != nil {
			return fmt.Errorf("inserting breakthrough %s: %w", b.ID, err)
		}
	}
	for _, g := range p.GrowthAreas {
		query := `INSERT INTO growth_areas (profile_id, name, progress, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(profile_id, name) DO UPDATE SET
				progress = excluded.progress,
				updated_at = excluded.updated_at`
		if _, err := r.db.ExecContext(ctx, query,
			p.ID, g.Name, g.Progress, g.UpdatedAt.Format(timeLayout),
		); err != nil {
			return fmt.Errorf("upserting growth area %q: %w", g.Name, err)
		}
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT id, user_id, type, dominant, auxiliary, tertiary, inferior,
		integration_level, triggers, patterns, created_at, updated_at
		FROM profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Profile
	var typ, dom, aux, ter, inf, triggersStr, patternsStr, createdStr, updatedStr string
	err := row.Scan(
		&p.ID, &p.UserID, &typ, &dom, &aux, &ter, &inf,
		&p.IntegrationLevel, &triggersStr, &patternsStr, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Type = domain.PersonalityType(typ)
	p.Dominant = domain.CognitiveFunction(dom)
	p.Auxiliary = domain.CognitiveFunction(aux)
	p.Tertiary = domain.CognitiveFunction(ter)
	p.Inferior = domain.CognitiveFunction(inf)
	p.Triggers = unmarshalStrings(triggersStr)
	p.Patterns = unmarshalStrings(patternsStr)
	if p.CreatedAt, err = parseStoredTime("created_at", createdStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseStoredTime("updated_at", updatedStr); err != nil {
		return nil, err
	}

	if p.Breakthroughs, err = r.loadBreakthroughs(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.GrowthAreas, err = r.loadGrowthAreas(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) loadBreakthroughs(ctx context.Context, profileID string) ([]domain.Breakthrough, error) {
	query := `SELECT id, week, note, occurred_at FROM breakthroughs
		WHERE profile_id = ? ORDER BY occurred_at, id`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing breakthroughs: %w", err)
	}
	defer rows.Close()

	var out []domain.Breakthrough
	for rows.Next() {
		var b domain.Breakthrough
		var occurredStr string
		if err := rows.Scan(&b.ID, &b.Week, &b.Note, &occurredStr); err != nil {
			return nil, fmt.Errorf("scanning breakthrough: %w", err)
		}
		if b.OccurredAt, err = parseStoredTime("occurred_at", occurredStr); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating breakthroughs: %w", err)
	}
	return out, nil
}

func (r *SQLiteProfileRepo) loadGrowthAreas(ctx context.Context, profileID string) ([]domain.GrowthArea, error) {
	query := `SELECT name, progress, updated_at FROM growth_areas
		WHERE profile_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing growth areas: %w", err)
	}
	defer rows.Close()

	var out []domain.GrowthArea
	for rows.Next() {
		var g domain.GrowthArea
		var updatedStr string
		if err := rows.Scan(&g.Name, &g.Progress, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning growth area: %w", err)
		}
		if g.UpdatedAt, err = parseStoredTime("updated_at", updatedStr); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating growth areas: %w", err)
	}
	return out, nil
}
