package repository

import (
	"context"
	"errors"

	"github.com/mverral/umbra/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProgramRepo persists Program aggregates. A program hydrates with its full
// progress history; bound weeks are reference data and are rebound from the
// catalogue by the caller after loading.
type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByUser(ctx context.Context, userID string) (*domain.Program, error)
	// Save writes the whole aggregate back: the program row, every
	// week-progress row, and any completions not yet stored. Completions
	// are append-only and are never updated in place.
	Save(ctx context.Context, p *domain.Program) error
}

// ProfileRepo persists Profile aggregates.
type ProfileRepo interface {
	Create(ctx context.Context, prof *domain.Profile) error
	GetByUser(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, prof *domain.Profile) error
}
