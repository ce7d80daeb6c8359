package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/domain"
)

// Now is a fixed instant fixtures hang off so tests stay deterministic.
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Program options
type ProgramOption func(*domain.Program)

func WithCurrentWeek(week int) ProgramOption {
	return func(p *domain.Program) {
		p.CurrentWeek = week
	}
}

func WithUserID(id string) ProgramOption {
	return func(p *domain.Program) {
		p.UserID = id
	}
}

// NewTestProgram builds a bound program for the given type, started a week
// before Now with the frontier at week one.
func NewTestProgram(t domain.PersonalityType, opts ...ProgramOption) *domain.Program {
	cat := catalog.Default()
	weeks, err := cat.BindProgram(t)
	if err != nil {
		panic(err)
	}
	shadow, _ := domain.ResolveInferior(t)
	p := &domain.Program{
		ID:             uuid.New().String(),
		UserID:         "test-user",
		Type:           t,
		ShadowFunction: shadow,
		StartDate:      Now.AddDate(0, 0, -7),
		CurrentWeek:    domain.FirstWeek,
		Weeks:          weeks,
		CreatedAt:      Now.AddDate(0, 0, -7),
		UpdatedAt:      Now.AddDate(0, 0, -7),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithTriggers(triggers ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Triggers = triggers
	}
}

func WithIntegrationLevel(level int) ProfileOption {
	return func(p *domain.Profile) {
		p.IntegrationLevel = level
	}
}

// NewTestProfile builds a profile whose function stack matches the type.
func NewTestProfile(t domain.PersonalityType, opts ...ProfileOption) *domain.Profile {
	stack, err := domain.ResolveStack(t)
	if err != nil {
		panic(err)
	}
	p := &domain.Profile{
		ID:        uuid.New().String(),
		UserID:    "test-user",
		Type:      t,
		Dominant:  stack.Dominant,
		Auxiliary: stack.Auxiliary,
		Tertiary:  stack.Tertiary,
		Inferior:  stack.Inferior,
		CreatedAt: Now.AddDate(0, 0, -7),
		UpdatedAt: Now.AddDate(0, 0, -7),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestCompletion builds a completion record for the given exercise.
func NewTestCompletion(exerciseID string, at time.Time) domain.ExerciseCompletion {
	return domain.ExerciseCompletion{
		ID:          uuid.New().String(),
		ExerciseID:  exerciseID,
		CompletedAt: at,
		Minutes:     15,
	}
}
