package service

import (
	"context"
	"time"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/progress"
)

type ProgramService interface {
	// Start creates the program and its parallel profile for a user.
	Start(ctx context.Context, req contract.StartRequest) (*domain.Program, error)
	// Get loads the program with its weeks rebound from the catalogue.
	Get(ctx context.Context, userID string) (*domain.Program, error)
	LogCompletion(ctx context.Context, req contract.LogCompletionRequest) (*domain.ExerciseCompletion, error)
	Reflect(ctx context.Context, req contract.ReflectRequest) error
	// Advance moves the frontier one week forward if the gate passes.
	Advance(ctx context.Context, userID string, now *time.Time) (*domain.Program, error)
	// CheckAdvance runs the gate without mutating anything.
	CheckAdvance(ctx context.Context, userID string) (progress.AdvanceCheck, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	AddTrigger(ctx context.Context, userID, trigger string) error
	AddPattern(ctx context.Context, userID, pattern string) error
	RecordBreakthrough(ctx context.Context, req contract.BreakthroughRequest) (*domain.Breakthrough, error)
	SetGrowthArea(ctx context.Context, userID, name string, progressPct int) error
}

type RecommendService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID string, now *time.Time) (*contract.DashboardView, error)
}

// ExchangeService moves a {program, profile} pair across the store boundary
// as a JSON archive.
type ExchangeService interface {
	Export(ctx context.Context, userID string) ([]byte, error)
	Import(ctx context.Context, data []byte) (*domain.Program, error)
}
