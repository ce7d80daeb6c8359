package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/repository"
)

type profileService struct {
	programs repository.ProgramRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewProfileService(programs repository.ProgramRepo, profiles repository.ProfileRepo, uow db.UnitOfWork) ProfileService {
	return &profileService{programs: programs, profiles: profiles, uow: uow}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetByUser(ctx, userID)
}

func (s *profileService) AddTrigger(ctx context.Context, userID, trigger string) error {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return fmt.Errorf("trigger cannot be empty")
	}
	return s.mutate(ctx, userID, func(p *domain.Profile) error {
		p.AddTrigger(trigger)
		return nil
	})
}

func (s *profileService) AddPattern(ctx context.Context, userID, pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	return s.mutate(ctx, userID, func(p *domain.Profile) error {
		p.AddPattern(pattern)
		return nil
	})
}

func (s *profileService) RecordBreakthrough(ctx context.Context, req contract.BreakthroughRequest) (*domain.Breakthrough, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, fmt.Errorf("breakthrough note cannot be empty")
	}
	now := resolveNow(req.Now)

	// Tag the breakthrough with the frontier week of the user's program.
	prog, err := s.programs.GetByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	b := domain.Breakthrough{
		ID:         uuid.New().String(),
		Week:       prog.CurrentWeek,
		Note:       note,
		OccurredAt: now,
	}
	err = s.mutate(ctx, req.UserID, func(p *domain.Profile) error {
		p.Breakthroughs = append(p.Breakthroughs, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *profileService) SetGrowthArea(ctx context.Context, userID, name string, progressPct int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("growth area name cannot be empty")
	}
	now := resolveNow(nil)
	return s.mutate(ctx, userID, func(p *domain.Profile) error {
		p.UpsertGrowthArea(name, progressPct, now)
		return nil
	})
}

func (s *profileService) mutate(ctx context.Context, userID string, fn func(*domain.Profile) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		prof, err := txProfiles.GetByUser(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(prof); err != nil {
			return err
		}
		prof.UpdatedAt = resolveNow(nil)
		return txProfiles.Save(ctx, prof)
	})
}
