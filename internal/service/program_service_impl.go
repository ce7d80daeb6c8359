package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/progress"
	"github.com/mverral/umbra/internal/repository"
)

type programService struct {
	programs repository.ProgramRepo
	profiles repository.ProfileRepo
	cat      *catalog.Catalog
	uow      db.UnitOfWork
}

func NewProgramService(programs repository.ProgramRepo, profiles repository.ProfileRepo, cat *catalog.Catalog, uow db.UnitOfWork) ProgramService {
	return &programService{programs: programs, profiles: profiles, cat: cat, uow: uow}
}

func (s *programService) Start(ctx context.Context, req contract.StartRequest) (*domain.Program, error) {
	now := resolveNow(req.Now)

	stack, err := domain.ResolveStack(req.Type)
	if err != nil {
		return nil, err
	}
	weeks, err := s.cat.BindProgram(req.Type)
	if err != nil {
		return nil, err
	}

	if _, err := s.programs.GetByUser(ctx, req.UserID); err == nil {
		return nil, fmt.Errorf("user %s already has a program", req.UserID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	prog := &domain.Program{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		Type:           req.Type,
		ShadowFunction: stack.Inferior,
		StartDate:      now,
		CurrentWeek:    domain.FirstWeek,
		Weeks:          weeks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	prof := &domain.Profile{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Dominant:  stack.Dominant,
		Auxiliary: stack.Auxiliary,
		Tertiary:  stack.Tertiary,
		Inferior:  stack.Inferior,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProgramRepo(tx).Create(ctx, prog); err != nil {
			return err
		}
		return repository.NewSQLiteProfileRepo(tx).Create(ctx, prof)
	})
	if err != nil {
		return nil, err
	}
	return prog, nil
}

func (s *programService) Get(ctx context.Context, userID string) (*domain.Program, error) {
	prog, err := s.programs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prog.Weeks, err = s.cat.BindProgram(prog.Type); err != nil {
		return nil, err
	}
	return prog, nil
}

func (s *programService) LogCompletion(ctx context.Context, req contract.LogCompletionRequest) (*domain.ExerciseCompletion, error) {
	now := resolveNow(req.Now)
	if req.Minutes <= 0 {
		return nil, fmt.Errorf("minutes must be positive, got %d", req.Minutes)
	}

	var rec *domain.ExerciseCompletion
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrograms := repository.NewSQLiteProgramRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		prog, err := txPrograms.GetByUser(ctx, req.UserID)
		if err != nil {
			return err
		}
		if prog.Weeks, err = s.cat.BindProgram(prog.Type); err != nil {
			return err
		}
		if err := exerciseInWeek(prog, req.ExerciseID); err != nil {
			return err
		}
		prof, err := txProfiles.GetByUser(ctx, req.UserID)
		if err != nil {
			return err
		}

		rec = progress.RecordCompletion(prog, progress.CompletionInput{
			ID:             uuid.New().String(),
			ExerciseID:     req.ExerciseID,
			Minutes:        req.Minutes,
			Note:           req.Note,
			Insights:       req.Insights,
			DifficultyFelt: req.DifficultyFelt,
			WantRepeat:     req.WantRepeat,
		}, now)
		progress.RefreshDerived(prog, prof, now)

		if err := txPrograms.Save(ctx, prog); err != nil {
			return err
		}
		return txProfiles.Save(ctx, prof)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *programService) Reflect(ctx context.Context, req contract.ReflectRequest) error {
	now := resolveNow(req.Now)
	if len(req.Answers) == 0 {
		return fmt.Errorf("reflection needs at least one answer")
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrograms := repository.NewSQLiteProgramRepo(tx)
		prog, err := txPrograms.GetByUser(ctx, req.UserID)
		if err != nil {
			return err
		}

		week := req.Week
		if week == 0 {
			week = prog.CurrentWeek
		}
		if err := progress.RecordWeeklyReflection(prog, week, req.Answers, now); err != nil {
			return err
		}
		return txPrograms.Save(ctx, prog)
	})
}

func (s *programService) Advance(ctx context.Context, userID string, nowPtr *time.Time) (*domain.Program, error) {
	now := resolveNow(nowPtr)

	var prog *domain.Program
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrograms := repository.NewSQLiteProgramRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		var err error
		if prog, err = txPrograms.GetByUser(ctx, userID); err != nil {
			return err
		}
		prof, err := txProfiles.GetByUser(ctx, userID)
		if err != nil {
			return err
		}

		if err := progress.AdvanceWeek(prog, now); err != nil {
			return err
		}
		progress.RefreshDerived(prog, prof, now)

		if err := txPrograms.Save(ctx, prog); err != nil {
			return err
		}
		return txProfiles.Save(ctx, prof)
	})
	if err != nil {
		return nil, err
	}
	if prog.Weeks, err = s.cat.BindProgram(prog.Type); err != nil {
		return nil, err
	}
	return prog, nil
}

func (s *programService) CheckAdvance(ctx context.Context, userID string) (progress.AdvanceCheck, error) {
	prog, err := s.programs.GetByUser(ctx, userID)
	if err != nil {
		return progress.AdvanceCheck{}, err
	}
	return progress.CanAdvance(prog), nil
}

// exerciseInWeek verifies the exercise belongs to the frontier week's bound
// exercise list; completions outside the current week's material are
// rejected rather than silently recorded.
func exerciseInWeek(prog *domain.Program, exerciseID string) error {
	bw := prog.BoundWeekFor(prog.CurrentWeek)
	if bw == nil {
		return fmt.Errorf("no bound week %d", prog.CurrentWeek)
	}
	for _, ex := range bw.Exercises {
		if ex.ID == exerciseID {
			return nil
		}
	}
	return fmt.Errorf("exercise %q is not part of week %d", exerciseID, prog.CurrentWeek)
}
