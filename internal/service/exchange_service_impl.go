package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/db"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/porter"
	"github.com/mverral/umbra/internal/repository"
)

type exchangeService struct {
	programs repository.ProgramRepo
	profiles repository.ProfileRepo
	cat      *catalog.Catalog
	uow      db.UnitOfWork
}

func NewExchangeService(programs repository.ProgramRepo, profiles repository.ProfileRepo, cat *catalog.Catalog, uow db.UnitOfWork) ExchangeService {
	return &exchangeService{programs: programs, profiles: profiles, cat: cat, uow: uow}
}

func (s *exchangeService) Export(ctx context.Context, userID string) ([]byte, error) {
	prog, err := s.programs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	prof, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return porter.Export(prog, prof, resolveNow(nil))
}

// Import restores an archive into the store. It refuses to overwrite an
// existing program for the same user; move or delete the database first.
func (s *exchangeService) Import(ctx context.Context, data []byte) (*domain.Program, error) {
	prog, prof, err := porter.Import(data, s.cat)
	if err != nil {
		return nil, err
	}

	if _, err := s.programs.GetByUser(ctx, prog.UserID); err == nil {
		return nil, fmt.Errorf("user %s already has a program; import refuses to overwrite", prog.UserID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
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
