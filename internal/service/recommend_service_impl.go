package service

import (
	"context"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/recommend"
	"github.com/mverral/umbra/internal/repository"
)

type recommendService struct {
	programs repository.ProgramRepo
	profiles repository.ProfileRepo
	cat      *catalog.Catalog
}

func NewRecommendService(programs repository.ProgramRepo, profiles repository.ProfileRepo, cat *catalog.Catalog) RecommendService {
	return &recommendService{programs: programs, profiles: profiles, cat: cat}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error) {
	now := resolveNow(req.Now)

	prog, err := s.programs.GetByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if prog.Weeks, err = s.cat.BindProgram(prog.Type); err != nil {
		return nil, err
	}
	prof, err := s.profiles.GetByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	recs := recommend.Rank(prog, prof)
	if req.Limit > 0 && len(recs) > req.Limit {
		recs = recs[:req.Limit]
	}

	return &contract.RecommendResponse{
		GeneratedAt:     now,
		Week:            prog.CurrentWeek,
		ShadowFunction:  prog.ShadowFunction,
		Recommendations: recs,
	}, nil
}
