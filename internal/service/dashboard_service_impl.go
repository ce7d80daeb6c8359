package service

import (
	"context"
	"sort"
	"time"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/progress"
	"github.com/mverral/umbra/internal/recommend"
	"github.com/mverral/umbra/internal/repository"
)

const (
	dashboardRecommendations = 3
	dashboardRecent          = 5
)

type dashboardService struct {
	programs repository.ProgramRepo
	profiles repository.ProfileRepo
	cat      *catalog.Catalog
}

func NewDashboardService(programs repository.ProgramRepo, profiles repository.ProfileRepo, cat *catalog.Catalog) DashboardService {
	return &dashboardService{programs: programs, profiles: profiles, cat: cat}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string, nowPtr *time.Time) (*contract.DashboardView, error) {
	now := resolveNow(nowPtr)

	prog, err := s.programs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prog.Weeks, err = s.cat.BindProgram(prog.Type); err != nil {
		return nil, err
	}
	prof, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &contract.DashboardView{
		GeneratedAt:      now,
		Type:             prog.Type,
		ShadowFunction:   prog.ShadowFunction,
		IntegrationLevel: prof.IntegrationLevel,
		CurrentWeek:      prog.CurrentWeek,
		StreakDays:       progress.Streak(prog, now),
		PracticeHours:    progress.PracticeHours(prog),
		TotalCompleted:   prog.TotalCompleted,
	}

	if bw := prog.BoundWeekFor(prog.CurrentWeek); bw != nil {
		view.WeekTitle = bw.Theme.Title
		view.WeekFocus = bw.Theme.Focus
		view.WeekGoal = bw.Theme.Goal
		view.Milestones = bw.Theme.Milestones
	}
	view.Weeks = weekStatusViews(prog)

	recs := recommend.Rank(prog, prof)
	if len(recs) > dashboardRecommendations {
		recs = recs[:dashboardRecommendations]
	}
	view.Recommendations = recs
	view.RecentCompletions = s.recentCompletions(prog)

	check := progress.CanAdvance(prog)
	view.Advance = contract.AdvanceView{
		Allowed:           check.Allowed,
		Reason:            gateMessage(check),
		CompletionsNeeded: check.CompletionsNeeded,
	}
	return view, nil
}

func weekStatusViews(prog *domain.Program) []contract.WeekStatusView {
	out := make([]contract.WeekStatusView, 0, domain.FinalWeek)
	for week := domain.FirstWeek; week <= domain.FinalWeek; week++ {
		v := contract.WeekStatusView{
			Week:   week,
			Status: prog.WeekStatusOf(week),
		}
		if bw := prog.BoundWeekFor(week); bw != nil {
			v.Title = bw.Theme.Title
		}
		if wp := prog.ProgressFor(week); wp != nil {
			v.Completions = len(wp.Completions)
			v.Reflected = wp.Reflection != nil
		}
		out = append(out, v)
	}
	return out
}

func (s *dashboardService) recentCompletions(prog *domain.Program) []contract.CompletionView {
	all := prog.AllCompletions()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CompletedAt.After(all[j].CompletedAt)
	})
	if len(all) > dashboardRecent {
		all = all[:dashboardRecent]
	}

	out := make([]contract.CompletionView, 0, len(all))
	for _, c := range all {
		v := contract.CompletionView{
			ExerciseID:  c.ExerciseID,
			CompletedAt: c.CompletedAt,
			Minutes:     c.Minutes,
			Note:        c.Note,
		}
		if ex, ok := s.cat.ExerciseByID(c.ExerciseID); ok {
			v.Title = ex.Title
		}
		out = append(out, v)
	}
	return out
}
