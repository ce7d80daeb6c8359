// Package progress implements the week-gated state machine and the derived
// aggregates (streak, practice time, integration level) over a program.
// Everything here is a pure in-memory transformation; callers load and
// persist the structures.
package progress

import (
	"fmt"
	"time"

	"github.com/mverral/umbra/internal/domain"
)

// MinCompletionsToAdvance is the engagement gate: a week needs at least this
// many completions (plus a reflection) before the frontier may move.
// TODO: candidate for a program-level parameter once someone actually needs
// a different threshold.
const MinCompletionsToAdvance = 5

// CompletionInput carries one exercise completion event. ID is assigned by
// the caller so the machine stays free of ID generation.
type CompletionInput struct {
	ID             string
	ExerciseID     string
	Minutes        int
	Note           string
	Insights       []string
	DifficultyFelt string
	WantRepeat     bool
}

// RecordCompletion appends a completion to the frontier week, creating that
// week's progress record on first use. Repeated exercise ids are allowed;
// every call appends a distinct record. Never fails on well-formed input.
func RecordCompletion(p *domain.Program, in CompletionInput, now time.Time) *domain.ExerciseCompletion {
	wp := p.ProgressFor(p.CurrentWeek)
	if wp == nil {
		wp = &domain.WeekProgress{Week: p.CurrentWeek, StartedAt: now}
		p.Progress = append(p.Progress, wp)
	}

	wp.Completions = append(wp.Completions, domain.ExerciseCompletion{
		ID:             in.ID,
		ExerciseID:     in.ExerciseID,
		CompletedAt:    now,
		Minutes:        in.Minutes,
		Note:           in.Note,
		Insights:       in.Insights,
		DifficultyFelt: in.DifficultyFelt,
		WantRepeat:     in.WantRepeat,
	})

	p.TotalCompleted++
	t := now
	p.LastActivityAt = &t
	p.Insights = append(p.Insights, in.Insights...)
	p.StreakDays = Streak(p, now)
	p.UpdatedAt = now

	return &wp.Completions[len(wp.Completions)-1]
}

// RecordWeeklyReflection attaches a reflection to the existing progress
// record for the given week. A reflection cannot precede the week's first
// completion; without one the week has no progress record and this fails
// with ErrNotStarted, leaving the program untouched.
func RecordWeeklyReflection(p *domain.Program, week int, answers map[string]string, now time.Time) error {
	wp := p.ProgressFor(week)
	if wp == nil {
		return fmt.Errorf("week %d: %w", week, domain.ErrNotStarted)
	}

	wp.Reflection = &domain.WeeklyReflection{Answers: answers, CompletedAt: now}
	p.UpdatedAt = now
	return nil
}

// AdvanceCheck is the non-destructive result of the advance gate, exposed
// for UI guidance ("complete 2 more exercises to unlock next week").
type AdvanceCheck struct {
	Allowed           bool
	Reason            error // nil when allowed
	CompletionsNeeded int   // remaining completions toward the gate
}

// CanAdvance runs the advance checks without mutating anything.
func CanAdvance(p *domain.Program) AdvanceCheck {
	if p.CurrentWeek >= domain.FinalWeek {
		return AdvanceCheck{Reason: domain.ErrAtFinalWeek}
	}
	wp := p.ProgressFor(p.CurrentWeek)
	if wp == nil {
		return AdvanceCheck{
			Reason:            domain.ErrNotStarted,
			CompletionsNeeded: MinCompletionsToAdvance,
		}
	}
	if len(wp.Completions) < MinCompletionsToAdvance {
		return AdvanceCheck{
			Reason:            domain.ErrInsufficientCompletions,
			CompletionsNeeded: MinCompletionsToAdvance - len(wp.Completions),
		}
	}
	if wp.Reflection == nil {
		return AdvanceCheck{Reason: domain.ErrReflectionRequired}
	}
	return AdvanceCheck{Allowed: true}
}

// AdvanceWeek moves the frontier forward after the engagement gate passes:
// at least MinCompletionsToAdvance completions and a recorded reflection for
// the frontier week. On failure the program is left unmodified.
func AdvanceWeek(p *domain.Program, now time.Time) error {
	check := CanAdvance(p)
	if !check.Allowed {
		return fmt.Errorf("week %d: %w", p.CurrentWeek, check.Reason)
	}

	wp := p.ProgressFor(p.CurrentWeek)
	t := now
	wp.CompletedAt = &t
	p.CurrentWeek++
	p.UpdatedAt = now
	return nil
}

// RefreshDerived recomputes every derived field after a mutation. Derived
// values are never patched incrementally; that avoids drift from clock skew
// or back-dated entries.
func RefreshDerived(p *domain.Program, prof *domain.Profile, now time.Time) {
	p.StreakDays = Streak(p, now)
	if prof != nil {
		prof.IntegrationLevel = IntegrationLevel(p.CompletedWeeks(), p.TotalCompleted, p.StreakDays)
		prof.UpdatedAt = now
	}
}
