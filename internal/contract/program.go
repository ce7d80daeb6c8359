package contract

import (
	"time"

	"github.com/mverral/umbra/internal/domain"
)

// StartRequest bootstraps a program and its parallel profile.
// Now defaults to the wall clock when nil; tests pin it.
type StartRequest struct {
	UserID string
	Type   domain.PersonalityType
	Now    *time.Time
}

// LogCompletionRequest records one finished exercise in the current week.
type LogCompletionRequest struct {
	UserID         string
	ExerciseID     string
	Minutes        int
	Note           string
	Insights       []string
	DifficultyFelt string
	WantRepeat     bool
	Now            *time.Time
}

// ReflectRequest attaches the weekly reflection answers, keyed by prompt id.
// Week 0 means the current week.
type ReflectRequest struct {
	UserID  string
	Week    int
	Answers map[string]string
	Now     *time.Time
}

// BreakthroughRequest records a breakthrough tagged by the current week.
type BreakthroughRequest struct {
	UserID string
	Note   string
	Now    *time.Time
}
