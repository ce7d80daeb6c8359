package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/progress"
)

// resolveNow defaults a request timestamp to the wall clock in UTC.
func resolveNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}

// gateMessage renders an advance check as user-facing guidance.
func gateMessage(check progress.AdvanceCheck) string {
	switch {
	case check.Allowed:
		return "ready to advance"
	case errors.Is(check.Reason, domain.ErrAtFinalWeek):
		return "already at the final week"
	case errors.Is(check.Reason, domain.ErrNotStarted):
		return fmt.Sprintf("complete %d exercises this week to begin the gate", check.CompletionsNeeded)
	case errors.Is(check.Reason, domain.ErrInsufficientCompletions):
		return fmt.Sprintf("complete %d more exercises to unlock the next week", check.CompletionsNeeded)
	case errors.Is(check.Reason, domain.ErrReflectionRequired):
		return "answer this week's reflection to unlock the next week"
	default:
		return check.Reason.Error()
	}
}
