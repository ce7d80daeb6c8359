package domain

import "errors"

var (
	// ErrInvalidType means an unrecognized personality type code was passed
	// to a resolver. This is a caller contract violation, never a default.
	ErrInvalidType = errors.New("unknown personality type")

	// ErrNotStarted means a reflection or advance was requested for a week
	// with no recorded activity yet.
	ErrNotStarted = errors.New("week not started")

	// ErrInsufficientCompletions means advance was requested before the
	// minimum exercise count for the frontier week was reached.
	ErrInsufficientCompletions = errors.New("not enough completed exercises this week")

	// ErrReflectionRequired means advance was requested before the frontier
	// week's reflection was recorded.
	ErrReflectionRequired = errors.New("weekly reflection not recorded")

	// ErrAtFinalWeek means advance was requested from the last week.
	ErrAtFinalWeek = errors.New("already at final week")
)
