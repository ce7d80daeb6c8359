package domain

import "time"

// FinalWeek is the last week of the program; the frontier never exceeds it.
const (
	FirstWeek = 1
	FinalWeek = 8
)

// BoundWeek is one program week after catalogue binding: the shared theme
// with its prompts resolved for the owner's shadow function, plus the
// exercises applicable to that function.
type BoundWeek struct {
	Number    int
	Theme     WeekTheme
	Exercises []Exercise
}

// ExerciseCompletion is an append-only record of one finished exercise.
// The same exercise id may appear more than once; repetition is allowed.
type ExerciseCompletion struct {
	ID             string
	ExerciseID     string
	CompletedAt    time.Time
	Minutes        int
	Note           string
	Insights       []string
	DifficultyFelt string
	WantRepeat     bool
}

// WeeklyReflection holds the free-text answers for one week, keyed by
// reflection prompt id, and the time the reflection was submitted.
type WeeklyReflection struct {
	Answers     map[string]string
	CompletedAt time.Time
}

// WeekProgress tracks one started week. It is created lazily on the first
// completion within that week.
type WeekProgress struct {
	Week        int
	StartedAt   time.Time
	CompletedAt *time.Time
	Completions []ExerciseCompletion
	Reflection  *WeeklyReflection
}

// Program is a user's traversal of the eight-week shadow work program.
type Program struct {
	ID             string
	UserID         string
	Type           PersonalityType
	ShadowFunction CognitiveFunction
	StartDate      time.Time

	// CurrentWeek is the frontier: the highest week the user may act in.
	CurrentWeek int

	Weeks    []BoundWeek
	Progress []*WeekProgress

	TotalCompleted int
	StreakDays     int
	Insights       []string
	LastActivityAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProgressFor returns the WeekProgress for the given week, or nil if that
// week has not been started.
func (p *Program) ProgressFor(week int) *WeekProgress {
	for _, wp := range p.Progress {
		if wp.Week == week {
			return wp
		}
	}
	return nil
}

// BoundWeekFor returns the bound week for the given number, or nil.
func (p *Program) BoundWeekFor(week int) *BoundWeek {
	for i := range p.Weeks {
		if p.Weeks[i].Number == week {
			return &p.Weeks[i]
		}
	}
	return nil
}

// AllCompletions collects every completion across all started weeks, in
// week order. The slice shares no backing storage with the program.
func (p *Program) AllCompletions() []ExerciseCompletion {
	var out []ExerciseCompletion
	for _, wp := range p.Progress {
		out = append(out, wp.Completions...)
	}
	return out
}

// CompletedWeeks counts weeks behind the frontier that were advanced past.
func (p *Program) CompletedWeeks() int {
	n := 0
	for _, wp := range p.Progress {
		if wp.CompletedAt != nil {
			n++
		}
	}
	return n
}

// WeekStatusOf derives the status of a week relative to the frontier.
// Weeks beyond the frontier are locked; the frontier week is current;
// earlier weeks are completed once stamped, otherwise in progress.
func (p *Program) WeekStatusOf(week int) WeekStatus {
	switch {
	case week > p.CurrentWeek:
		return WeekLocked
	case week == p.CurrentWeek:
		return WeekCurrent
	}
	if wp := p.ProgressFor(week); wp != nil && wp.CompletedAt == nil {
		return WeekInProgress
	}
	return WeekCompleted
}
