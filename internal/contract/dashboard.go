package contract

import (
	"time"

	"github.com/mverral/umbra/internal/domain"
)

// WeekStatusView is one row of the per-week status table.
type WeekStatusView struct {
	Week        int
	Title       string
	Status      domain.WeekStatus
	Completions int
	Reflected   bool
}

// CompletionView is one recent completion with its catalogue title resolved.
type CompletionView struct {
	ExerciseID  string
	Title       string
	CompletedAt time.Time
	Minutes     int
	Note        string
}

// DashboardView is the read-only derived view the caller renders: profile
// facts, the current week, today's recommendations, recent completions,
// upcoming milestones, and streak info.
type DashboardView struct {
	GeneratedAt time.Time

	Type             domain.PersonalityType
	ShadowFunction   domain.CognitiveFunction
	IntegrationLevel int

	CurrentWeek int
	WeekTitle   string
	WeekFocus   string
	WeekGoal    string
	Weeks       []WeekStatusView

	Recommendations   []Recommendation
	RecentCompletions []CompletionView
	Milestones        []string

	StreakDays     int
	PracticeHours  float64
	TotalCompleted int // exercises completed over the whole program

	Advance AdvanceView
}

// AdvanceView mirrors the non-destructive gate check for UI guidance.
type AdvanceView struct {
	Allowed           bool
	Reason            string
	CompletionsNeeded int
}
