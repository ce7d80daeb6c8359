package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
)

func sampleView() *contract.DashboardView {
	return &contract.DashboardView{
		GeneratedAt:      time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		Type:             "INTJ",
		ShadowFunction:   domain.Se,
		IntegrationLevel: 12,
		CurrentWeek:      2,
		WeekTitle:        "Triggers and Stress",
		WeekFocus:        "Awareness",
		WeekGoal:         "Map the situations that push you into your shadow",
		Weeks: []contract.WeekStatusView{
			{Week: 1, Title: "Meeting the Shadow", Status: domain.WeekCompleted, Completions: 5, Reflected: true},
			{Week: 2, Title: "Triggers and Stress", Status: domain.WeekCurrent, Completions: 1},
			{Week: 3, Title: "Small Doses", Status: domain.WeekLocked},
		},
		StreakDays:     3,
		PracticeHours:  1.5,
		TotalCompleted: 6,
		Advance: contract.AdvanceView{
			Reason:            "complete 4 more exercises to unlock the next week",
			CompletionsNeeded: 4,
		},
	}
}

func TestFormatStatus(t *testing.T) {
	out := FormatStatus(sampleView())

	assert.Contains(t, out, "INTJ")
	assert.Contains(t, out, "Extraverted Sensing")
	assert.Contains(t, out, "Meeting the Shadow")
	assert.Contains(t, out, "current")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "1.5h")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "complete 4 more exercises")
}

func TestFormatStatus_GateOpen(t *testing.T) {
	v := sampleView()
	v.Advance = contract.AdvanceView{Allowed: true, Reason: "ready to advance"}

	out := FormatStatus(v)
	assert.Contains(t, out, "umbra advance")
}

func TestFormatDashboard(t *testing.T) {
	v := sampleView()
	v.Milestones = []string{"Named at least two personal triggers"}
	v.Recommendations = []contract.Recommendation{{
		Exercise:       domain.Exercise{ID: "se-grounding-walk", Title: "Grounding Walk", Minutes: 20},
		RelevanceScore: 70,
		Impact:         domain.ImpactHigh,
		Reason:         "Targets your Se shadow [matches your trigger: stress]",
	}}
	v.RecentCompletions = []contract.CompletionView{{
		ExerciseID:  "se-grounding-walk",
		Title:       "Grounding Walk",
		CompletedAt: v.GeneratedAt,
		Minutes:     20,
		Note:        "windy",
	}}

	out := FormatDashboard(v)
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Grounding Walk")
	assert.Contains(t, out, "Named at least two personal triggers")
	assert.Contains(t, out, "windy")
}
