package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/testutil"
)

func TestDashboard_FreshProgram(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	view, err := e.dashboard.GetDashboard(context.Background(), "test-user", &now)
	require.NoError(t, err)

	assert.Equal(t, domain.PersonalityType("INTJ"), view.Type)
	assert.Equal(t, domain.Se, view.ShadowFunction)
	assert.Equal(t, 1, view.CurrentWeek)
	assert.Equal(t, "Meeting the Shadow", view.WeekTitle)
	assert.Equal(t, 0, view.IntegrationLevel)
	assert.Equal(t, 0, view.StreakDays)
	assert.Zero(t, view.PracticeHours)
	assert.Empty(t, view.RecentCompletions)
	assert.NotEmpty(t, view.Milestones)

	require.Len(t, view.Weeks, 8)
	assert.Equal(t, domain.WeekCurrent, view.Weeks[0].Status)
	for _, w := range view.Weeks[1:] {
		assert.Equal(t, domain.WeekLocked, w.Status)
	}

	assert.Len(t, view.Recommendations, dashboardRecommendations)
	assert.False(t, view.Advance.Allowed)
	assert.Contains(t, view.Advance.Reason, "complete 5 exercises")
}

func TestDashboard_AfterActivity(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")
	ctx := context.Background()

	now := testutil.Now
	_, err := e.program.LogCompletion(ctx, contract.LogCompletionRequest{
		UserID: "test-user", ExerciseID: "se-grounding-walk", Minutes: 30, Note: "windy", Now: &now,
	})
	require.NoError(t, err)

	view, err := e.dashboard.GetDashboard(ctx, "test-user", &now)
	require.NoError(t, err)

	assert.Equal(t, 1, view.StreakDays)
	assert.InDelta(t, 0.5, view.PracticeHours, 0.001)
	assert.Equal(t, 1, view.TotalCompleted)

	require.Len(t, view.RecentCompletions, 1)
	assert.Equal(t, "Grounding Walk", view.RecentCompletions[0].Title)
	assert.Equal(t, "windy", view.RecentCompletions[0].Note)

	// The just-completed exercise drops out of today's recommendations.
	for _, r := range view.Recommendations {
		assert.NotEqual(t, "se-grounding-walk", r.Exercise.ID)
	}

	assert.Equal(t, 4, view.Advance.CompletionsNeeded)
	assert.Contains(t, view.Advance.Reason, "4 more")
}

func TestDashboard_UnknownUser(t *testing.T) {
	e := newEnv(t)
	now := testutil.Now
	_, err := e.dashboard.GetDashboard(context.Background(), "nobody", &now)
	assert.Error(t, err)
}
