package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/testutil"
)

func TestProfileService_Enrichment(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "ENFP")
	ctx := context.Background()

	require.NoError(t, e.profile.AddTrigger(ctx, "test-user", "deadlines"))
	require.NoError(t, e.profile.AddTrigger(ctx, "test-user", "deadlines")) // dedupe
	require.NoError(t, e.profile.AddPattern(ctx, "test-user", "doom scrolling"))
	require.NoError(t, e.profile.SetGrowthArea(ctx, "test-user", "routine", 25))
	require.NoError(t, e.profile.SetGrowthArea(ctx, "test-user", "routine", 40))

	prof, err := e.profile.Get(ctx, "test-user")
	require.NoError(t, err)
	assert.Equal(t, []string{"deadlines"}, prof.Triggers)
	assert.Equal(t, []string{"doom scrolling"}, prof.Patterns)
	require.Len(t, prof.GrowthAreas, 1)
	assert.Equal(t, 40, prof.GrowthAreas[0].Progress)
}

func TestProfileService_RejectsBlankInput(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "ENFP")
	ctx := context.Background()

	assert.Error(t, e.profile.AddTrigger(ctx, "test-user", "   "))
	assert.Error(t, e.profile.AddPattern(ctx, "test-user", ""))
	assert.Error(t, e.profile.SetGrowthArea(ctx, "test-user", "", 10))
}

func TestProfileService_BreakthroughTaggedByCurrentWeek(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "ENFP")
	ctx := context.Background()

	now := testutil.Now
	b, err := e.profile.RecordBreakthrough(ctx, contract.BreakthroughRequest{
		UserID: "test-user",
		Note:   "realized the restlessness is mine, not the room's",
		Now:    &now,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Week)
	assert.NotEmpty(t, b.ID)

	prof, err := e.profile.Get(ctx, "test-user")
	require.NoError(t, err)
	require.Len(t, prof.Breakthroughs, 1)
	assert.Equal(t, b.ID, prof.Breakthroughs[0].ID)
}
