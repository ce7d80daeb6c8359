package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
	"github.com/mverral/umbra/internal/progress"
	"github.com/mverral/umbra/internal/repository"
	"github.com/mverral/umbra/internal/testutil"
)

type env struct {
	programs  repository.ProgramRepo
	profiles  repository.ProfileRepo
	cat       *catalog.Catalog
	program   ProgramService
	profile   ProfileService
	recommend RecommendService
	dashboard DashboardService
	exchange  ExchangeService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	programs := repository.NewSQLiteProgramRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	cat := catalog.Default()
	return &env{
		programs:  programs,
		profiles:  profiles,
		cat:       cat,
		program:   NewProgramService(programs, profiles, cat, uow),
		profile:   NewProfileService(programs, profiles, uow),
		recommend: NewRecommendService(programs, profiles, cat),
		dashboard: NewDashboardService(programs, profiles, cat),
		exchange:  NewExchangeService(programs, profiles, cat, uow),
	}
}

func startProgram(t *testing.T, e *env, typ domain.PersonalityType) *domain.Program {
	t.Helper()
	now := testutil.Now
	prog, err := e.program.Start(context.Background(), contract.StartRequest{
		UserID: "test-user", Type: typ, Now: &now,
	})
	require.NoError(t, err)
	return prog
}

// logN records n completions of the given exercise, spacing them an hour
// apart on the same day.
func logN(t *testing.T, e *env, exerciseID string, n int, day time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		at := day.Add(time.Duration(i) * time.Hour)
		_, err := e.program.LogCompletion(context.Background(), contract.LogCompletionRequest{
			UserID: "test-user", ExerciseID: exerciseID, Minutes: 15, Now: &at,
		})
		require.NoError(t, err)
	}
}

func TestProgramService_Start(t *testing.T) {
	e := newEnv(t)
	prog := startProgram(t, e, "INTJ")

	assert.Equal(t, domain.Se, prog.ShadowFunction)
	assert.Equal(t, domain.FirstWeek, prog.CurrentWeek)
	assert.Len(t, prog.Weeks, 8)

	prof, err := e.profile.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, domain.Ni, prof.Dominant)
	assert.Equal(t, domain.Se, prof.Inferior)
	assert.Equal(t, 0, prof.IntegrationLevel)
}

func TestProgramService_Start_InvalidType(t *testing.T) {
	e := newEnv(t)
	now := testutil.Now
	_, err := e.program.Start(context.Background(), contract.StartRequest{
		UserID: "test-user", Type: "ABCD", Now: &now,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestProgramService_Start_Duplicate(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	_, err := e.program.Start(context.Background(), contract.StartRequest{
		UserID: "test-user", Type: "ENFP", Now: &now,
	})
	assert.ErrorContains(t, err, "already has a program")
}

func TestProgramService_LogCompletion(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	rec, err := e.program.LogCompletion(context.Background(), contract.LogCompletionRequest{
		UserID:     "test-user",
		ExerciseID: "se-grounding-walk",
		Minutes:    20,
		Note:       "kept drifting into plans",
		Insights:   []string{"walking helps"},
		Now:        &now,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	prog, err := e.program.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 1, prog.TotalCompleted)
	assert.Equal(t, 1, prog.StreakDays)
	assert.Equal(t, []string{"walking helps"}, prog.Insights)

	// The profile's integration level moved with the completion.
	prof, err := e.profile.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Greater(t, prof.IntegrationLevel, 0)
}

func TestProgramService_LogCompletion_WrongExercise(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	// A Ti exercise never appears in an INTJ program (shadow is Se).
	_, err := e.program.LogCompletion(context.Background(), contract.LogCompletionRequest{
		UserID: "test-user", ExerciseID: "ti-steelman", Minutes: 10, Now: &now,
	})
	assert.ErrorContains(t, err, "not part of week")

	prog, err := e.program.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 0, prog.TotalCompleted)
}

func TestProgramService_LogCompletion_InvalidMinutes(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	_, err := e.program.LogCompletion(context.Background(), contract.LogCompletionRequest{
		UserID: "test-user", ExerciseID: "se-grounding-walk", Minutes: 0, Now: &now,
	})
	assert.ErrorContains(t, err, "minutes")
}

func TestProgramService_Reflect_BeforeAnyCompletion(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")

	now := testutil.Now
	err := e.program.Reflect(context.Background(), contract.ReflectRequest{
		UserID:  "test-user",
		Answers: map[string]string{"w1-noticed": "during the commute"},
		Now:     &now,
	})
	assert.ErrorIs(t, err, domain.ErrNotStarted)
}

func TestProgramService_AdvanceGate(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "INTJ")
	ctx := context.Background()

	// Not started yet.
	check, err := e.program.CheckAdvance(ctx, "test-user")
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.ErrorIs(t, check.Reason, domain.ErrNotStarted)
	assert.Equal(t, progress.MinCompletionsToAdvance, check.CompletionsNeeded)

	// Three completions: still two short.
	logN(t, e, "se-grounding-walk", 3, testutil.Now)
	check, err = e.program.CheckAdvance(ctx, "test-user")
	require.NoError(t, err)
	assert.ErrorIs(t, check.Reason, domain.ErrInsufficientCompletions)
	assert.Equal(t, 2, check.CompletionsNeeded)

	now := testutil.Now
	_, err = e.program.Advance(ctx, "test-user", &now)
	assert.ErrorIs(t, err, domain.ErrInsufficientCompletions)

	// Five completions but no reflection.
	logN(t, e, "se-single-task-meal", 2, testutil.Now.Add(3*time.Hour))
	_, err = e.program.Advance(ctx, "test-user", &now)
	assert.ErrorIs(t, err, domain.ErrReflectionRequired)

	// Reflection recorded: the gate opens.
	err = e.program.Reflect(ctx, contract.ReflectRequest{
		UserID:  "test-user",
		Answers: map[string]string{"w1-noticed": "in the kitchen, hands busy"},
		Now:     &now,
	})
	require.NoError(t, err)

	prog, err := e.program.Advance(ctx, "test-user", &now)
	require.NoError(t, err)
	assert.Equal(t, 2, prog.CurrentWeek)

	// Week 1 is stamped completed.
	assert.Equal(t, domain.WeekCompleted, prog.WeekStatusOf(1))
	assert.Equal(t, domain.WeekCurrent, prog.WeekStatusOf(2))
	assert.Equal(t, domain.WeekLocked, prog.WeekStatusOf(3))
}

func TestProgramService_FullJourney(t *testing.T) {
	e := newEnv(t)
	startProgram(t, e, "ENFP")
	ctx := context.Background()

	exercises := []string{"si-body-scan", "si-routine-anchor"}
	day := testutil.Now
	for week := 1; week < domain.FinalWeek; week++ {
		logN(t, e, exercises[week%2], progress.MinCompletionsToAdvance, day)
		require.NoError(t, e.program.Reflect(ctx, contract.ReflectRequest{
			UserID:  "test-user",
			Answers: map[string]string{fmt.Sprintf("w%d-a", week): "answered"},
			Now:     &day,
		}))
		prog, err := e.program.Advance(ctx, "test-user", &day)
		require.NoError(t, err)
		assert.Equal(t, week+1, prog.CurrentWeek)
		day = day.Add(7 * 24 * time.Hour)
	}

	// At the final week the frontier is pinned.
	logN(t, e, "si-body-scan", progress.MinCompletionsToAdvance, day)
	require.NoError(t, e.program.Reflect(ctx, contract.ReflectRequest{
		UserID:  "test-user",
		Answers: map[string]string{"w8-a": "answered"},
		Now:     &day,
	}))
	_, err := e.program.Advance(ctx, "test-user", &day)
	assert.ErrorIs(t, err, domain.ErrAtFinalWeek)

	prog, err := e.program.Get(ctx, "test-user")
	require.NoError(t, err)
	assert.Equal(t, domain.FinalWeek, prog.CurrentWeek)
	assert.Equal(t, 8*progress.MinCompletionsToAdvance, prog.TotalCompleted)

	prof, err := e.profile.Get(ctx, "test-user")
	require.NoError(t, err)
	// Seven advanced weeks and forty completions put integration well past
	// the beginner band.
	assert.GreaterOrEqual(t, prof.IntegrationLevel, 60)
}
