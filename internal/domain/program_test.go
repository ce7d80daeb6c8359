package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestWeekStatusOf(t *testing.T) {
	done := testNow.Add(-48 * time.Hour)
	p := &Program{
		CurrentWeek: 3,
		Progress: []*WeekProgress{
			{Week: 1, StartedAt: testNow.Add(-200 * time.Hour), CompletedAt: &done},
			{Week: 2, StartedAt: testNow.Add(-100 * time.Hour)}, // started, never stamped
		},
	}

	assert.Equal(t, WeekCompleted, p.WeekStatusOf(1))
	assert.Equal(t, WeekInProgress, p.WeekStatusOf(2))
	assert.Equal(t, WeekCurrent, p.WeekStatusOf(3))
	assert.Equal(t, WeekLocked, p.WeekStatusOf(4))
	assert.Equal(t, WeekLocked, p.WeekStatusOf(FinalWeek))
}

func TestAllCompletionsAndCompletedWeeks(t *testing.T) {
	done := testNow
	p := &Program{
		CurrentWeek: 2,
		Progress: []*WeekProgress{
			{Week: 1, CompletedAt: &done, Completions: []ExerciseCompletion{
				{ID: "c1", ExerciseID: "ex-1"},
				{ID: "c2", ExerciseID: "ex-1"}, // repeats are distinct records
			}},
			{Week: 2, Completions: []ExerciseCompletion{{ID: "c3", ExerciseID: "ex-2"}}},
		},
	}

	all := p.AllCompletions()
	assert.Len(t, all, 3)
	assert.Equal(t, 1, p.CompletedWeeks())
	assert.Nil(t, p.ProgressFor(3))
	assert.Equal(t, 2, p.ProgressFor(2).Week)
}

func TestUpsertGrowthArea(t *testing.T) {
	later := testNow.Add(time.Hour)
	p := &Profile{}

	p.UpsertGrowthArea("patience", 20, testNow)
	p.UpsertGrowthArea("presence", 10, testNow)
	p.UpsertGrowthArea("patience", 45, later)

	assert.Len(t, p.GrowthAreas, 2, "upsert by name must not append duplicates")
	assert.Equal(t, 45, p.GrowthAreas[0].Progress)
	assert.Equal(t, later, p.GrowthAreas[0].UpdatedAt)

	// Case-sensitive exact match: different case is a different area.
	p.UpsertGrowthArea("Patience", 5, later)
	assert.Len(t, p.GrowthAreas, 3)

	p.UpsertGrowthArea("overflow", 150, testNow)
	assert.Equal(t, 100, p.GrowthAreas[3].Progress, "progress clamps to 100")
}

func TestAddTriggerAndPatternDedupe(t *testing.T) {
	p := &Profile{}
	p.AddTrigger("criticism")
	p.AddTrigger("criticism")
	p.AddPattern("withdrawal")
	p.AddPattern("withdrawal")

	assert.Equal(t, []string{"criticism"}, p.Triggers)
	assert.Equal(t, []string{"withdrawal"}, p.Patterns)
}

func TestExerciseValidFor(t *testing.T) {
	open := Exercise{ID: "ex-open"}
	assert.True(t, open.ValidFor("INTJ"))

	scoped := Exercise{ID: "ex-scoped", ForTypes: []PersonalityType{"INFJ", "INTJ"}}
	assert.True(t, scoped.ValidFor("INTJ"))
	assert.False(t, scoped.ValidFor("ESFP"))
}
