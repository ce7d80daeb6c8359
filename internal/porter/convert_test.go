package porter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC)

func fixturePair(t *testing.T) (*domain.Program, *domain.Profile) {
	t.Helper()
	cat := catalog.Default()
	weeks, err := cat.BindProgram("INFJ")
	require.NoError(t, err)

	week1Done := testNow.AddDate(0, 0, -6)
	lastActive := testNow.Add(-3 * time.Hour)
	program := &domain.Program{
		ID:             "prog-1",
		UserID:         "user-1",
		Type:           "INFJ",
		ShadowFunction: domain.Se,
		StartDate:      testNow.AddDate(0, 0, -14),
		CurrentWeek:    2,
		Weeks:          weeks,
		TotalCompleted: 6,
		StreakDays:     3,
		Insights:       []string{"slowing down is not failing"},
		LastActivityAt: &lastActive,
		CreatedAt:      testNow.AddDate(0, 0, -14),
		UpdatedAt:      testNow,
		Progress: []*domain.WeekProgress{
			{
				Week:        1,
				StartedAt:   testNow.AddDate(0, 0, -13),
				CompletedAt: &week1Done,
				Completions: []domain.ExerciseCompletion{
					{
						ID: "c1", ExerciseID: "se-grounding-walk",
						CompletedAt: testNow.AddDate(0, 0, -13), Minutes: 15,
						Note: "windy", Insights: []string{"noticed more"},
						DifficultyFelt: "easy", WantRepeat: true,
					},
					{
						ID: "c2", ExerciseID: "se-grounding-walk",
						CompletedAt: testNow.AddDate(0, 0, -12), Minutes: 20,
					},
				},
				Reflection: &domain.WeeklyReflection{
					Answers:     map[string]string{"w1-noticed": "during meetings"},
					CompletedAt: testNow.AddDate(0, 0, -7),
				},
			},
			{
				Week:      2,
				StartedAt: testNow.AddDate(0, 0, -5),
				Completions: []domain.ExerciseCompletion{
					{ID: "c3", ExerciseID: "se-single-task-meal", CompletedAt: testNow.Add(-3 * time.Hour), Minutes: 20},
				},
			},
		},
	}

	profile := &domain.Profile{
		ID: "prof-1", UserID: "user-1", Type: "INFJ",
		Dominant: domain.Ni, Auxiliary: domain.Fe, Tertiary: domain.Ti, Inferior: domain.Se,
		IntegrationLevel: 17,
		Triggers:         []string{"criticism", "sudden change"},
		Patterns:         []string{"withdrawal"},
		Breakthroughs: []domain.Breakthrough{
			{ID: "b1", Week: 1, Note: "stayed present during conflict", OccurredAt: testNow.AddDate(0, 0, -8)},
		},
		GrowthAreas: []domain.GrowthArea{
			{Name: "presence", Progress: 35, UpdatedAt: testNow.AddDate(0, 0, -2)},
		},
		CreatedAt: testNow.AddDate(0, 0, -14),
		UpdatedAt: testNow,
	}
	return program, profile
}

func TestExportImport_RoundTrip(t *testing.T) {
	program, profile := fixturePair(t)

	data, err := Export(program, profile, testNow)
	require.NoError(t, err)

	gotProgram, gotProfile, err := Import(data, catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, program, gotProgram)
	assert.Equal(t, profile, gotProfile)

	// Timestamps must come back as real time values, not strings.
	assert.Equal(t, program.Progress[0].Completions[0].CompletedAt,
		gotProgram.Progress[0].Completions[0].CompletedAt)
	require.NotNil(t, gotProgram.LastActivityAt)
	assert.True(t, gotProgram.LastActivityAt.Equal(*program.LastActivityAt))
}

func TestExport_DocumentShape(t *testing.T) {
	program, profile := fixturePair(t)
	data, err := Export(program, profile, testNow)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, ArchiveVersion, doc["version"])
	assert.Contains(t, doc, "program")
	assert.Contains(t, doc, "profile")

	// Bound weeks are reference data and stay out of the archive.
	assert.NotContains(t, string(data), "\"weeks\"")
}

func TestImport_RejectsBadInput(t *testing.T) {
	cat := catalog.Default()

	_, _, err := Import([]byte("{not json"), cat)
	assert.ErrorContains(t, err, "parsing archive")

	_, _, err = Import([]byte(`{"version": 99}`), cat)
	assert.ErrorContains(t, err, "unsupported archive version")

	program, profile := fixturePair(t)
	data, err := Export(program, profile, testNow)
	require.NoError(t, err)

	corrupted := strings.Replace(string(data), `"INFJ"`, `"ZZZZ"`, 1)
	_, _, err = Import([]byte(corrupted), cat)
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	mangled := strings.Replace(string(data), program.StartDate.Format(time.RFC3339Nano), "not-a-date", 1)
	_, _, err = Import([]byte(mangled), cat)
	assert.ErrorContains(t, err, "start_date")
}

func TestExport_NilInputs(t *testing.T) {
	_, err := Export(nil, nil, testNow)
	assert.Error(t, err)
}
