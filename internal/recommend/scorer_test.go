package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/domain"
)

func exercise(id string, diff domain.Difficulty, tags, benefits []string) domain.Exercise {
	return domain.Exercise{
		ID:             id,
		TargetFunction: domain.Se,
		Difficulty:     diff,
		Minutes:        15,
		Tags:           tags,
		Benefits:       benefits,
	}
}

func TestScoreExercise_Baseline(t *testing.T) {
	rec := ScoreExercise(ScoringInput{
		Exercise: exercise("ex-1", domain.DifficultyIntermediate, nil, nil),
		Shadow:   domain.Se,
	})
	assert.Equal(t, 50, rec.RelevanceScore)
	assert.Equal(t, domain.ImpactMedium, rec.Impact)
	require.Len(t, rec.Reasons, 1)
	assert.Equal(t, "BASELINE", string(rec.Reasons[0].Code))
}

func TestScoreExercise_TriggerMatchIsCaseInsensitiveSubstring(t *testing.T) {
	rec := ScoreExercise(ScoringInput{
		Exercise: exercise("ex-1", domain.DifficultyIntermediate, []string{"Handling Criticism at work"}, nil),
		Triggers: []string{"criticism"},
		Shadow:   domain.Se,
	})
	assert.Equal(t, 70, rec.RelevanceScore)
	assert.Equal(t, domain.ImpactHigh, rec.Impact)
}

func TestScoreExercise_GrowthAreaMatch(t *testing.T) {
	rec := ScoreExercise(ScoringInput{
		Exercise:    exercise("ex-1", domain.DifficultyIntermediate, nil, []string{"patience", "presence"}),
		GrowthAreas: []string{"patience"},
		Shadow:      domain.Se,
	})
	assert.Equal(t, 65, rec.RelevanceScore)
	assert.Equal(t, domain.ImpactMedium, rec.Impact)
}

func TestScoreExercise_DifficultyBonusMutuallyExclusive(t *testing.T) {
	// Low integration favors beginner work.
	low := ScoreExercise(ScoringInput{
		Exercise:         exercise("ex-1", domain.DifficultyBeginner, nil, nil),
		IntegrationLevel: 10,
		Shadow:           domain.Se,
	})
	assert.Equal(t, 60, low.RelevanceScore)

	// But not advanced work.
	lowAdv := ScoreExercise(ScoringInput{
		Exercise:         exercise("ex-2", domain.DifficultyAdvanced, nil, nil),
		IntegrationLevel: 10,
		Shadow:           domain.Se,
	})
	assert.Equal(t, 50, lowAdv.RelevanceScore)

	// High integration favors advanced work.
	high := ScoreExercise(ScoringInput{
		Exercise:         exercise("ex-3", domain.DifficultyAdvanced, nil, nil),
		IntegrationLevel: 75,
		Shadow:           domain.Se,
	})
	assert.Equal(t, 60, high.RelevanceScore)

	// Mid-range integration gets no difficulty bonus at all.
	mid := ScoreExercise(ScoringInput{
		Exercise:         exercise("ex-4", domain.DifficultyBeginner, nil, nil),
		IntegrationLevel: 45,
		Shadow:           domain.Se,
	})
	assert.Equal(t, 50, mid.RelevanceScore)
}

func TestScoreExercise_AllBonusesStack(t *testing.T) {
	rec := ScoreExercise(ScoringInput{
		Exercise:         exercise("ex-1", domain.DifficultyBeginner, []string{"stress"}, []string{"presence"}),
		Triggers:         []string{"stress"},
		GrowthAreas:      []string{"presence"},
		IntegrationLevel: 5,
		Shadow:           domain.Se,
	})
	assert.Equal(t, 95, rec.RelevanceScore)
	assert.Equal(t, domain.ImpactHigh, rec.Impact)
	assert.Len(t, rec.Reasons, 4)
}

func boundProgram(t *testing.T, pt domain.PersonalityType) *domain.Program {
	t.Helper()
	weeks, err := catalog.Default().BindProgram(pt)
	require.NoError(t, err)
	shadow, err := domain.ResolveInferior(pt)
	require.NoError(t, err)
	return &domain.Program{
		Type:           pt,
		ShadowFunction: shadow,
		CurrentWeek:    1,
		Weeks:          weeks,
	}
}

func TestRank_ExcludesCompletedThisWeek(t *testing.T) {
	p := boundProgram(t, "INTJ")
	doneID := p.Weeks[0].Exercises[0].ID
	p.Progress = []*domain.WeekProgress{{
		Week:        1,
		Completions: []domain.ExerciseCompletion{{ID: "c1", ExerciseID: doneID}},
	}}

	ranked := Rank(p, &domain.Profile{})
	require.NotEmpty(t, ranked)
	for _, r := range ranked {
		assert.NotEqual(t, doneID, r.Exercise.ID, "completed exercises never reappear")
	}
	assert.Len(t, ranked, len(p.Weeks[0].Exercises)-1)
}

func TestRank_StableOrdering(t *testing.T) {
	p := boundProgram(t, "ENFP")
	prof := &domain.Profile{
		Triggers:         []string{"stress"},
		IntegrationLevel: 20,
	}

	a := Rank(p, prof)
	b := Rank(p, prof)
	require.Equal(t, a, b, "identical inputs produce identical ordering")

	for i := 1; i < len(a); i++ {
		assert.GreaterOrEqual(t, a[i-1].RelevanceScore, a[i].RelevanceScore)
	}
}

func TestRank_TiesKeepCatalogueOrder(t *testing.T) {
	p := boundProgram(t, "ISTJ")
	ranked := Rank(p, &domain.Profile{IntegrationLevel: 45}) // no difficulty bonus anywhere

	// With an empty profile at mid integration every score is the base 50,
	// so the ranking must be exactly the bound (catalogue) order.
	require.Len(t, ranked, len(p.Weeks[0].Exercises))
	for i, ex := range p.Weeks[0].Exercises {
		assert.Equal(t, ex.ID, ranked[i].Exercise.ID)
	}
}

func TestRank_DegradesGracefully(t *testing.T) {
	assert.Empty(t, Rank(nil, nil))
	assert.Empty(t, Rank(&domain.Program{CurrentWeek: 1}, nil), "no bound weeks")

	p := boundProgram(t, "ESFP")
	assert.NotEmpty(t, Rank(p, nil), "nil profile still ranks on the baseline")
}
