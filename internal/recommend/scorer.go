// Package recommend ranks the not-yet-completed exercises of a program's
// current week against the owner's profile.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
)

const baseRelevance = 50

// Score thresholds for impact tiers and reason brackets.
const (
	highCutoff   = 70
	mediumCutoff = 50
)

// Integration-level brackets for the difficulty bonus.
const (
	easeInBelow   = 30 // beginner bonus applies under this level
	stretchAtOrUp = 60 // advanced bonus applies at or above this level
)

// ScoringInput carries everything one exercise is scored against.
type ScoringInput struct {
	Exercise         domain.Exercise
	Triggers         []string
	GrowthAreas      []string
	IntegrationLevel int
	Shadow           domain.CognitiveFunction
}

// ScoreExercise computes the relevance of a single candidate. The factors
// mirror the profile: trigger matches outrank growth-area matches, and a
// difficulty bonus nudges newcomers toward beginner work and practiced
// users toward advanced work. At most one difficulty bonus applies.
func ScoreExercise(in ScoringInput) contract.Recommendation {
	score := float64(baseRelevance)
	reasons := []contract.RecommendationReason{{
		Code:        contract.ReasonBaseline,
		Message:     "Targets your shadow function this week",
		WeightDelta: baseRelevance,
	}}

	if trigger, ok := matchAny(in.Exercise.Tags, in.Triggers); ok {
		score += 20
		reasons = append(reasons, contract.RecommendationReason{
			Code:        contract.ReasonTriggerMatch,
			Message:     fmt.Sprintf("Addresses your trigger %q", trigger),
			WeightDelta: 20,
		})
	}

	if area, ok := matchAny(in.Exercise.Benefits, in.GrowthAreas); ok {
		score += 15
		reasons = append(reasons, contract.RecommendationReason{
			Code:        contract.ReasonGrowthAreaMatch,
			Message:     fmt.Sprintf("Builds toward your growth area %q", area),
			WeightDelta: 15,
		})
	}

	switch {
	case in.IntegrationLevel < easeInBelow && in.Exercise.Difficulty == domain.DifficultyBeginner:
		score += 10
		reasons = append(reasons, contract.RecommendationReason{
			Code:        contract.ReasonEaseIn,
			Message:     "Gentle entry point at your current integration level",
			WeightDelta: 10,
		})
	case in.IntegrationLevel >= stretchAtOrUp && in.Exercise.Difficulty == domain.DifficultyAdvanced:
		score += 10
		reasons = append(reasons, contract.RecommendationReason{
			Code:        contract.ReasonStretch,
			Message:     "A stretch worthy of your progress so far",
			WeightDelta: 10,
		})
	}

	final := clamp(int(score))
	return contract.Recommendation{
		Exercise:       in.Exercise,
		RelevanceScore: final,
		Impact:         impactOf(final),
		Reason:         reasonText(final, in),
		Reasons:        reasons,
	}
}

// Rank scores every candidate for the program's current week and returns
// them sorted by descending relevance; ties keep catalogue order. Exercises
// already completed this week never appear. Missing or empty inputs degrade
// to an empty list.
func Rank(p *domain.Program, prof *domain.Profile) []contract.Recommendation {
	if p == nil {
		return nil
	}
	bw := p.BoundWeekFor(p.CurrentWeek)
	if bw == nil {
		return nil
	}

	done := map[string]bool{}
	if wp := p.ProgressFor(p.CurrentWeek); wp != nil {
		for _, c := range wp.Completions {
			done[c.ExerciseID] = true
		}
	}

	var triggers, areas []string
	integration := 0
	if prof != nil {
		triggers = prof.Triggers
		for _, ga := range prof.GrowthAreas {
			areas = append(areas, ga.Name)
		}
		integration = prof.IntegrationLevel
	}

	var out []contract.Recommendation
	for _, ex := range bw.Exercises {
		if done[ex.ID] || !ex.ValidFor(p.Type) {
			continue
		}
		out = append(out, ScoreExercise(ScoringInput{
			Exercise:         ex,
			Triggers:         triggers,
			GrowthAreas:      areas,
			IntegrationLevel: integration,
			Shadow:           p.ShadowFunction,
		}))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}

// matchAny reports the first needle that appears, case-insensitively, as a
// substring of any haystack entry.
func matchAny(haystacks, needles []string) (string, bool) {
	for _, h := range haystacks {
		lh := strings.ToLower(h)
		for _, n := range needles {
			if n == "" {
				continue
			}
			if strings.Contains(lh, strings.ToLower(n)) {
				return n, true
			}
		}
	}
	return "", false
}

func impactOf(score int) domain.ImpactTier {
	switch {
	case score >= highCutoff:
		return domain.ImpactHigh
	case score >= mediumCutoff:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

// reasonText picks the user-facing explanation by score bracket.
func reasonText(score int, in ScoringInput) string {
	switch {
	case score >= highCutoff:
		if len(in.Triggers) > 0 {
			return fmt.Sprintf("Strong match at integration level %d: this works directly on situations that trigger you.", in.IntegrationLevel)
		}
		return fmt.Sprintf("Strong match at integration level %d for developing %s.", in.IntegrationLevel, in.Shadow.DisplayName())
	case score >= mediumCutoff:
		return fmt.Sprintf("Solid practice for developing %s.", in.Shadow.DisplayName())
	default:
		return "Foundational exercise for your shadow work practice."
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
