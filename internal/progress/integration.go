package progress

import (
	"math"

	"github.com/mverral/umbra/internal/domain"
)

// nominalExercises is the full-program exercise volume (7 per week over the
// eight weeks) used to normalize the volume and consistency terms.
const nominalExercises = 7 * domain.FinalWeek

// IntegrationLevel combines program depth and consistency into the 0..100
// composite score:
//
//	40·(completedWeeks/8) + 40·min(totalExercises/56, 1) + 20·min(streakDays/56, 1)
//
// Weeks and exercise volume carry equal weight as the primary depth signal;
// the streak is a smaller capped bonus so one long unbroken streak cannot
// outweigh actual completion. Pure and recomputed on every mutation, never
// stored as independently settable state.
func IntegrationLevel(completedWeeks, totalExercises, streakDays int) int {
	weeks := ratio(completedWeeks, domain.FinalWeek)
	volume := ratio(totalExercises, nominalExercises)
	consistency := ratio(streakDays, nominalExercises)

	return int(math.Round(40*weeks + 40*volume + 20*consistency))
}

// ratio clamps n/d to [0, 1].
func ratio(n, d int) float64 {
	if n <= 0 {
		return 0
	}
	if n >= d {
		return 1
	}
	return float64(n) / float64(d)
}
