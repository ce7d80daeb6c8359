package progress

import (
	"math"
	"sort"
	"time"

	"github.com/mverral/umbra/internal/domain"
)

// Streak derives the consecutive-day activity streak ending today from the
// raw completion log. Dates are truncated to day granularity in now's
// location. A streak survives an empty today as long as the most recent
// completion was yesterday; any gap of more than one day ends the walk.
func Streak(p *domain.Program, now time.Time) int {
	seen := map[time.Time]bool{}
	for _, c := range p.AllCompletions() {
		seen[dayOf(c.CompletedAt.In(now.Location()))] = true
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	if daysBetween(days[0], today) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// PracticeHours sums completion minutes across all weeks, converted to
// hours and rounded to one decimal place.
func PracticeHours(p *domain.Program) float64 {
	minutes := 0
	for _, c := range p.AllCompletions() {
		minutes += c.Minutes
	}
	return math.Round(float64(minutes)/60*10) / 10
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the calendar-day distance from earlier a to later b.
// Both values are remapped to UTC midnights first so DST transitions, which
// make local days 23 or 25 hours long, cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
