package domain

import "time"

// GrowthArea is a named development focus with its own progress value.
type GrowthArea struct {
	Name      string
	Progress  int // 0..100
	UpdatedAt time.Time
}

// Breakthrough is a timestamped narrative tagged by the week it occurred in.
type Breakthrough struct {
	ID         string
	Week       int
	Note       string
	OccurredAt time.Time
}

// Profile holds the psychological-tracking facts that persist across the
// whole program, parallel to the Program record for the same user.
type Profile struct {
	ID     string
	UserID string
	Type   PersonalityType

	Dominant  CognitiveFunction
	Auxiliary CognitiveFunction
	Tertiary  CognitiveFunction
	Inferior  CognitiveFunction

	// IntegrationLevel is recomputed from program state, never hand-set.
	IntegrationLevel int

	Triggers      []string
	Patterns      []string
	Breakthroughs []Breakthrough
	GrowthAreas   []GrowthArea

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpsertGrowthArea updates the area with the given name (case-sensitive
// exact match), overwriting its progress and timestamp, or appends a new
// one. Progress is clamped to 0..100.
func (p *Profile) UpsertGrowthArea(name string, progress int, now time.Time) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	for i := range p.GrowthAreas {
		if p.GrowthAreas[i].Name == name {
			p.GrowthAreas[i].Progress = progress
			p.GrowthAreas[i].UpdatedAt = now
			return
		}
	}
	p.GrowthAreas = append(p.GrowthAreas, GrowthArea{Name: name, Progress: progress, UpdatedAt: now})
}

// AddTrigger appends a trigger string, skipping exact duplicates.
func (p *Profile) AddTrigger(trigger string) {
	for _, t := range p.Triggers {
		if t == trigger {
			return
		}
	}
	p.Triggers = append(p.Triggers, trigger)
}

// AddPattern appends a behavior pattern, skipping exact duplicates.
func (p *Profile) AddPattern(pattern string) {
	for _, t := range p.Patterns {
		if t == pattern {
			return
		}
	}
	p.Patterns = append(p.Patterns, pattern)
}
