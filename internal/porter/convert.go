package porter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mverral/umbra/internal/catalog"
	"github.com/mverral/umbra/internal/domain"
)

// timeLayout keeps full precision so a round-trip is byte-faithful.
const timeLayout = time.RFC3339Nano

// Export serializes a program/profile pair into the interchange document.
// The bound weeks are not embedded; they are reference data and are rebound
// from the catalogue on import.
func Export(p *domain.Program, prof *domain.Profile, now time.Time) ([]byte, error) {
	if p == nil || prof == nil {
		return nil, fmt.Errorf("nothing to export")
	}

	arch := Archive{
		Version:    ArchiveVersion,
		ExportedAt: now.Format(timeLayout),
		Program:    programToArchive(p),
		Profile:    profileToArchive(prof),
	}
	return json.MarshalIndent(arch, "", "  ")
}

// Import parses an interchange document back into domain structures, with
// every timestamp reconstituted as a time value. Weeks are rebound from the
// given catalogue for the archived personality type.
func Import(data []byte, cat *catalog.Catalog) (*domain.Program, *domain.Profile, error) {
	var arch Archive
	if err := json.Unmarshal(data, &arch); err != nil {
		return nil, nil, fmt.Errorf("parsing archive: %w", err)
	}
	if arch.Version != ArchiveVersion {
		return nil, nil, fmt.Errorf("unsupported archive version %d", arch.Version)
	}

	p, err := programFromArchive(arch.Program, cat)
	if err != nil {
		return nil, nil, fmt.Errorf("program: %w", err)
	}
	prof, err := profileFromArchive(arch.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("profile: %w", err)
	}
	return p, prof, nil
}

func programToArchive(p *domain.Program) ProgramArchive {
	out := ProgramArchive{
		ID:             p.ID,
		UserID:         p.UserID,
		Type:           string(p.Type),
		ShadowFunction: string(p.ShadowFunction),
		StartDate:      p.StartDate.Format(timeLayout),
		CurrentWeek:    p.CurrentWeek,
		TotalCompleted: p.TotalCompleted,
		StreakDays:     p.StreakDays,
		Insights:       p.Insights,
		LastActivityAt: optTimeToString(p.LastActivityAt),
		CreatedAt:      p.CreatedAt.Format(timeLayout),
		UpdatedAt:      p.UpdatedAt.Format(timeLayout),
	}
	for _, wp := range p.Progress {
		out.Progress = append(out.Progress, weekProgressToArchive(wp))
	}
	return out
}

func weekProgressToArchive(wp *domain.WeekProgress) WeekProgressArchive {
	out := WeekProgressArchive{
		Week:        wp.Week,
		StartedAt:   wp.StartedAt.Format(timeLayout),
		CompletedAt: optTimeToString(wp.CompletedAt),
	}
	for _, c := range wp.Completions {
		out.Completions = append(out.Completions, CompletionArchive{
			ID:             c.ID,
			ExerciseID:     c.ExerciseID,
			CompletedAt:    c.CompletedAt.Format(timeLayout),
			Minutes:        c.Minutes,
			Note:           c.Note,
			Insights:       c.Insights,
			DifficultyFelt: c.DifficultyFelt,
			WantRepeat:     c.WantRepeat,
		})
	}
	if wp.Reflection != nil {
		out.Reflection = &ReflectionArchive{
			Answers:     wp.Reflection.Answers,
			CompletedAt: wp.Reflection.CompletedAt.Format(timeLayout),
		}
	}
	return out
}

func profileToArchive(prof *domain.Profile) ProfileArchive {
	out := ProfileArchive{
		ID:               prof.ID,
		UserID:           prof.UserID,
		Type:             string(prof.Type),
		Dominant:         string(prof.Dominant),
		Auxiliary:        string(prof.Auxiliary),
		Tertiary:         string(prof.Tertiary),
		Inferior:         string(prof.Inferior),
		IntegrationLevel: prof.IntegrationLevel,
		Triggers:         prof.Triggers,
		Patterns:         prof.Patterns,
		CreatedAt:        prof.CreatedAt.Format(timeLayout),
		UpdatedAt:        prof.UpdatedAt.Format(timeLayout),
	}
	for _, b := range prof.Breakthroughs {
		out.Breakthroughs = append(out.Breakthroughs, BreakthroughArchive{
			ID: b.ID, Week: b.Week, Note: b.Note,
			OccurredAt: b.OccurredAt.Format(timeLayout),
		})
	}
	for _, ga := range prof.GrowthAreas {
		out.GrowthAreas = append(out.GrowthAreas, GrowthAreaArchive{
			Name: ga.Name, Progress: ga.Progress,
			UpdatedAt: ga.UpdatedAt.Format(timeLayout),
		})
	}
	return out
}

func programFromArchive(a ProgramArchive, cat *catalog.Catalog) (*domain.Program, error) {
	pt := domain.PersonalityType(a.Type)
	weeks, err := cat.BindProgram(pt)
	if err != nil {
		return nil, err
	}

	p := &domain.Program{
		ID:             a.ID,
		UserID:         a.UserID,
		Type:           pt,
		ShadowFunction: domain.CognitiveFunction(a.ShadowFunction),
		CurrentWeek:    a.CurrentWeek,
		Weeks:          weeks,
		TotalCompleted: a.TotalCompleted,
		StreakDays:     a.StreakDays,
		Insights:       a.Insights,
	}
	if p.CurrentWeek < domain.FirstWeek || p.CurrentWeek > domain.FinalWeek {
		return nil, fmt.Errorf("current week %d out of range", p.CurrentWeek)
	}
	if p.StartDate, err = parseTime("start_date", a.StartDate); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime("created_at", a.CreatedAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", a.UpdatedAt); err != nil {
		return nil, err
	}
	if p.LastActivityAt, err = parseOptTime("last_activity_at", a.LastActivityAt); err != nil {
		return nil, err
	}

	for _, wa := range a.Progress {
		wp, err := weekProgressFromArchive(wa)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", wa.Week, err)
		}
		p.Progress = append(p.Progress, wp)
	}
	return p, nil
}

func weekProgressFromArchive(a WeekProgressArchive) (*domain.WeekProgress, error) {
	if a.Week < domain.FirstWeek || a.Week > domain.FinalWeek {
		return nil, fmt.Errorf("week number %d out of range", a.Week)
	}
	wp := &domain.WeekProgress{Week: a.Week}

	var err error
	if wp.StartedAt, err = parseTime("started_at", a.StartedAt); err != nil {
		return nil, err
	}
	if wp.CompletedAt, err = parseOptTime("completed_at", a.CompletedAt); err != nil {
		return nil, err
	}
	for _, ca := range a.Completions {
		done, err := parseTime("completed_at", ca.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("completion %s: %w", ca.ID, err)
		}
		wp.Completions = append(wp.Completions, domain.ExerciseCompletion{
			ID:             ca.ID,
			ExerciseID:     ca.ExerciseID,
			CompletedAt:    done,
			Minutes:        ca.Minutes,
			Note:           ca.Note,
			Insights:       ca.Insights,
			DifficultyFelt: ca.DifficultyFelt,
			WantRepeat:     ca.WantRepeat,
		})
	}
	if a.Reflection != nil {
		done, err := parseTime("reflection completed_at", a.Reflection.CompletedAt)
		if err != nil {
			return nil, err
		}
		wp.Reflection = &domain.WeeklyReflection{
			Answers:     a.Reflection.Answers,
			CompletedAt: done,
		}
	}
	return wp, nil
}

func profileFromArchive(a ProfileArchive) (*domain.Profile, error) {
	if !domain.ValidType(domain.PersonalityType(a.Type)) {
		return nil, fmt.Errorf("%q: %w", a.Type, domain.ErrInvalidType)
	}
	prof := &domain.Profile{
		ID:               a.ID,
		UserID:           a.UserID,
		Type:             domain.PersonalityType(a.Type),
		Dominant:         domain.CognitiveFunction(a.Dominant),
		Auxiliary:        domain.CognitiveFunction(a.Auxiliary),
		Tertiary:         domain.CognitiveFunction(a.Tertiary),
		Inferior:         domain.CognitiveFunction(a.Inferior),
		IntegrationLevel: a.IntegrationLevel,
		Triggers:         a.Triggers,
		Patterns:         a.Patterns,
	}

	var err error
	if prof.CreatedAt, err = parseTime("created_at", a.CreatedAt); err != nil {
		return nil, err
	}
	if prof.UpdatedAt, err = parseTime("updated_at", a.UpdatedAt); err != nil {
		return nil, err
	}
	for _, ba := range a.Breakthroughs {
		at, err := parseTime("occurred_at", ba.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("breakthrough %s: %w", ba.ID, err)
		}
		prof.Breakthroughs = append(prof.Breakthroughs, domain.Breakthrough{
			ID: ba.ID, Week: ba.Week, Note: ba.Note, OccurredAt: at,
		})
	}
	for _, ga := range a.GrowthAreas {
		at, err := parseTime("updated_at", ga.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("growth area %q: %w", ga.Name, err)
		}
		prof.GrowthAreas = append(prof.GrowthAreas, domain.GrowthArea{
			Name: ga.Name, Progress: ga.Progress, UpdatedAt: at,
		})
	}
	return prof, nil
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return t, nil
}

func parseOptTime(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseTime(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optTimeToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}
