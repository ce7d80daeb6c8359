// Package porter round-trips a {program, profile} pair through a JSON
// interchange document. Timestamps travel as RFC 3339 strings and are
// reconstituted as time values on import.
package porter

// ArchiveVersion is stamped into every export.
const ArchiveVersion = 1

// Archive is the top-level interchange document.
type Archive struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Program    ProgramArchive `json:"program"`
	Profile    ProfileArchive `json:"profile"`
}

type ProgramArchive struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Type           string                `json:"type"`
	ShadowFunction string                `json:"shadow_function"`
	StartDate      string                `json:"start_date"`
	CurrentWeek    int                   `json:"current_week"`
	TotalCompleted int                   `json:"total_completed"`
	StreakDays     int                   `json:"streak_days"`
	Insights       []string              `json:"insights,omitempty"`
	LastActivityAt *string               `json:"last_activity_at,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
	Progress       []WeekProgressArchive `json:"progress"`
}

type WeekProgressArchive struct {
	Week        int                 `json:"week"`
	StartedAt   string              `json:"started_at"`
	CompletedAt *string             `json:"completed_at,omitempty"`
	Completions []CompletionArchive `json:"completions"`
	Reflection  *ReflectionArchive  `json:"reflection,omitempty"`
}

type CompletionArchive struct {
	ID             string   `json:"id"`
	ExerciseID     string   `json:"exercise_id"`
	CompletedAt    string   `json:"completed_at"`
	Minutes        int      `json:"minutes"`
	Note           string   `json:"note,omitempty"`
	Insights       []string `json:"insights,omitempty"`
	DifficultyFelt string   `json:"difficulty_felt,omitempty"`
	WantRepeat     bool     `json:"want_repeat,omitempty"`
}

type ReflectionArchive struct {
	Answers     map[string]string `json:"answers"`
	CompletedAt string            `json:"completed_at"`
}

type ProfileArchive struct {
	ID               string                `json:"id"`
	UserID           string                `json:"user_id"`
	Type             string                `json:"type"`
	Dominant         string                `json:"dominant"`
	Auxiliary        string                `json:"auxiliary"`
	Tertiary         string                `json:"tertiary"`
	Inferior         string                `json:"inferior"`
	IntegrationLevel int                   `json:"integration_level"`
	Triggers         []string              `json:"triggers,omitempty"`
	Patterns         []string              `json:"patterns,omitempty"`
	Breakthroughs    []BreakthroughArchive `json:"breakthroughs,omitempty"`
	GrowthAreas      []GrowthAreaArchive   `json:"growth_areas,omitempty"`
	CreatedAt        string                `json:"created_at"`
	UpdatedAt        string                `json:"updated_at"`
}

type BreakthroughArchive struct {
	ID         string `json:"id"`
	Week       int    `json:"week"`
	Note       string `json:"note"`
	OccurredAt string `json:"occurred_at"`
}

type GrowthAreaArchive struct {
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	UpdatedAt string `json:"updated_at"`
}
