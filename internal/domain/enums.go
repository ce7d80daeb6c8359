package domain

// CognitiveFunction is one of the eight function tags. Four perceive
// (Ni, Ne, Si, Se) and four judge (Ti, Te, Fi, Fe).
type CognitiveFunction string

const (
	Ni CognitiveFunction = "Ni"
	Ne CognitiveFunction = "Ne"
	Si CognitiveFunction = "Si"
	Se CognitiveFunction = "Se"
	Ti CognitiveFunction = "Ti"
	Te CognitiveFunction = "Te"
	Fi CognitiveFunction = "Fi"
	Fe CognitiveFunction = "Fe"
)

// PersonalityType is one of the sixteen 4-letter type codes.
type PersonalityType string

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// WeekStatus is derived from a program's frontier on read, never stored.
type WeekStatus string

const (
	WeekLocked     WeekStatus = "locked"
	WeekCurrent    WeekStatus = "current"
	WeekInProgress WeekStatus = "in_progress"
	WeekCompleted  WeekStatus = "completed"
)

type ImpactTier string

const (
	ImpactHigh   ImpactTier = "high"
	ImpactMedium ImpactTier = "medium"
	ImpactLow    ImpactTier = "low"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

var functionNames = map[CognitiveFunction]string{
	Ni: "Introverted Intuition",
	Ne: "Extraverted Intuition",
	Si: "Introverted Sensing",
	Se: "Extraverted Sensing",
	Ti: "Introverted Thinking",
	Te: "Extraverted Thinking",
	Fi: "Introverted Feeling",
	Fe: "Extraverted Feeling",
}

// DisplayName returns the long-form name of the function, e.g.
// "Extraverted Sensing" for Se. Unknown tags fall back to the raw code.
func (f CognitiveFunction) DisplayName() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return string(f)
}
