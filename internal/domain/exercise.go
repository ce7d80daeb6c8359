package domain

// Exercise is immutable reference data from the catalogue. The engine never
// creates or mutates exercises at runtime.
type Exercise struct {
	ID             string
	Title          string
	TargetFunction CognitiveFunction
	Difficulty     Difficulty
	Minutes        int
	Instructions   string
	Benefits       []string
	Tags           []string

	// ForTypes restricts the exercise to specific type codes. Empty means
	// valid for every type whose inferior matches TargetFunction.
	ForTypes []PersonalityType
}

// ValidFor reports whether the exercise may be offered to the given type.
func (e Exercise) ValidFor(t PersonalityType) bool {
	if len(e.ForTypes) == 0 {
		return true
	}
	for _, ft := range e.ForTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// ReflectionPrompt is one reflection question inside a weekly theme.
// Template may contain the {function} placeholder, replaced with the shadow
// function's display name when a program is bound.
type ReflectionPrompt struct {
	ID       string
	Template string
}

// WeekTheme is the static descriptor for one of the eight program weeks.
type WeekTheme struct {
	Week       int
	Title      string
	Focus      string
	Goal       string
	Prompts    []ReflectionPrompt
	Milestones []string
}
