// Package catalog holds the immutable program reference data: the eight
// weekly themes and the exercise catalogue, plus the binding that turns them
// into a concrete program skeleton for one personality type.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mverral/umbra/internal/domain"
)

// Catalog is an injected, immutable lookup table. Engine code receives a
// Catalog instead of reaching into package-level literals so the reference
// data can be tested and extended independently.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]domain.Exercise
	themes    map[int]domain.WeekTheme
}

// New builds a Catalog from the given reference data. Theme weeks must cover
// 1..8 exactly once and exercise ids must be unique.
func New(exercises []domain.Exercise, themes []domain.WeekTheme) (*Catalog, error) {
	c := &Catalog{
		exercises: exercises,
		byID:      make(map[string]domain.Exercise, len(exercises)),
		themes:    make(map[int]domain.WeekTheme, len(themes)),
	}
	for _, ex := range exercises {
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		c.byID[ex.ID] = ex
	}
	for _, th := range themes {
		if th.Week < domain.FirstWeek || th.Week > domain.FinalWeek {
			return nil, fmt.Errorf("theme week %d out of range", th.Week)
		}
		if _, dup := c.themes[th.Week]; dup {
			return nil, fmt.Errorf("duplicate theme for week %d", th.Week)
		}
		c.themes[th.Week] = th
	}
	for w := domain.FirstWeek; w <= domain.FinalWeek; w++ {
		if _, ok := c.themes[w]; !ok {
			return nil, fmt.Errorf("missing theme for week %d", w)
		}
	}
	return c, nil
}

// Default returns the built-in catalogue.
func Default() *Catalog {
	c, err := New(defaultExercises, defaultThemes)
	if err != nil {
		// The built-in tables are compile-time data; a failure here is a bug.
		panic(err)
	}
	return c
}

// ExerciseByID looks up an exercise by id.
func (c *Catalog) ExerciseByID(id string) (domain.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// Theme returns the theme for the given week.
func (c *Catalog) Theme(week int) (domain.WeekTheme, bool) {
	th, ok := c.themes[week]
	return th, ok
}

// ExercisesFor returns, in catalogue order, the exercises targeting fn that
// are valid for the given type.
func (c *Catalog) ExercisesFor(fn domain.CognitiveFunction, t domain.PersonalityType) []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range c.exercises {
		if ex.TargetFunction == fn && ex.ValidFor(t) {
			out = append(out, ex)
		}
	}
	return out
}

// BindProgram produces the eight bound weeks for a personality type: each
// week carries the shared theme with prompts resolved for the type's shadow
// function, plus the exercises targeting that function. Binding is
// deterministic; calling it twice yields structurally equal output.
func (c *Catalog) BindProgram(t domain.PersonalityType) ([]domain.BoundWeek, error) {
	shadow, err := domain.ResolveInferior(t)
	if err != nil {
		return nil, err
	}

	exercises := c.ExercisesFor(shadow, t)
	weeks := make([]domain.BoundWeek, 0, domain.FinalWeek)
	for w := domain.FirstWeek; w <= domain.FinalWeek; w++ {
		theme := c.themes[w]
		theme.Prompts = resolvePrompts(theme.Prompts, shadow)
		weeks = append(weeks, domain.BoundWeek{
			Number:    w,
			Theme:     theme,
			Exercises: exercises,
		})
	}
	return weeks, nil
}

// functionPlaceholder is the token theme prompt templates use for the
// shadow function's display name.
const functionPlaceholder = "{function}"

func resolvePrompts(prompts []domain.ReflectionPrompt, shadow domain.CognitiveFunction) []domain.ReflectionPrompt {
	out := make([]domain.ReflectionPrompt, len(prompts))
	for i, p := range prompts {
		p.Template = strings.ReplaceAll(p.Template, functionPlaceholder, shadow.DisplayName())
		out[i] = p
	}
	return out
}
