package domain

import "fmt"

// FunctionStack is the ordered 4-tuple of cognitive functions for one
// personality type, from most to least preferred.
type FunctionStack struct {
	Dominant  CognitiveFunction
	Auxiliary CognitiveFunction
	Tertiary  CognitiveFunction
	Inferior  CognitiveFunction
}

// stacks maps every type code to its function stack. The mapping is total
// and bijective: each type has four pairwise-distinct functions.
var stacks = map[PersonalityType]FunctionStack{
	"INTJ": {Ni, Te, Fi, Se},
	"INTP": {Ti, Ne, Si, Fe},
	"ENTJ": {Te, Ni, Se, Fi},
	"ENTP": {Ne, Ti, Fe, Si},
	"INFJ": {Ni, Fe, Ti, Se},
	"INFP": {Fi, Ne, Si, Te},
	"ENFJ": {Fe, Ni, Se, Ti},
	"ENFP": {Ne, Fi, Te, Si},
	"ISTJ": {Si, Te, Fi, Ne},
	"ISFJ": {Si, Fe, Ti, Ne},
	"ESTJ": {Te, Si, Ne, Fi},
	"ESFJ": {Fe, Si, Ne, Ti},
	"ISTP": {Ti, Se, Ni, Fe},
	"ISFP": {Fi, Se, Ni, Te},
	"ESTP": {Se, Ti, Fe, Ni},
	"ESFP": {Se, Fi, Te, Ni},
}

// AllTypes lists the sixteen type codes in a stable order.
var AllTypes = []PersonalityType{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// ResolveStack returns the four-function ordering for the given type code.
func ResolveStack(t PersonalityType) (FunctionStack, error) {
	s, ok := stacks[t]
	if !ok {
		return FunctionStack{}, fmt.Errorf("%q: %w", string(t), ErrInvalidType)
	}
	return s, nil
}

// ResolveDominant returns the type's dominant (first) function.
func ResolveDominant(t PersonalityType) (CognitiveFunction, error) {
	s, err := ResolveStack(t)
	if err != nil {
		return "", err
	}
	return s.Dominant, nil
}

// ResolveInferior returns the type's inferior (fourth) function, the
// development target of the whole program.
func ResolveInferior(t PersonalityType) (CognitiveFunction, error) {
	s, err := ResolveStack(t)
	if err != nil {
		return "", err
	}
	return s.Inferior, nil
}

// ValidType reports whether t is one of the sixteen known type codes.
func ValidType(t PersonalityType) bool {
	_, ok := stacks[t]
	return ok
}
