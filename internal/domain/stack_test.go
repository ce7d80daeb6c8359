package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStack_AllTypesDistinctFunctions(t *testing.T) {
	for _, pt := range AllTypes {
		s, err := ResolveStack(pt)
		require.NoError(t, err, "type %s", pt)

		seen := map[CognitiveFunction]bool{
			s.Dominant: true, s.Auxiliary: true, s.Tertiary: true, s.Inferior: true,
		}
		assert.Len(t, seen, 4, "type %s must have four pairwise-distinct functions", pt)
	}
}

func TestResolveStack_Bijective(t *testing.T) {
	seen := map[FunctionStack]PersonalityType{}
	for _, pt := range AllTypes {
		s, err := ResolveStack(pt)
		require.NoError(t, err)
		if prev, dup := seen[s]; dup {
			t.Fatalf("types %s and %s share a stack", prev, pt)
		}
		seen[s] = pt
	}
	assert.Len(t, seen, 16)
}

func TestResolveStack_StableAcrossCalls(t *testing.T) {
	for _, pt := range AllTypes {
		a, err := ResolveStack(pt)
		require.NoError(t, err)
		b, err := ResolveStack(pt)
		require.NoError(t, err)
		assert.Equal(t, a, b, "type %s", pt)
	}
}

func TestResolveDominantAndInferior(t *testing.T) {
	cases := []struct {
		pt       PersonalityType
		dominant CognitiveFunction
		inferior CognitiveFunction
	}{
		{"INTJ", Ni, Se},
		{"ENFP", Ne, Si},
		{"ISTP", Ti, Fe},
		{"ESFJ", Fe, Ti},
	}
	for _, tc := range cases {
		dom, err := ResolveDominant(tc.pt)
		require.NoError(t, err)
		assert.Equal(t, tc.dominant, dom, "dominant of %s", tc.pt)

		inf, err := ResolveInferior(tc.pt)
		require.NoError(t, err)
		assert.Equal(t, tc.inferior, inf, "inferior of %s", tc.pt)
	}
}

func TestResolveStack_UnknownType(t *testing.T) {
	_, err := ResolveStack("XXXX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ResolveDominant("")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ResolveInferior("intj") // lower case is not a valid code
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestFunctionDisplayName(t *testing.T) {
	assert.Equal(t, "Extraverted Sensing", Se.DisplayName())
	assert.Equal(t, "Introverted Feeling", Fi.DisplayName())
	assert.Equal(t, "Xq", CognitiveFunction("Xq").DisplayName())
}
