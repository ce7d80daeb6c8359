package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrationLevel_Boundaries(t *testing.T) {
	assert.Equal(t, 0, IntegrationLevel(0, 0, 0))
	assert.Equal(t, 100, IntegrationLevel(8, 56, 56))

	// Saturation: exceeding the nominal volume cannot push past 100.
	assert.Equal(t, 100, IntegrationLevel(8, 200, 400))
}

func TestIntegrationLevel_ComponentWeights(t *testing.T) {
	assert.Equal(t, 40, IntegrationLevel(8, 0, 0))
	assert.Equal(t, 40, IntegrationLevel(0, 56, 0))
	assert.Equal(t, 20, IntegrationLevel(0, 0, 56))

	// Half the program, half the volume, no streak: 20 + 20.
	assert.Equal(t, 40, IntegrationLevel(4, 28, 0))
}

func TestIntegrationLevel_Rounding(t *testing.T) {
	// 1/8 weeks = 5.0, 1/56 exercises ≈ 0.714 → 5.71 rounds to 6.
	assert.Equal(t, 6, IntegrationLevel(1, 1, 0))
}

func TestIntegrationLevel_MonotonicInEachArgument(t *testing.T) {
	for weeks := 0; weeks <= 8; weeks++ {
		prev := -1
		for ex := 0; ex <= 60; ex += 5 {
			got := IntegrationLevel(weeks, ex, 0)
			assert.GreaterOrEqual(t, got, prev, "weeks=%d ex=%d", weeks, ex)
			prev = got
		}
	}
	prev := -1
	for streak := 0; streak <= 60; streak += 3 {
		got := IntegrationLevel(2, 10, streak)
		assert.GreaterOrEqual(t, got, prev, "streak=%d", streak)
		prev = got
	}
}

func TestIntegrationLevel_NegativeInputsClampToZero(t *testing.T) {
	assert.Equal(t, 0, IntegrationLevel(-1, -5, -10))
}
