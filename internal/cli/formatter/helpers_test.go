package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "long st...", Truncate("long string here", 10))
}

func TestStreakLabel(t *testing.T) {
	assert.Contains(t, StreakLabel(0), "no streak")
	assert.Contains(t, StreakLabel(1), "1 day")
	assert.Contains(t, StreakLabel(4), "4 days")
}

func TestHumanHours(t *testing.T) {
	assert.Equal(t, "1.5h", HumanHours(1.5))
	assert.Equal(t, "0.0h", HumanHours(0))
}
