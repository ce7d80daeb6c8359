package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// HumanTimestamp formats a timestamp for table cells.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("Jan 2 15:04")
}

// HumanHours renders fractional hours like "3.5h".
func HumanHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// Truncate shortens a string to max visible characters with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// StreakLabel renders the day streak with a flame when it is alive.
func StreakLabel(days int) string {
	if days <= 0 {
		return StyleDim.Render("no streak")
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return StyleYellow.Render(fmt.Sprintf("🔥 %d %s", days, unit))
}
