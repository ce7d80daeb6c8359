package formatter

import (
	"fmt"
	"strings"

	"github.com/mverral/umbra/internal/contract"
)

// FormatDashboard renders the full dashboard body. The bubbletea view and
// the plain fallback share this output.
func FormatDashboard(view *contract.DashboardView) string {
	var b strings.Builder

	week := fmt.Sprintf("Week %d · %s", view.CurrentWeek, view.WeekTitle)
	focus := fmt.Sprintf("%s — %s", view.WeekFocus, view.WeekGoal)
	summary := fmt.Sprintf("%s\n%s\n\n%s\n%s  ·  %s practiced",
		Bold(week), Dim(focus),
		IntegrationBar(view.IntegrationLevel),
		StreakLabel(view.StreakDays), HumanHours(view.PracticeHours))
	b.WriteString(RenderBox(string(view.Type), summary))
	b.WriteString("\n\n")

	b.WriteString(Header("today"))
	b.WriteString("\n")
	if len(view.Recommendations) == 0 {
		b.WriteString(Dim("No recommendations. Everything this week is done.\n"))
	}
	for _, rec := range view.Recommendations {
		b.WriteString(fmt.Sprintf("  %s %s %s\n    %s\n",
			ImpactLabel(rec.Impact), Bold(rec.Exercise.Title),
			Dim(fmt.Sprintf("%d min", rec.Exercise.Minutes)),
			Dim(rec.Reason)))
	}
	b.WriteString("\n")

	b.WriteString(Header("milestones"))
	b.WriteString("\n")
	for _, m := range view.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s\n", StylePurple.Render("◆"), m))
	}
	b.WriteString("\n")

	b.WriteString(Header("recent"))
	b.WriteString("\n")
	if len(view.RecentCompletions) == 0 {
		b.WriteString(Dim("  nothing logged yet\n"))
	}
	for _, c := range view.RecentCompletions {
		line := fmt.Sprintf("  %s  %s (%d min)", Dim(HumanTimestamp(c.CompletedAt)), c.Title, c.Minutes)
		if c.Note != "" {
			line += Dim("  " + Truncate(c.Note, 40))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if view.Advance.Allowed {
		b.WriteString(StyleGreen.Render("Gate open: `umbra advance` unlocks the next week."))
	} else {
		b.WriteString(StyleYellow.Render(view.Advance.Reason))
	}
	b.WriteString("\n")
	return b.String()
}
