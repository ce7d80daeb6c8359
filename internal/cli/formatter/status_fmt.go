package formatter

import (
	"fmt"
	"strings"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
)

// FormatStatus renders the per-week status table plus gate guidance.
func FormatStatus(view *contract.DashboardView) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s · shadow %s", view.Type, view.ShadowFunction.DisplayName())))
	b.WriteString("\n\n")
	b.WriteString(IntegrationBar(view.IntegrationLevel))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  ·  %s practiced  ·  %d exercises total\n\n",
		StreakLabel(view.StreakDays), HumanHours(view.PracticeHours), view.TotalCompleted))

	headers := []string{"WEEK", "THEME", "STATUS", "DONE", "REFLECTED"}
	rows := make([][]string, 0, len(view.Weeks))
	for _, w := range view.Weeks {
		reflected := Dim("–")
		if w.Reflected {
			reflected = StyleGreen.Render("✓")
		}
		done := Dim("0")
		if w.Completions > 0 {
			done = fmt.Sprintf("%d", w.Completions)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.Week),
			weekTitleCell(w),
			WeekStatusLabel(w.Status),
			done,
			reflected,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if view.Advance.Allowed {
		b.WriteString(StyleGreen.Render("Gate open: run `umbra advance` to unlock the next week."))
	} else {
		b.WriteString(StyleYellow.Render(view.Advance.Reason))
	}
	b.WriteString("\n")
	return b.String()
}

func weekTitleCell(w contract.WeekStatusView) string {
	if w.Status == domain.WeekLocked {
		return Dim(w.Title)
	}
	return w.Title
}
