package formatter

import (
	"fmt"
	"strings"

	"github.com/mverral/umbra/internal/contract"
)

// FormatRecommendations renders today's ranked exercises for the terminal.
func FormatRecommendations(resp *contract.RecommendResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("week %d · %s exercises", resp.Week, resp.ShadowFunction.DisplayName())))
	b.WriteString("\n\n")

	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("Nothing left to recommend this week. Try `umbra advance`.\n"))
		return b.String()
	}

	for i, rec := range resp.Recommendations {
		b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			StylePurple.Render(fmt.Sprintf("%d.", i+1)),
			Bold(rec.Exercise.Title),
			ImpactLabel(rec.Impact),
			Dim(fmt.Sprintf("(%d)", rec.RelevanceScore)),
		))
		b.WriteString(fmt.Sprintf("   %s · %d min · %s\n",
			Dim(rec.Exercise.ID), rec.Exercise.Minutes, string(rec.Exercise.Difficulty)))
		b.WriteString(fmt.Sprintf("   %s\n", rec.Reason))
		if i < len(resp.Recommendations)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatExerciseDetail renders one recommendation with its full instructions
// and per-factor score breakdown.
func FormatExerciseDetail(rec contract.Recommendation) string {
	var b strings.Builder

	b.WriteString(Bold(rec.Exercise.Title))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %d min · %s · targets %s\n\n",
		rec.Exercise.ID, rec.Exercise.Minutes, string(rec.Exercise.Difficulty),
		rec.Exercise.TargetFunction.DisplayName())))
	b.WriteString(rec.Exercise.Instructions)
	b.WriteString("\n\n")

	for _, r := range rec.Reasons {
		b.WriteString(fmt.Sprintf("  %+.0f  %s\n", r.WeightDelta, r.Message))
	}
	return b.String()
}
