package notifier

import (
	"fmt"
	"strings"

	"StockScout/internal/model"
)

// FormatRecommendation renders the single-line scan outcome.
func FormatRecommendation(rec model.Recommendation) string {
	if rec.Action == model.ActionBuy {
		return fmt.Sprintf("Buy signal: %s (all checks passed)", rec.Symbol)
	}
	return "No buy opportunity today"
}

// FormatScanReport renders the full scan report: one block per evaluated
// ticker, then the recommendation line.
func FormatScanReport(rec model.Recommendation, verdicts []model.Verdict) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("StockScout scan | %s\n", rec.CreatedAt.Format("2006-01-02 15:04")))

	for _, v := range verdicts {
		if v.Note != "" {
			b.WriteString(fmt.Sprintf("\n%s: skipped (%s)\n", v.Symbol, v.Note))
			continue
		}
		status := "not qualified"
		if v.Qualified {
			status = "QUALIFIED"
		}
		b.WriteString(fmt.Sprintf("\n%s: %s\n", v.Symbol, status))
		for _, c := range v.Checks {
			mark := "fail"
			if c.Passed {
				mark = "pass"
			}
			b.WriteString(fmt.Sprintf("  %-12s %s  %s\n", c.Name, mark, c.Commentary))
		}
	}

	b.WriteString("\n" + FormatRecommendation(rec) + "\n")
	return b.String()
}
