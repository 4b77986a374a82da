package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newwdead/cardkit/pkg/validator"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	fixStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fieldStyle   = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// renderReport writes the per-field verdict table followed by the summary box.
func renderReport(w io.Writer, results map[string]validator.Result, summary validator.Summary) {
	for _, field := range slices.Sorted(maps.Keys(results)) {
		r := results[field]

		mark := okStyle.Render("✓")
		if !r.Valid {
			mark = failStyle.Render("✗")
		}

		line := fmt.Sprintf("%s %s %s", mark, fieldStyle.Render(field), valueLabel(r))
		if r.HasCorrection() {
			line += " " + fixStyle.Render("→ "+r.Corrected)
		}
		if r.Message != "" {
			line += " " + dimStyle.Render("("+r.Message+")")
		}
		line += " " + dimStyle.Render(fmt.Sprintf("[%.2f]", r.Confidence))

		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryStyle.Render(summaryText(summary)))
}

func valueLabel(r validator.Result) string {
	if r.Original == "" {
		return dimStyle.Render("<empty>")
	}
	return r.Original
}

func summaryText(s validator.Summary) string {
	verdict := okStyle.Render("VALID")
	if !s.Valid {
		verdict = failStyle.Render("INVALID")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d fields, %d valid, %d corrected\n", verdict,
		s.TotalFields, s.ValidFields, s.CorrectedFields)
	fmt.Fprintf(&b, "avg confidence %.2f", s.AvgConfidence)
	if len(s.Errors) > 0 {
		fmt.Fprintf(&b, "\n%d field(s) need review", len(s.Errors))
	}
	return b.String()
}
