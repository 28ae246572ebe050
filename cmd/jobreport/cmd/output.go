package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"jobinsights/internal/config"
	"jobinsights/internal/insights"
)

// barWidth is the width of a full (100%) bar in the terminal.
const barWidth = 30

// renderTable lays rows out in a markdown-style table, padding cells by
// display width so wide characters stay aligned.
func renderTable(headers []string, rows [][]string) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(runewidth.StringWidth(h), 3)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	line := func(cells []string) string {
		var sb strings.Builder
		sb.WriteString("|")
		for i := range widths {
			content := ""
			if i < len(cells) {
				content = cells[i]
			}
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(content, widths[i]))
			sb.WriteString(" |")
		}
		return sb.String()
	}

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	lines := []string{line(headers), line(separator)}
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	return lines
}

// bar draws a horizontal bar for a percentage.
func bar(percent int) string {
	n := percent * barWidth / 100
	n = min(max(n, 0), barWidth)
	return strings.Repeat("█", n)
}

// formatReport renders a report the way the dashboard lays it out.
func formatReport(r *insights.Report, facts []config.FactConfig) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Job Market Report\n%s\n\n", r.Heading())

	fmt.Fprintln(&sb, "Data Overview")
	fmt.Fprintf(&sb, "  Total Job Ads: %d\n", r.TotalJobs)
	fmt.Fprintf(&sb, "  Date Range: %s\n", r.DateRange)
	for _, f := range facts {
		fmt.Fprintf(&sb, "  %s: %s\n", f.Label, f.Value)
	}
	sb.WriteString("\n")

	if r.Empty {
		fmt.Fprintln(&sb, r.Message)
		return sb.String()
	}

	fmt.Fprintln(&sb, "Top Skills")
	labelWidth := 0
	for _, k := range r.TopSkills {
		labelWidth = max(labelWidth, runewidth.StringWidth(k.Keyword))
	}
	for _, k := range r.TopSkills {
		fmt.Fprintf(&sb, "  %s %s %d%%\n", runewidth.FillRight(k.Keyword, labelWidth), bar(k.DisplayPercent), k.DisplayPercent)
	}
	sb.WriteString("\n")

	fmt.Fprintln(&sb, "Distribution of Skills")
	totals := make([][]string, len(r.CategoryTotals))
	for i, ct := range r.CategoryTotals {
		totals[i] = []string{ct.Category, fmt.Sprint(ct.Total)}
	}
	sb.WriteString(strings.Join(renderTable([]string{"Category", "Total"}, totals), "\n"))
	sb.WriteString("\n\n")

	fmt.Fprintln(&sb, "Top Skills per Category")
	for _, c := range r.Categories {
		fmt.Fprintf(&sb, "\n%s\n", c.Category)
		if len(c.Keywords) == 0 {
			fmt.Fprintln(&sb, "  no matching keywords")
			continue
		}
		rows := make([][]string, len(c.Keywords))
		for i, k := range c.Keywords {
			rows[i] = []string{fmt.Sprint(k.Rank), k.Keyword, fmt.Sprint(k.Count), fmt.Sprintf("%d%%", k.DisplayPercent)}
		}
		sb.WriteString(strings.Join(renderTable([]string{"Rank", "Skill", "Count", "Percent of Total"}, rows), "\n"))
		sb.WriteString("\n")
	}

	return sb.String()
}
