package cmd

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"jobinsights/internal/insights"
	"jobinsights/internal/keywords"
	"jobinsights/internal/report"
)

func TestRenderTable_AlignsWideCharacters(t *testing.T) {
	lines := renderTable([]string{"Skill", "Count"}, [][]string{
		{"python", "12"},
		{"日本語", "3"},
	})

	assert.Len(t, lines, 4)
	assert.Equal(t, "| Skill  | Count |", lines[0])
	assert.Equal(t, "| ------ | ----- |", lines[1])

	width := runewidth.StringWidth(lines[0])
	for _, l := range lines[1:] {
		assert.Equal(t, width, runewidth.StringWidth(l), "line %q", l)
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(100))
	assert.Equal(t, strings.Repeat("█", barWidth/2), bar(50))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(250))
}

func TestFormatReport(t *testing.T) {
	r := &insights.Report{
		Filter:    insights.Filter{Title: "Data Analyst", ExperienceLevels: []string{"Entry level"}},
		TotalJobs: 2,
		DateRange: "January-March, 2024",
		TopSkills: []report.RankedKeyword{
			{Rank: 1, Keyword: "python", Count: 2, Percent: 100, DisplayPercent: 100},
			{Rank: 2, Keyword: "sql", Count: 1, Percent: 50, DisplayPercent: 50},
		},
		CategoryTotals: []keywords.CategoryTotal{{Category: "Programming", Total: 3}, {Category: "Cloud"}},
		Categories: []report.RankedCategory{
			{Category: "Programming", Total: 3, Keywords: []report.RankedKeyword{
				{Rank: 1, Keyword: "python", Count: 2, DisplayPercent: 100},
				{Rank: 2, Keyword: "sql", Count: 1, DisplayPercent: 50},
			}},
			{Category: "Cloud", Keywords: []report.RankedKeyword{}},
		},
	}

	out := formatReport(r, nil)

	assert.Contains(t, out, "Data Analyst (Entry level)")
	assert.Contains(t, out, "Total Job Ads: 2")
	assert.Contains(t, out, "Date Range: January-March, 2024")
	assert.Contains(t, out, "| 1    | python | 2     | 100%             |")
	assert.Contains(t, out, "no matching keywords")
}

func TestFormatReport_Empty(t *testing.T) {
	r := &insights.Report{
		Filter:    insights.Filter{Title: "Data Scientist", ExperienceLevels: []string{}},
		DateRange: report.NoDateRange,
		Empty:     true,
		Message:   report.ErrEmptyResult.Error(),
	}

	out := formatReport(r, nil)
	assert.Contains(t, out, "no data for this selection")
	assert.NotContains(t, out, "Top Skills")
}
