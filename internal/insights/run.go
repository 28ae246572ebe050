package insights

import (
	"errors"
	"strings"
	"time"

	"jobinsights/internal/keywords"
	"jobinsights/internal/models"
	"jobinsights/internal/report"
)

// Report is everything the dashboard shows for one selection.
type Report struct {
	Filter    Filter     `json:"filter"`
	TotalJobs int        `json:"total_jobs"`
	MinDate   *time.Time `json:"min_date"`
	MaxDate   *time.Time `json:"max_date"`
	DateRange string     `json:"date_range"`

	// Empty is set when the selection holds no ads. Projections are then
	// left nil and Message explains why.
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`

	GroupCounts     models.KeywordCounts     `json:"group_counts"`
	VariationCounts models.KeywordCounts     `json:"variation_counts"`
	CategoryCounts  models.CategoryCounts    `json:"category_counts"`
	CategoryTotals  []keywords.CategoryTotal `json:"category_totals"`

	TopSkills  []report.RankedKeyword  `json:"top_skills"`
	Categories []report.RankedCategory `json:"categories"`
}

// Heading labels the selection, e.g. "Data Analyst (Entry level,Associate)".
func (r *Report) Heading() string {
	return r.Filter.Title + " (" + strings.Join(r.Filter.ExperienceLevels, ",") + ")"
}

// MaxCategoryTotal returns the largest category total, used to scale the
// category distribution chart.
func (r *Report) MaxCategoryTotal() int {
	highest := 0
	for _, ct := range r.CategoryTotals {
		if ct.Total > highest {
			highest = ct.Total
		}
	}
	return highest
}

// Run computes a fresh report for filter. Nothing is cached between passes.
func (c *Context) Run(f Filter) *Report {
	start := time.Now()

	selected := c.Select(f)
	descriptions := make([]string, len(selected))
	for i := range selected {
		descriptions[i] = selected[i].Description
	}

	normalized := keywords.NormalizeAll(descriptions, c.normalizer)
	groupCounts := keywords.CountNormalized(normalized, c.artifacts.Groups)
	variationCounts := keywords.CountNormalized(normalized, c.artifacts.Variations)
	categoryCounts := keywords.AggregateByCategory(variationCounts, c.artifacts.Categories)

	minDate, maxDate := report.DateBounds(selected)
	r := &Report{
		Filter:          f,
		TotalJobs:       len(selected),
		MinDate:         minDate,
		MaxDate:         maxDate,
		DateRange:       report.DateRange(minDate, maxDate),
		GroupCounts:     groupCounts,
		VariationCounts: variationCounts,
		CategoryCounts:  categoryCounts,
		CategoryTotals:  keywords.CategoryTotals(categoryCounts),
	}

	if err := c.project(r); errors.Is(err, report.ErrEmptyResult) {
		r.Empty = true
		r.Message = err.Error()
	}

	if c.settings.OnPass != nil {
		c.settings.OnPass(time.Since(start), r.Empty)
	}
	return r
}

func (c *Context) project(r *Report) error {
	ranked, err := report.Project(r.GroupCounts, r.TotalJobs)
	if err != nil {
		return err
	}
	categories, err := report.ProjectCategories(r.CategoryCounts, r.TotalJobs)
	if err != nil {
		return err
	}
	r.TopSkills = report.TopN(ranked, c.settings.TopN)
	r.Categories = categories
	return nil
}
