// Package insights runs the keyword pipeline for one filter selection over a
// dataset loaded once at startup.
package insights

import (
	"errors"
	"time"

	"jobinsights/internal/keywords"
	"jobinsights/internal/models"
	"jobinsights/internal/report"
)

// Selection errors.
var (
	ErrUnknownTitle      = errors.New("unknown job title")
	ErrUnknownExperience = errors.New("unknown experience level")
	ErrNoArtifacts       = errors.New("keyword artifacts are required")
	ErrNoNormalizer      = errors.New("normalizer is required")
)

// Settings tune how reports are built.
type Settings struct {
	TopN int // entries in the top skills chart; report.DefaultTopN when zero

	// OnPass, when set, is called after every pass with its duration and
	// whether the selection was empty.
	OnPass func(elapsed time.Duration, empty bool)
}

// Context is the immutable state every pass reads: the loaded ads, compiled
// keyword artifacts and the normalizer. It is safe for concurrent use.
type Context struct {
	ads        []models.JobAd
	artifacts  *keywords.Artifacts
	normalizer keywords.Normalizer
	options    Options
	settings   Settings
}

// NewContext builds a Context. The ads slice is copied.
func NewContext(ads []models.JobAd, artifacts *keywords.Artifacts, n keywords.Normalizer, settings Settings) (*Context, error) {
	if artifacts == nil {
		return nil, ErrNoArtifacts
	}
	if n == nil {
		return nil, ErrNoNormalizer
	}
	if settings.TopN <= 0 {
		settings.TopN = report.DefaultTopN
	}

	owned := make([]models.JobAd, len(ads))
	copy(owned, ads)

	return &Context{
		ads:        owned,
		artifacts:  artifacts,
		normalizer: n,
		options:    collectOptions(owned),
		settings:   settings,
	}, nil
}

// Len returns the number of loaded ads.
func (c *Context) Len() int {
	return len(c.ads)
}

// Artifacts returns the compiled keyword artifacts.
func (c *Context) Artifacts() *keywords.Artifacts {
	return c.artifacts
}

// TopN returns the configured size of the top skills chart.
func (c *Context) TopN() int {
	return c.settings.TopN
}

// Options returns the filter choices present in the data.
func (c *Context) Options() Options {
	return c.options
}

// Select returns the ads matching filter, in load order.
func (c *Context) Select(f Filter) []models.JobAd {
	var selected []models.JobAd
	for i := range c.ads {
		if c.ads[i].MatchesTitle(f.Title) && c.ads[i].MatchesExperience(f.ExperienceLevels) {
			selected = append(selected, c.ads[i])
		}
	}
	return selected
}

// AdsByTitle counts the loaded ads per title.
func (c *Context) AdsByTitle() map[string]int {
	counts := make(map[string]int, len(c.options.Titles))
	for i := range c.ads {
		counts[c.ads[i].Title]++
	}
	return counts
}

// PatternCounts returns the number of compiled patterns per set.
func (c *Context) PatternCounts() map[string]int {
	return map[string]int{
		keywords.SetGroups:     c.artifacts.Groups.Len(),
		keywords.SetVariations: c.artifacts.Variations.Len(),
	}
}
