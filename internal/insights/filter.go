package insights

import (
	"fmt"
	"slices"
	"strings"

	"jobinsights/internal/models"
)

// Filter selects ads by exact title and any of several experience levels.
type Filter struct {
	Title            string   `json:"title"`
	ExperienceLevels []string `json:"experience_levels"`
}

// Options lists the distinct titles and experience levels, in the order they
// first appear in the data.
type Options struct {
	Titles           []string `json:"titles"`
	ExperienceLevels []string `json:"experience_levels"`
}

func collectOptions(ads []models.JobAd) Options {
	var opts Options
	seenTitle := make(map[string]bool)
	seenLevel := make(map[string]bool)
	for i := range ads {
		if t := ads[i].Title; t != "" && !seenTitle[t] {
			seenTitle[t] = true
			opts.Titles = append(opts.Titles, t)
		}
		if l := ads[i].ExperienceLevel; l != "" && !seenLevel[l] {
			seenLevel[l] = true
			opts.ExperienceLevels = append(opts.ExperienceLevels, l)
		}
	}
	return opts
}

// DefaultFilter selects the first title and the first experience level.
func (c *Context) DefaultFilter() Filter {
	var f Filter
	if len(c.options.Titles) > 0 {
		f.Title = c.options.Titles[0]
	}
	if len(c.options.ExperienceLevels) > 0 {
		f.ExperienceLevels = []string{c.options.ExperienceLevels[0]}
	}
	return f
}

// ResolveFilter checks a requested selection against the data. An empty
// title or a nil levels slice falls back to the default; an empty non-nil
// slice is kept and selects nothing.
func (c *Context) ResolveFilter(title string, levels []string) (Filter, error) {
	def := c.DefaultFilter()

	title = strings.TrimSpace(title)
	if title == "" {
		title = def.Title
	} else if !slices.Contains(c.options.Titles, title) {
		return Filter{}, fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}

	if levels == nil {
		return Filter{Title: title, ExperienceLevels: def.ExperienceLevels}, nil
	}

	resolved := make([]string, 0, len(levels))
	for _, l := range levels {
		l = strings.TrimSpace(l)
		if l == "" || slices.Contains(resolved, l) {
			continue
		}
		if !slices.Contains(c.options.ExperienceLevels, l) {
			return Filter{}, fmt.Errorf("%w: %q", ErrUnknownExperience, l)
		}
		resolved = append(resolved, l)
	}
	return Filter{Title: title, ExperienceLevels: resolved}, nil
}
