package models

import (
	"time"

	"github.com/google/uuid"
)

// JobAd is one row of the job-ad table. It is never modified after loading.
type JobAd struct {
	ID              uuid.UUID  `json:"id"`
	Description     string     `json:"description"`
	Title           string     `json:"title"`
	ExperienceLevel string     `json:"experience_level"`
	Date            *time.Time `json:"date"` // nil when the source value could not be parsed
}

// HasDate returns true if the ad carries a usable posting date.
func (j *JobAd) HasDate() bool {
	return j.Date != nil && !j.Date.IsZero()
}

// MatchesTitle returns true if the ad has exactly the given title.
func (j *JobAd) MatchesTitle(title string) bool {
	return j.Title == title
}

// MatchesExperience returns true if the ad's experience level is one of levels.
// An empty levels slice matches nothing.
func (j *JobAd) MatchesExperience(levels []string) bool {
	for _, l := range levels {
		if j.ExperienceLevel == l {
			return true
		}
	}
	return false
}
