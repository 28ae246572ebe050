package dataset

import (
	"context"
	"fmt"

	"jobinsights/internal/models"
)

// JobAdLister is the part of the database layer the Postgres source needs.
type JobAdLister interface {
	ListJobAds(ctx context.Context) ([]models.JobAd, error)
}

// PostgresSource reads job ads from the job_ads table, in import order.
// Dates are already typed, so only missing dates are counted.
type PostgresSource struct {
	DB   JobAdLister
	Opts Options
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) (*Result, error) {
	ads, err := s.DB.ListJobAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load job ads from postgres: %w", err)
	}

	var stats LoadStats
	for i := range ads {
		stats.Rows++
		if ads[i].Date == nil {
			stats.MissingDates++
		}
		if s.Opts.StripHTML {
			if text, converted := htmlToText(ads[i].Description); converted {
				ads[i].Description = text
				stats.HTMLConverted++
			}
		}
	}

	return &Result{Ads: ads, Stats: stats}, nil
}
