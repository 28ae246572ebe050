package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"jobinsights/internal/models"
)

// SQLiteSource reads job ads from a job_ads table in a SQLite file, in rowid
// order. Dates are stored as text and parsed like CSV dates.
type SQLiteSource struct {
	Path string
	Opts Options
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) (*Result, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT description, title, experience_level, COALESCE(CAST(date AS TEXT), '')
		FROM job_ads
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query job ads: %w", err)
	}
	defer rows.Close()

	builder := &rowBuilder{opts: s.Opts}
	var ads []models.JobAd
	for rows.Next() {
		var description, title, experience, date string
		if err := rows.Scan(&description, &title, &experience, &date); err != nil {
			return nil, fmt.Errorf("failed to scan job ad: %w", err)
		}
		ads = append(ads, builder.build(description, title, experience, date))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Result{Ads: ads, Stats: builder.stats}, nil
}
