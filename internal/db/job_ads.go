package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobinsights/internal/models"
)

// ListJobAds returns every job ad in import order.
func (d *DB) ListJobAds(ctx context.Context) ([]models.JobAd, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, description, title, experience_level, posted_at
		FROM job_ads
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job ads: %w", err)
	}
	defer rows.Close()

	var ads []models.JobAd
	for rows.Next() {
		var ad models.JobAd
		if err := rows.Scan(&ad.ID, &ad.Description, &ad.Title, &ad.ExperienceLevel, &ad.Date); err != nil {
			return nil, fmt.Errorf("failed to scan job ad: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// CountJobAds returns the number of stored job ads.
func (d *DB) CountJobAds(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_ads`).Scan(&n)
	return n, err
}

// ImportJobAds stores ads after any existing rows, keeping their order.
// With replace set, existing rows are removed first. The import is atomic.
// Ads without an ID are assigned one.
func (d *DB) ImportJobAds(ctx context.Context, ads []models.JobAd, replace bool) (int64, error) {
	if len(ads) == 0 {
		return 0, ErrNoJobAds
	}
	for i := range ads {
		if ads[i].Title == "" {
			return 0, fmt.Errorf("%w: row %d", ErrJobAdMissingTitle, i+1)
		}
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if replace {
		if _, err := tx.Exec(ctx, `DELETE FROM job_ads`); err != nil {
			return 0, fmt.Errorf("failed to clear job ads: %w", err)
		}
	}

	var offset int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(position), 0) FROM job_ads`).Scan(&offset); err != nil {
		return 0, fmt.Errorf("failed to read import position: %w", err)
	}

	rows := make([][]any, len(ads))
	for i := range ads {
		if ads[i].ID == uuid.Nil {
			ads[i].ID = uuid.New()
		}
		rows[i] = []any{
			ads[i].ID,
			offset + i + 1,
			ads[i].Description,
			ads[i].Title,
			ads[i].ExperienceLevel,
			ads[i].Date,
		}
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"job_ads"},
		[]string{"id", "position", "description", "title", "experience_level", "posted_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy job ads: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return n, nil
}
