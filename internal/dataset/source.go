// Package dataset loads job ads from a CSV export, a SQLite file or Postgres.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"jobinsights/internal/models"
)

// Source kinds.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Dataset loading errors.
var (
	ErrMissingColumn = errors.New("required column is missing")
	ErrUnknownSource = errors.New("unknown job source")
)

// Source loads every job ad once. Ads keep the order of the source.
type Source interface {
	Load(ctx context.Context) (*Result, error)
}

// Result is a loaded table plus what was recovered along the way.
type Result struct {
	Ads   []models.JobAd
	Stats LoadStats
}

// LoadStats counts recoverable problems seen while loading.
type LoadStats struct {
	Rows            int
	UnparsableDates int
	MissingDates    int
	HTMLConverted   int
}

// LogValue implements slog.LogValuer.
func (s LoadStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rows", s.Rows),
		slog.Int("unparsable_dates", s.UnparsableDates),
		slog.Int("missing_dates", s.MissingDates),
		slog.Int("html_converted", s.HTMLConverted),
	)
}

// Options control row cleanup shared by every source.
type Options struct {
	StripHTML bool // convert HTML descriptions to plain text
}

// rowBuilder turns raw column values into a JobAd and tracks LoadStats.
type rowBuilder struct {
	opts  Options
	stats LoadStats
}

func (b *rowBuilder) build(description, title, experience, rawDate string) models.JobAd {
	b.stats.Rows++

	if b.opts.StripHTML {
		if text, converted := htmlToText(description); converted {
			description = text
			b.stats.HTMLConverted++
		}
	}

	ad := models.JobAd{
		Description:     description,
		Title:           strings.TrimSpace(title),
		ExperienceLevel: strings.TrimSpace(experience),
	}

	date, err := ParseDate(rawDate)
	switch {
	case errors.Is(err, errNoDate):
		b.stats.MissingDates++
	case err != nil:
		b.stats.UnparsableDates++
		slog.Debug("unparsable job ad date", "row", b.stats.Rows, "value", rawDate, "error", err)
	default:
		ad.Date = date
	}

	return ad
}

// Describe returns a short human label for a source, for logs.
func Describe(kind, location string) string {
	return fmt.Sprintf("%s:%s", kind, location)
}
