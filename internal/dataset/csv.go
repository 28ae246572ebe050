package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"jobinsights/internal/models"
)

// CSV column names.
const (
	ColumnDescription = "description"
	ColumnTitle       = "title_formatted"
	ColumnExperience  = "experience_level_formatted"
	ColumnDate        = "date"
)

// CSVSource reads job ads from a CSV file with a header row.
type CSVSource struct {
	Path string
	Opts Options
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) (*Result, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job descriptions: %w", err)
	}
	defer f.Close()

	return ReadCSV(ctx, f, s.Opts)
}

// ReadCSV parses job ads from r. The description, title and experience
// columns are required; the date column is optional.
func ReadCSV(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{ColumnDescription, ColumnTitle, ColumnExperience} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	builder := &rowBuilder{opts: opts}
	var ads []models.JobAd

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", builder.stats.Rows+2, err)
		}

		ads = append(ads, builder.build(
			field(record, cols, ColumnDescription),
			field(record, cols, ColumnTitle),
			field(record, cols, ColumnExperience),
			field(record, cols, ColumnDate),
		))
	}

	return &Result{Ads: ads, Stats: builder.stats}, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
