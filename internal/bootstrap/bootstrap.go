// Package bootstrap builds the insights context from configuration: it picks
// the normalizer, compiles the keyword artifacts and loads the job ads.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobinsights/internal/config"
	"jobinsights/internal/dataset"
	"jobinsights/internal/db"
	"jobinsights/internal/insights"
	"jobinsights/internal/keywords"
	"jobinsights/internal/lemma"
)

// Loaded is the startup state shared by the server and the CLI.
type Loaded struct {
	Context *insights.Context
	Stats   dataset.LoadStats
	Source  string

	// DB is set when ads come from Postgres. The caller closes it.
	DB *db.DB
}

// Close releases the database pool, if any.
func (l *Loaded) Close() {
	if l.DB != nil {
		l.DB.Close()
	}
}

// LoadArtifacts compiles the keyword artifacts named in ycfg from the data
// directory and warns about category members that can never match.
func LoadArtifacts(cfg *config.Config, ycfg *config.YAMLConfig) (*keywords.Artifacts, error) {
	artifacts, err := keywords.LoadArtifacts(cfg.DataDir, ycfg.Artifacts)
	if err != nil {
		return nil, err
	}

	if missing := artifacts.UnmatchableMembers(); len(missing) > 0 {
		slog.Warn("category keywords without a variation pattern are never counted", "keywords", missing)
	}
	slog.Info("keyword artifacts loaded",
		"groups", artifacts.Groups.Len(),
		"variations", artifacts.Variations.Len(),
		"categories", artifacts.Categories.Len(),
	)
	return artifacts, nil
}

// OpenSource returns the job ad source selected by JOB_SOURCE. For Postgres
// it connects, runs migrations and returns the pool for the caller to close.
func OpenSource(ctx context.Context, cfg *config.Config) (dataset.Source, *db.DB, string, error) {
	opts := dataset.Options{StripHTML: cfg.StripHTML}

	switch cfg.JobSource {
	case dataset.SourceCSV:
		path := cfg.JobsPath()
		return &dataset.CSVSource{Path: path, Opts: opts}, nil, dataset.Describe(cfg.JobSource, path), nil
	case dataset.SourceSQLite:
		return &dataset.SQLiteSource{Path: cfg.SQLitePath, Opts: opts}, nil, dataset.Describe(cfg.JobSource, cfg.SQLitePath), nil
	case dataset.SourcePostgres:
		database, err := Connect(ctx, cfg)
		if err != nil {
			return nil, nil, "", err
		}
		return &dataset.PostgresSource{DB: database, Opts: opts}, database, dataset.Describe(cfg.JobSource, "job_ads"), nil
	default:
		return nil, nil, "", fmt.Errorf("%w: %q", dataset.ErrUnknownSource, cfg.JobSource)
	}
}

// Connect opens the Postgres pool and applies migrations.
func Connect(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Load performs every startup step. Any keyword artifact problem is returned
// as a *keywords.ConfigError and must abort startup.
func Load(ctx context.Context, cfg *config.Config, ycfg *config.YAMLConfig, onPass func(time.Duration, bool)) (*Loaded, error) {
	normalizer, err := lemma.NewForAlgorithm(cfg.Normalizer, cfg.LemmaDictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create normalizer: %w", err)
	}

	artifacts, err := LoadArtifacts(cfg, ycfg)
	if err != nil {
		return nil, err
	}

	source, database, label, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result, err := source.Load(ctx)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to load job ads from %s: %w", label, err)
	}
	slog.Info("job ads loaded", "source", label, "normalizer", cfg.Normalizer, "stats", result.Stats)
	if result.Stats.UnparsableDates > 0 {
		slog.Warn("some job ad dates could not be parsed and are treated as missing", "count", result.Stats.UnparsableDates)
	}

	insightsCtx, err := insights.NewContext(result.Ads, artifacts, normalizer, insights.Settings{
		TopN:   ycfg.ResolveTopN(cfg),
		OnPass: onPass,
	})
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	return &Loaded{
		Context: insightsCtx,
		Stats:   result.Stats,
		Source:  label,
		DB:      database,
	}, nil
}
