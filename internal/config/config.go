package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Job ad source
	DataDir     string // directory holding the CSV export and keyword artifacts
	JobSource   string // "csv", "sqlite" or "postgres"
	JobsFile    string // CSV file name inside DataDir
	DatabaseURL string
	SQLitePath  string
	StripHTML   bool // convert HTML descriptions to plain text on load

	// Keyword pipeline
	Normalizer          string // "lemma" or "stem"
	LemmaDictionaryFile string // extra lemma word list, one word per line
	TopN                int    // bars in the top skills chart

	// Rate limiter storage; in-memory when empty
	RedisURL string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Client cert via header (for ingress-terminated TLS)
	ClientCertHeader string // Header name containing client cert CN, e.g. "X-Client-CN"

	// OIDC; the dashboard is public when OIDCIssuer is empty
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Job Market Report"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		DataDir:     dataDir,
		JobSource:   strings.ToLower(getEnv("JOB_SOURCE", "csv")),
		JobsFile:    getEnv("JOBS_FILE", "job_descriptions.csv"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/jobinsights?sslmode=disable"),
		SQLitePath:  getEnv("SQLITE_PATH", filepath.Join(dataDir, "jobs.db")),
		StripHTML:   getEnv("STRIP_HTML", "") != "",

		Normalizer:          strings.ToLower(getEnv("NORMALIZER", "lemma")),
		LemmaDictionaryFile: getEnv("LEMMA_DICTIONARY_FILE", ""),
		TopN:                getEnvInt("TOP_N", 0),

		RedisURL: getEnv("REDIS_URL", ""),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		ClientCertHeader: getEnv("CLIENT_CERT_HEADER", ""),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Job Market Report"),
		SiteTagline: getEnv("SITE_TAGLINE", "Which skills job ads ask for"),
		SiteFooter:  getEnv("SITE_FOOTER", "Job Market Report - keyword trends from job ads"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsAuthEnabled returns true if dashboard login is configured.
func (c *Config) IsAuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// JobsPath returns the CSV export location.
func (c *Config) JobsPath() string {
	if filepath.IsAbs(c.JobsFile) {
		return c.JobsFile
	}
	return filepath.Join(c.DataDir, c.JobsFile)
}
