package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"jobinsights/internal/keywords"
)

// YAMLConfig represents the structure of the config.yaml file.
// Dashboard layout that's easier to manage in YAML than env vars.
type YAMLConfig struct {
	Artifacts keywords.Files  `yaml:"artifacts"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DashboardConfig controls what the dashboard shows beside the charts.
type DashboardConfig struct {
	TopN       int          `yaml:"top_n"` // overridden by TOP_N
	Facts      []FactConfig `yaml:"facts"` // static sidebar facts, in order
	Heading    string       `yaml:"heading"`
	Subheading string       `yaml:"subheading"`
}

// FactConfig is one labelled line in the data overview sidebar.
type FactConfig struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// DefaultFacts are shown when config.yaml lists none.
var DefaultFacts = []FactConfig{
	{Label: "Data Source", Value: "LinkedIn Jobs"},
	{Label: "Update Frequency", Value: "Weekly"},
	{Label: "Jobs Location", Value: "United States"},
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// A missing file yields the defaults.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	var cfg YAMLConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Config file is optional
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Artifacts.Categories == "" {
		cfg.Artifacts.Categories = keywords.DefaultFiles.Categories
	}
	if cfg.Artifacts.GroupPatterns == "" {
		cfg.Artifacts.GroupPatterns = keywords.DefaultFiles.GroupPatterns
	}
	if cfg.Artifacts.VariationPatterns == "" {
		cfg.Artifacts.VariationPatterns = keywords.DefaultFiles.VariationPatterns
	}
	if len(cfg.Dashboard.Facts) == 0 {
		cfg.Dashboard.Facts = DefaultFacts
	}
	if cfg.Dashboard.Heading == "" {
		cfg.Dashboard.Heading = "Overview"
	}
	if cfg.Dashboard.Subheading == "" {
		cfg.Dashboard.Subheading = "Overview of which type of relevant keywords are present in job ads"
	}

	return &cfg, nil
}

// ResolveTopN picks the top skills size: TOP_N, then config.yaml, then 0
// (the report default).
func (c *YAMLConfig) ResolveTopN(cfg *Config) int {
	if cfg != nil && cfg.TopN > 0 {
		return cfg.TopN
	}
	if c != nil && c.Dashboard.TopN > 0 {
		return c.Dashboard.TopN
	}
	return 0
}
