package cmd

import (
	"github.com/spf13/cobra"

	"jobinsights/internal/config"
)

// options holds the flags shared by every command. Empty values keep the
// environment configuration.
type options struct {
	dataDir    string
	source     string
	normalizer string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "jobreport",
		Short:         "Job market keyword reports",
		Long:          "Count skill keywords in job ads and report them by title and experience level.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory with job_descriptions.csv and keyword artifacts (env DATA_DIR)")
	root.PersistentFlags().StringVar(&opts.source, "source", "", "job ad source: csv, sqlite or postgres (env JOB_SOURCE)")
	root.PersistentFlags().StringVar(&opts.normalizer, "normalizer", "", "text normalizer: lemma or stem (env NORMALIZER)")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "dashboard config file (env CONFIG_FILE)")

	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newFiltersCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// load merges the flags over the environment configuration.
func (o *options) load() (*config.Config, *config.YAMLConfig, error) {
	cfg := config.Load()
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
		cfg.JobsFile = "job_descriptions.csv"
	}
	if o.source != "" {
		cfg.JobSource = o.source
	}
	if o.normalizer != "" {
		cfg.Normalizer = o.normalizer
	}

	var (
		layout *config.YAMLConfig
		err    error
	)
	if o.configFile != "" {
		layout, err = config.LoadYAMLConfigFile(o.configFile)
	} else {
		layout, err = config.LoadYAMLConfig()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, layout, nil
}
