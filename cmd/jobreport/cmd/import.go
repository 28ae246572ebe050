package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobinsights/internal/bootstrap"
	"jobinsights/internal/dataset"
)

func newImportCmd(opts *options) *cobra.Command {
	var (
		file      string
		replace   bool
		stripHTML bool
	)

	c := &cobra.Command{
		Use:   "import",
		Short: "Load a job descriptions CSV into the Postgres job_ads table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.JobsPath()
			}

			src := &dataset.CSVSource{Path: file, Opts: dataset.Options{StripHTML: stripHTML || cfg.StripHTML}}
			res, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			database, err := bootstrap.Connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			n, err := database.ImportJobAds(cmd.Context(), res.Ads, replace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "imported %d job ads from %s\n", n, file)
			if res.Stats.UnparsableDates > 0 || res.Stats.MissingDates > 0 {
				fmt.Fprintf(out, "dates: %d missing, %d unparsable\n", res.Stats.MissingDates, res.Stats.UnparsableDates)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "CSV file to import (default: DATA_DIR/job_descriptions.csv)")
	c.Flags().BoolVar(&replace, "replace", false, "delete existing job ads first")
	c.Flags().BoolVar(&stripHTML, "strip-html", false, "convert HTML descriptions to text (env STRIP_HTML)")

	return c
}
