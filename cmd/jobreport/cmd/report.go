package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jobinsights/internal/bootstrap"
)

func newReportCmd(opts *options) *cobra.Command {
	var (
		title      string
		experience []string
		asJSON     bool
		top        int
	)

	c := &cobra.Command{
		Use:   "report",
		Short: "Print the keyword report for a title and experience levels",
		Example: `  jobreport report --title "Data Analyst" --experience "Entry level" --experience Associate
  jobreport report --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, layout, err := opts.load()
			if err != nil {
				return err
			}
			if top > 0 {
				cfg.TopN = top
			}

			loaded, err := bootstrap.Load(cmd.Context(), cfg, layout, nil)
			if err != nil {
				return err
			}
			defer loaded.Close()

			var levels []string
			if cmd.Flags().Changed("experience") {
				levels = experience
				if levels == nil {
					levels = []string{}
				}
			}

			f, err := loaded.Context.ResolveFilter(title, levels)
			if err != nil {
				return err
			}
			r := loaded.Context.Run(f)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}

			fmt.Fprint(out, formatReport(r, layout.Dashboard.Facts))
			return nil
		},
	}

	c.Flags().StringVarP(&title, "title", "t", "", "job title (default: first title in the data)")
	c.Flags().StringSliceVarP(&experience, "experience", "e", nil, "experience levels (default: first level in the data)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	c.Flags().IntVar(&top, "top", 0, "number of top skills to show (env TOP_N)")

	return c
}
