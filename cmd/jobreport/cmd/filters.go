package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jobinsights/internal/bootstrap"
)

func newFiltersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the job titles and experience levels in the data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, layout, err := opts.load()
			if err != nil {
				return err
			}

			loaded, err := bootstrap.Load(cmd.Context(), cfg, layout, nil)
			if err != nil {
				return err
			}
			defer loaded.Close()

			options := loaded.Context.Options()
			counts := loaded.Context.AdsByTitle()

			rows := make([][]string, len(options.Titles))
			for i, t := range options.Titles {
				rows[i] = []string{t, fmt.Sprint(counts[t])}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Job titles")
			fmt.Fprintln(out, strings.Join(renderTable([]string{"Title", "Ads"}, rows), "\n"))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Experience levels")
			for _, l := range options.ExperienceLevels {
				fmt.Fprintf(out, "  - %s\n", l)
			}
			return nil
		},
	}
}
