package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jobinsights/internal/bootstrap"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the keyword artifacts load and compile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, layout, err := opts.load()
			if err != nil {
				return err
			}

			artifacts, err := bootstrap.LoadArtifacts(cfg, layout)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "group patterns:     %d\n", artifacts.Groups.Len())
			fmt.Fprintf(out, "variation patterns: %d\n", artifacts.Variations.Len())
			fmt.Fprintf(out, "categories:         %d\n", artifacts.Categories.Len())
			if missing := artifacts.UnmatchableMembers(); len(missing) > 0 {
				fmt.Fprintf(out, "warning: never counted, no variation pattern: %s\n", strings.Join(missing, ", "))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
