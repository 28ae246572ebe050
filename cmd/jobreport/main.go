// jobreport prints job market keyword reports in the terminal and manages
// the job ad data behind the dashboard.
package main

import (
	"os"

	"jobinsights/cmd/jobreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
