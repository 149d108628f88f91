package cmd

import (
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Regional and site wind speeds",
	Long: `Determine regional wind speeds (Section 3) and site wind
speeds (Section 2) for a location.

Subcommands:
  regional  - Regional wind speed V_R for a region and recurrence interval
  site      - Site and design wind speeds for a building at a location`,
}

func init() {
	rootCmd.AddCommand(speedCmd)
}
