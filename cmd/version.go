package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gowind v%s\n", version.Version)
		fmt.Println("Wind Actions Calculator")
		fmt.Printf("Based on %s\n", version.Standard)
		fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
