package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gowind/internal/config"
	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "gowind",
	Short: "Wind Actions Calculator to AS/NZS 1170.2",
	Long: `gowind - Go Wind Actions Calculator

A CLI tool for determining wind actions on structures
in accordance with AS/NZS 1170.2:2021.

This tool helps structural engineers determine:
  - Regional wind speeds for a recurrence interval or design life
  - Site wind speeds and the multipliers behind them
  - Design wind speeds and pressures on each building axis
  - Aerodynamic shape factors for enclosed rectangular buildings
  - Wind load combinations to AS/NZS 1170.0

Settings are read from the environment or a .env file:
  GOWIND_LOG_LEVEL, GOWIND_LOG_FORMAT, GOWIND_OUTPUT_DIR,
  GOWIND_REPORT_AUTHOR, GOWIND_REPORT_PROJECT`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger = config.NewLogger(cfg, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowind v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wind Actions Calculator                              ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for determining wind actions on structures")
		fmt.Printf("  in accordance with %s.\n", version.Standard)
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Regional wind speeds for all Australian and NZ regions")
		fmt.Println("    • Terrain, shielding, topographic and direction multipliers")
		fmt.Println("    • Design wind speeds and pressures on the building axes")
		fmt.Println("    • Shape factors for walls and roofs of enclosed buildings")
		fmt.Println("    • Site files, CSV/XLSX batches, PDF and Excel reports")
		fmt.Println()
		fmt.Println("  Use 'gowind --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
