package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/pressure"
	"github.com/spf13/cobra"
)

var (
	pressureSpeed float64
	pressureCshp  float64
	pressureCdyn  float64
)

var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Calculate the design wind pressure",
	Long: `Calculate the design wind pressure (Clause 2.4):

  p = 0.5 ρ_air V_des² C_shp C_dyn     (ρ_air = 1.2 kg/m³)

Examples:
  gowind pressure --speed 62.37
  gowind pressure --speed 45 --cshp -0.65 --cdyn 1.05`,
	RunE: runPressure,
}

func init() {
	rootCmd.AddCommand(pressureCmd)

	pressureCmd.Flags().Float64VarP(&pressureSpeed, "speed", "v", 0, "Design wind speed V_des (m/s) [required]")
	pressureCmd.MarkFlagRequired("speed")
	pressureCmd.Flags().Float64Var(&pressureCshp, "cshp", 1, "Aerodynamic shape factor C_shp")
	pressureCmd.Flags().Float64Var(&pressureCdyn, "cdyn", pressure.StaticCdyn, "Dynamic response factor C_dyn")
}

func runPressure(cmd *cobra.Command, args []string) error {
	if pressureSpeed <= 0 {
		return errors.New("design wind speed must be positive")
	}
	if pressureCdyn <= 0 {
		return errors.New("dynamic response factor must be positive")
	}

	pb := pressure.BasicWindPressure(pressureSpeed)
	p := pressure.DesignWindPressure(pb, pressureCshp, pressureCdyn)

	printHeader("DESIGN WIND PRESSURE - AS/NZS 1170.2")
	printSection("INPUT:")
	w := newTable()
	fmt.Fprintf(w, "  Design wind speed (V_des):\t%.2f m/s\n", pressureSpeed)
	fmt.Fprintf(w, "  Shape factor (C_shp):\t%.3f\n", pressureCshp)
	fmt.Fprintf(w, "  Dynamic response factor (C_dyn):\t%.2f\n", pressureCdyn)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("WIND PRESSURE", []string{
		fmt.Sprintf("p_b = 0.5 ρ V² = %.3f kPa", pb),
		fmt.Sprintf("p   = p_b C_shp C_dyn = %.3f kPa", p),
	}))
	fmt.Println()
	return nil
}
