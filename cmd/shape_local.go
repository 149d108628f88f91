package cmd

import (
	"math"

	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/spf13/cobra"
)

var shapeLocalCmd = &cobra.Command{
	Use:   "local",
	Short: "Local pressure factor zones",
	Long: `List the local pressure factor zones K_l (Table 5.6) for the walls
and roof of a building. The product K_l·C_p,e is limited to -3.0.

Examples:
  gowind shape local --height 6 --depth 20 --breadth 40
  gowind shape local -z 12 -d 10 -b 10 -p 15 --cpe -0.9`,
	RunE: runShapeLocal,
}

var shapeLocalCpe float64

func init() {
	shapeCmd.AddCommand(shapeLocalCmd)
	addGeometryFlags(shapeLocalCmd, true)
	shapeLocalCmd.Flags().Float64Var(&shapeLocalCpe, "cpe", 0, "External pressure coefficient to apply K_l to")
}

func runShapeLocal(cmd *cobra.Command, args []string) error {
	walls, err := shape.LocalPressureFactorsWalls(shapeHeight, shapeDepth, shapeBreadth)
	if err != nil {
		return err
	}
	roof, err := shape.LocalPressureFactorsRoof(shapeHeight, shapeDepth, shapeBreadth, shapePitch)
	if err != nil {
		return err
	}

	printHeader("LOCAL PRESSURE FACTORS - AS/NZS 1170.2")
	printGeometry()
	cpe := math.NaN()
	if cmd.Flags().Changed("cpe") {
		cpe = shapeLocalCpe
	}
	printLocalZones("WALL LOCAL PRESSURE FACTORS (K_l):", walls.Zones(), walls.A, cpe)
	printLocalZones("ROOF LOCAL PRESSURE FACTORS (K_l):", roof.Zones(), roof.A, cpe)
	return nil
}
