package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/spf13/cobra"
)

var shapeRoofCmd = &cobra.Command{
	Use:   "roof",
	Short: "External pressure coefficients for roofs",
	Long: `Calculate roof C_p,e with wind normal to the ridge.

Pitches below 10° use the banded coefficients of Table 5.3(A), measured
from the windward edge. Steeper roofs use Table 5.3(B) for the upwind
slope and Table 5.3(C) for the downwind slope.

Examples:
  gowind shape roof --height 6 --depth 20 --breadth 40 --pitch 5
  gowind shape roof -z 8 -d 12 -b 30 -p 22.5`,
	RunE: runShapeRoof,
}

func init() {
	shapeCmd.AddCommand(shapeRoofCmd)
	addGeometryFlags(shapeRoofCmd, true)
}

func runShapeRoof(cmd *cobra.Command, args []string) error {
	printHeader("ROOF PRESSURE COEFFICIENTS - AS/NZS 1170.2")
	printGeometry()

	printSection("EXTERNAL PRESSURE COEFFICIENTS (C_p,e):")
	if shapePitch < shape.SteepPitch {
		zones, err := shape.RoofShallow(shapeHeight, shapeDepth, shapePitch)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintf(w, "  Band\tMin\tMax\n")
		fmt.Fprintf(w, "  ────\t───\t───\n")
		for _, z := range zones {
			fmt.Fprintf(w, "  %s\t%.3f\t%.3f\n", span(z.From, z.To), z.Cpe.Min, z.Cpe.Max)
		}
		w.Flush()
		fmt.Println()
		return nil
	}

	roof, err := shape.RoofSteep(shapeHeight, shapeDepth, shapeBreadth, shapePitch)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintf(w, "  Upwind slope:\t%.3f, %.3f\n", roof.Upwind.Min, roof.Upwind.Max)
	fmt.Fprintf(w, "  Downwind slope:\t%.3f\n", roof.Downwind)
	w.Flush()
	fmt.Println()
	return nil
}
