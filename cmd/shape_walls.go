package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/spf13/cobra"
)

var shapeWallsVary bool

var shapeWallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "External pressure coefficients for walls",
	Long: `Calculate C_p,e for the windward wall (Table 5.2(A)), leeward wall
(Table 5.2(B)) and side walls (Table 5.2(C)).

Examples:
  gowind shape walls --height 6 --depth 20 --breadth 40 --pitch 5
  gowind shape walls -z 25 -d 30 -b 30 --vary`,
	RunE: runShapeWalls,
}

func init() {
	shapeCmd.AddCommand(shapeWallsCmd)
	addGeometryFlags(shapeWallsCmd, true)
	shapeWallsCmd.Flags().BoolVar(&shapeWallsVary, "vary", false, "Wind speed varies with height (h > 25 m)")
}

func runShapeWalls(cmd *cobra.Command, args []string) error {
	leeward, err := shape.LeewardWall(shapeDepth, shapeBreadth, shapePitch)
	if err != nil {
		return err
	}
	windward := shape.WindwardWall(shapeHeight, shapeWallsVary)
	sides := shape.SideWalls(shapeHeight, shapeDepth)

	printHeader("WALL PRESSURE COEFFICIENTS - AS/NZS 1170.2")
	printGeometry()

	printSection("EXTERNAL PRESSURE COEFFICIENTS (C_p,e):")
	w := newTable()
	fmt.Fprintf(w, "  Windward wall:\t%.2f\n", windward)
	fmt.Fprintf(w, "  Leeward wall:\t%.3f\td/b = %.2f\n", leeward, shapeDepth/shapeBreadth)
	for _, z := range sides {
		fmt.Fprintf(w, "  Side wall %s:\t%.2f\n", span(z.From, z.To), z.Cpe)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func printGeometry() {
	printSection("GEOMETRY:")
	w := newTable()
	fmt.Fprintf(w, "  Height (h):\t%.2f m\n", shapeHeight)
	fmt.Fprintf(w, "  Depth (d):\t%.2f m\n", shapeDepth)
	fmt.Fprintf(w, "  Breadth (b):\t%.2f m\n", shapeBreadth)
	fmt.Fprintf(w, "  Roof pitch (α):\t%.1f°\n", shapePitch)
	w.Flush()
	fmt.Println()
}
