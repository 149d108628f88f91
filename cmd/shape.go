package cmd

import (
	"github.com/spf13/cobra"
)

var (
	shapeHeight  float64
	shapeDepth   float64
	shapeBreadth float64
	shapePitch   float64
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Aerodynamic shape factors for enclosed buildings",
	Long: `Determine external pressure coefficients, local pressure
factors, area reduction and action combination factors for enclosed
rectangular buildings (Section 5).

Dimensions:
  h  - average roof height (m)
  d  - building depth, parallel to the wind (m)
  b  - building breadth, normal to the wind (m)

Subcommands:
  walls        - Windward, leeward and side wall C_p,e
  roof         - Roof C_p,e for shallow or steep pitches
  local        - Local pressure factor zones for walls and roof
  reduction    - Area reduction factor K_a
  combination  - Action combination factors K_c,e and K_c,i`,
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}

// addGeometryFlags registers the building dimensions shared by the shape
// subcommands.
func addGeometryFlags(cmd *cobra.Command, withPitch bool) {
	cmd.Flags().Float64VarP(&shapeHeight, "height", "z", 0, "Average roof height h (m) [required]")
	cmd.Flags().Float64VarP(&shapeDepth, "depth", "d", 0, "Depth d parallel to the wind (m) [required]")
	cmd.Flags().Float64VarP(&shapeBreadth, "breadth", "b", 0, "Breadth b normal to the wind (m) [required]")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("depth")
	cmd.MarkFlagRequired("breadth")
	if withPitch {
		cmd.Flags().Float64VarP(&shapePitch, "pitch", "p", 0, "Roof pitch α (degrees)")
	}
}
