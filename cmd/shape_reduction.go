package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/spf13/cobra"
)

var (
	reductionArea    float64
	reductionLength  float64
	reductionWidth   float64
	reductionSurface string
)

var shapeReductionCmd = &cobra.Command{
	Use:   "reduction",
	Short: "Area reduction factor K_a",
	Long: `Calculate the area reduction factor K_a (Table 5.4) for a tributary
area on a roof or side wall. Windward and leeward walls are not reduced.

The area is given directly or as a member length times its load width.

Examples:
  gowind shape reduction --area 45 --surface roof
  gowind shape reduction --length 9 --width 1.2 --surface "side walls"`,
	RunE: runShapeReduction,
}

func init() {
	shapeCmd.AddCommand(shapeReductionCmd)

	shapeReductionCmd.Flags().Float64VarP(&reductionArea, "area", "A", 0, "Tributary area (m²)")
	shapeReductionCmd.Flags().Float64Var(&reductionLength, "length", 0, "Member length (m)")
	shapeReductionCmd.Flags().Float64Var(&reductionWidth, "width", 0, "Load width (m)")
	shapeReductionCmd.Flags().StringVarP(&reductionSurface, "surface", "s", "roof", "Surface: roof, side walls, windward or leeward")
	shapeReductionCmd.MarkFlagsMutuallyExclusive("area", "length")
	shapeReductionCmd.MarkFlagsRequiredTogether("length", "width")
}

func runShapeReduction(cmd *cobra.Command, args []string) error {
	surface, err := shape.ParseSurface(reductionSurface)
	if err != nil {
		return err
	}
	area := reductionArea
	if reductionLength > 0 {
		area = shape.TributaryArea(reductionLength, reductionWidth)
	}
	if area <= 0 {
		return errors.New("provide a positive --area, or --length and --width")
	}

	ka, err := shape.AreaReductionFactor(area, surface)
	if err != nil {
		return err
	}

	printHeader("AREA REDUCTION FACTOR - AS/NZS 1170.2")
	fmt.Print(diagram.DrawSummaryBox("AREA REDUCTION", []string{
		fmt.Sprintf("Surface   = %s", surface),
		fmt.Sprintf("Area      = %.2f m²", area),
		fmt.Sprintf("K_a       = %.3f", ka),
	}))
	fmt.Println()
	return nil
}
