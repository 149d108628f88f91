package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/spf13/cobra"
)

var (
	combinationFraming string
	combinationCpi     float64
)

var shapeCombinationCmd = &cobra.Command{
	Use:   "combination",
	Short: "Action combination factors K_c,e and K_c,i",
	Long: `Determine the action combination factors (Table 5.5) for the
surfaces that contribute to a single load effect.

Framing:
  "single surface", "roof", "walls", "roof and walls", "all surfaces"

Examples:
  gowind shape combination --framing "roof and walls" --cpi -0.3
  gowind shape combination --framing "all surfaces" --cpi 0.7`,
	RunE: runShapeCombination,
}

func init() {
	shapeCmd.AddCommand(shapeCombinationCmd)

	shapeCombinationCmd.Flags().StringVarP(&combinationFraming, "framing", "f", shape.SingleSurface.String(), "Surfaces contributing to the load effect")
	shapeCombinationCmd.Flags().Float64Var(&combinationCpi, "cpi", 0, "Internal pressure coefficient C_p,i")
}

func runShapeCombination(cmd *cobra.Command, args []string) error {
	framing, err := shape.ParseFraming(combinationFraming)
	if err != nil {
		return err
	}
	c, err := shape.ActionCombinationFactor(framing, combinationCpi)
	if err != nil {
		return err
	}

	printHeader("ACTION COMBINATION FACTORS - AS/NZS 1170.2")
	fmt.Print(diagram.DrawSummaryBox("COMBINATION "+c.Case, []string{
		fmt.Sprintf("Framing = %s", framing),
		fmt.Sprintf("C_p,i   = %.2f", combinationCpi),
		fmt.Sprintf("K_c,e   = %.1f", c.External),
		fmt.Sprintf("K_c,i   = %.1f", c.Internal),
	}))
	fmt.Println()
	return nil
}
