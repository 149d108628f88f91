package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gowind/internal/loads"
	"github.com/spf13/cobra"
)

var (
	combineActions loads.Actions
	combineFactors = loads.DefaultFactors
	combineShowAll bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine wind actions using AS/NZS 1170.0 load combinations",
	Long: `Combine wind actions with permanent and imposed actions
(AS/NZS 1170.0 Clause 4.2).

Provide unfactored action effects in consistent units, e.g. kPa on a
surface or kN-m in a member. Uplift and suction are negative.

Action Types:
  G   - Permanent action (dead load)
  Q   - Imposed action (live load)
  Wu  - Ultimate wind action
  Ws  - Serviceability wind action

Examples:
  # Roof uplift on a purlin
  gowind combine --dead 0.15 --wind -1.45 --wind-sls -0.52

  # Member moment with imposed action, showing every combination
  gowind combine --dead 50 --live 30 --wind 20 --all`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	// Action flags
	combineCmd.Flags().Float64VarP(&combineActions.Dead, "dead", "g", 0, "Permanent action G")
	combineCmd.Flags().Float64VarP(&combineActions.Live, "live", "q", 0, "Imposed action Q")
	combineCmd.Flags().Float64VarP(&combineActions.WindULS, "wind", "w", 0, "Ultimate wind action W_u")
	combineCmd.Flags().Float64Var(&combineActions.WindSLS, "wind-sls", 0, "Serviceability wind action W_s")

	// Options
	combineCmd.Flags().Float64Var(&combineFactors.PsiC, "psi-c", loads.DefaultFactors.PsiC, "Combination factor ψ_c")
	combineCmd.Flags().Float64Var(&combineFactors.PsiS, "psi-s", loads.DefaultFactors.PsiS, "Short-term factor ψ_s")
	combineCmd.Flags().BoolVarP(&combineShowAll, "all", "a", false, "Show all load combination results")
}

func runCombine(cmd *cobra.Command, args []string) error {
	a := combineActions
	if a == (loads.Actions{}) {
		return errors.New("provide at least one unfactored action, see 'gowind combine --help'")
	}

	results, env, err := loads.Evaluate(a, combineFactors, loads.Combinations)
	if err != nil {
		return err
	}

	printHeader("AS/NZS 1170.0 LOAD COMBINATIONS")

	printSection("UNFACTORED ACTIONS:")
	w := newTable()
	if a.Dead != 0 {
		fmt.Fprintf(w, "  Permanent (G):\t%.3f\n", a.Dead)
	}
	if a.Live != 0 {
		fmt.Fprintf(w, "  Imposed (Q):\t%.3f\n", a.Live)
	}
	if a.WindULS != 0 {
		fmt.Fprintf(w, "  Wind, ultimate (W_u):\t%.3f\n", a.WindULS)
	}
	if a.WindSLS != 0 {
		fmt.Fprintf(w, "  Wind, serviceability (W_s):\t%.3f\n", a.WindSLS)
	}
	fmt.Fprintf(w, "  ψ_c / ψ_s:\t%.2f / %.2f\n", combineFactors.PsiC, combineFactors.PsiS)
	w.Flush()
	fmt.Println()

	governing := map[loads.LimitState]string{
		loads.Ultimate:       env[loads.Ultimate].Governing().ID,
		loads.Serviceability: env[loads.Serviceability].Governing().ID,
	}

	if combineShowAll {
		printSection("LOAD COMBINATIONS (AS/NZS 1170.0 Clause 4.2):")
		w = newTable()
		fmt.Fprintf(w, "  #\tState\tCombination\tEffect\n")
		fmt.Fprintf(w, "  ─\t─────\t───────────\t──────\n")
		for _, r := range results {
			marker := ""
			if governing[r.State] == r.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.3f%s\n", r.ID, r.State, r.Description, r.Value, marker)
		}
		w.Flush()
		fmt.Println()
	}

	printSection("RESULT:")
	w = newTable()
	for _, state := range []loads.LimitState{loads.Ultimate, loads.Serviceability} {
		e := env[state]
		fmt.Fprintf(w, "  %s maximum:\t%.3f\t(%s)\n", state, e.Max.Value, e.Max.Description)
		fmt.Fprintf(w, "  %s minimum:\t%.3f\t(%s)\n", state, e.Min.Value, e.Min.Description)
	}
	w.Flush()
	fmt.Println()

	g := env[loads.Ultimate].Governing()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN ACTION (%s) = %.3f  \n", g.Description, g.Value)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
