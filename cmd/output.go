package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/alexiusacademia/gowind/internal/windspeed"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// outputPath places relative output files under GOWIND_OUTPUT_DIR.
func outputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || cfg == nil || cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

func printSiteResult(r *site.Result) {
	s := r.Site
	if s.Name != "" {
		fmt.Printf("  Site: %s\n", s.Name)
	}
	if s.Description != "" {
		fmt.Printf("  Description: %s\n", s.Description)
	}
	fmt.Println()

	printSection("REGIONAL WIND SPEED:")
	w := newTable()
	fmt.Fprintf(w, "  Wind region:\t%s\n", r.Region)
	fmt.Fprintf(w, "  Design life / importance level:\t%s / %d\n", s.DesignLife, s.ImportanceLevel)
	if r.Cyclonic {
		fmt.Fprintf(w, "  Cyclonic:\tyes\n")
	}
	fmt.Fprintf(w, "  Average recurrence interval (R):\t%.0f years\n", r.ARI)
	fmt.Fprintf(w, "  V_R:\t%.0f m/s\n", r.VR)
	fmt.Fprintf(w, "  V_R,SLS (R = 25 years):\t%.0f m/s\n", r.VRsl)
	w.Flush()
	fmt.Println()

	printSection("SITE MULTIPLIERS:")
	w = newTable()
	fmt.Fprintf(w, "  Climate change (M_c):\t%.2f\n", r.Mc)
	fmt.Fprintf(w, "  Terrain/height (M_z,cat):\t%.3f\t%s at %.2f m\n", r.Mzcat, r.Terrain, s.Height)
	fmt.Fprintf(w, "  Shielding (M_s):\t%.3f\n", r.Ms)
	fmt.Fprintf(w, "  Topographic (M_t):\t%.3f\n", r.Mt)
	w.Flush()
	fmt.Println()

	printSection("SITE WIND SPEED BY DIRECTION:")
	w = newTable()
	fmt.Fprintf(w, "  Direction\tM_d\tV_sit (m/s)\tM_d clad.\tV_sit clad. (m/s)\n")
	fmt.Fprintf(w, "  ─────────\t───\t───────────\t─────────\t─────────────────\n")
	for _, dir := range asnzs.Directions {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\n", dir, r.Md[dir], r.Vsit[dir], r.MdCladding[dir], r.VsitCladding[dir])
	}
	w.Flush()
	fmt.Println()

	printSection("DESIGN WIND SPEED AND BASIC PRESSURE:")
	w = newTable()
	fmt.Fprintf(w, "  Axis\tBearing\tV_des (m/s)\tp_b (kPa)\tV_des clad.\tp_b clad.\n")
	fmt.Fprintf(w, "  ────\t───────\t───────────\t─────────\t───────────\t─────────\n")
	for _, o := range windspeed.Orthogonals {
		fmt.Fprintf(w, "  %s\t%.1f°\t%.2f\t%.3f\t%.2f\t%.3f\n",
			o, s.Orientation+o.Angle(), r.Vdes[o], r.Pressure[o], r.VdesCladding[o], r.PressureCladding[o])
	}
	w.Flush()
	fmt.Println()

	if len(r.HeightProfile) > 0 {
		printSection("TERRAIN/HEIGHT PROFILE:")
		w = newTable()
		fmt.Fprintf(w, "  z (m)\tM_z,cat\n")
		for _, hm := range r.HeightProfile {
			fmt.Fprintf(w, "  %.0f\t%.3f\n", hm.Height, hm.Mzcat)
		}
		w.Flush()
		fmt.Println()
	}

	if r.Shape != nil {
		printShapeResult(r.Shape)
	}

	vmax := r.Vdes.Max()
	fmt.Print(diagram.DrawSummaryBox("DESIGN WIND ACTIONS", []string{
		fmt.Sprintf("V_des,max = %.2f m/s", vmax),
		fmt.Sprintf("p_b,max   = %.3f kPa", maxOf(r.Pressure[:])),
		fmt.Sprintf("C_dyn     = %.2f", r.Cdyn),
	}))
	fmt.Println()
}

func printShapeResult(sh *site.ShapeResult) {
	printSection("EXTERNAL PRESSURE COEFFICIENTS (C_p,e):")
	w := newTable()
	fmt.Fprintf(w, "  Windward wall:\t%.2f\n", sh.Windward)
	fmt.Fprintf(w, "  Leeward wall:\t%.3f\n", sh.Leeward)
	for _, z := range sh.SideWalls {
		fmt.Fprintf(w, "  Side wall %s:\t%.2f\n", span(z.From, z.To), z.Cpe)
	}
	if sh.ShallowRoof != nil {
		for _, z := range sh.ShallowRoof {
			fmt.Fprintf(w, "  Roof %s:\t%.3f, %.3f\n", span(z.From, z.To), z.Cpe.Min, z.Cpe.Max)
		}
	}
	if sh.SteepRoof != nil {
		fmt.Fprintf(w, "  Upwind roof slope:\t%.3f, %.3f\n", sh.SteepRoof.Upwind.Min, sh.SteepRoof.Upwind.Max)
		fmt.Fprintf(w, "  Downwind roof slope:\t%.3f\n", sh.SteepRoof.Downwind)
	}
	w.Flush()
	fmt.Println()

	roofCpe := math.NaN()
	if sh.ShallowRoof != nil {
		roofCpe = sh.ShallowRoof[0].Cpe.Min
	} else if sh.SteepRoof != nil {
		roofCpe = sh.SteepRoof.Upwind.Min
	}
	printLocalZones("WALL LOCAL PRESSURE FACTORS (K_l):", sh.WallLocal.Zones(), sh.WallLocal.A, sh.SideWalls[0].Cpe)
	printLocalZones("ROOF LOCAL PRESSURE FACTORS (K_l):", sh.RoofLocal.Zones(), sh.RoofLocal.A, roofCpe)

	printSection("ACTION COMBINATION:")
	w = newTable()
	fmt.Fprintf(w, "  Case:\t%s\n", sh.Combination.Case)
	fmt.Fprintf(w, "  K_c,e / K_c,i:\t%.1f / %.1f\n", sh.Combination.External, sh.Combination.Internal)
	fmt.Fprintf(w, "  Windward wall pressure:\t%.3f kPa\n", sh.WindwardPressure)
	fmt.Fprintf(w, "  Leeward wall pressure:\t%.3f kPa\n", sh.LeewardPressure)
	fmt.Fprintf(w, "  Internal pressure:\t%.3f kPa\n", sh.InternalPressure)
	w.Flush()
	fmt.Println()
}

// printLocalZones lists the zones of one surface. When cpe is a number the
// limited product K_l·C_p,e is shown for each zone.
func printLocalZones(title string, zones []shape.Zone, a, cpe float64) {
	printSection(title)
	w := newTable()
	fmt.Fprintf(w, "  Zone\tK_l\tArea (m²)\tDistance from edge\tK_l·C_p,e\n")
	fmt.Fprintf(w, "  ────\t───\t─────────\t──────────────────\t─────────\n")
	for _, z := range zones {
		product := "-"
		if !math.IsNaN(cpe) {
			product = fmt.Sprintf("%.3f", shape.NegativeLimit(z.Kl, cpe))
		}
		fmt.Fprintf(w, "  %s\t%.1f\t≤ %.2f\t%s\t%s\n", z.Label, z.Kl, z.Area, span(z.EdgeFrom, z.EdgeTo), product)
	}
	w.Flush()
	fmt.Printf("  Edge dimension a = %.2f m\n", a)
	fmt.Println()
}

func span(from, to float64) string {
	if math.IsInf(to, 1) {
		return "anywhere"
	}
	if from == to {
		return fmt.Sprintf("> %.1f m", from)
	}
	return fmt.Sprintf("%.1f-%.1f m", from, to)
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}

// profileOutputs draws the terminal chart and writes the image requested.
func profileOutputs(r *site.Result, title string, showDiagram bool, output string) error {
	data := diagram.ProfileData{
		Title:       title,
		Profile:     r.Profile,
		Orientation: r.Site.Orientation,
		Design:      r.Vdes,
	}
	if showDiagram {
		fmt.Println(diagram.DrawASCIIProfile(data))
		fmt.Println(diagram.DrawDirectionRose("Site wind speed V_sit", r.Vsit, "m/s"))
	}
	if output == "" {
		return nil
	}

	path := outputPath(output)
	if err := diagram.ExportProfile(data, path); err != nil {
		return fmt.Errorf("exporting diagram: %w", err)
	}
	logger.Info("diagram exported", "file", path)
	fmt.Printf("  Diagram exported to: %s\n", path)

	if len(r.HeightProfile) > 0 {
		ext := filepath.Ext(path)
		heightPath := strings.TrimSuffix(path, ext) + "-height" + ext
		if err := diagram.ExportHeightProfile(title, r.HeightProfile, heightPath); err != nil {
			return fmt.Errorf("exporting height profile: %w", err)
		}
		fmt.Printf("  Height profile exported to: %s\n", heightPath)
	}
	return nil
}
