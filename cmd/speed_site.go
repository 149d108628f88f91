package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/spf13/cobra"
)

var (
	siteSpeedInput   site.Site
	siteSpeedShield  site.Shielding
	siteSpeedTopo    site.Topography
	siteSpeedDiagram bool
	siteSpeedOutput  string
)

var speedSiteCmd = &cobra.Command{
	Use:   "site",
	Short: "Calculate site and design wind speeds",
	Long: `Calculate the site wind speed V_sit for each cardinal direction
and the design wind speed V_des on each building axis.

V_sit,β = V_R · M_c · M_d · (M_z,cat · M_s · M_t)

Shielding is applied when --hs, --bs and --ns are all given; topography
when --lu is given.

Examples:
  gowind speed site --region C --terrain TC2 --height 10
  gowind speed site --region A2 --terrain TC3 --height 12 --orientation 20 --diagram
  gowind speed site --region B1 --terrain TC2.5 --height 8 --hs 6 --bs 12 --ns 4
  gowind speed site --region A4 --terrain TC2 --height 6 --hill-height 40 --lu 100 --x 20 -o profile.png`,
	RunE: runSpeedSite,
}

func init() {
	speedCmd.AddCommand(speedSiteCmd)

	f := speedSiteCmd.Flags()
	f.StringVarP(&siteSpeedInput.Region, "region", "r", "", "Wind region [required]")
	f.StringVarP(&siteSpeedInput.TerrainCategory, "terrain", "t", "", "Terrain category (TC1, TC2, TC2.5, TC3, TC4) [required]")
	f.Float64VarP(&siteSpeedInput.Height, "height", "z", 0, "Average roof height (m) [required]")
	speedSiteCmd.MarkFlagRequired("region")
	speedSiteCmd.MarkFlagRequired("terrain")
	speedSiteCmd.MarkFlagRequired("height")

	f.Float64Var(&siteSpeedInput.Orientation, "orientation", 0, "Bearing of the building 0° axis (0-90°)")
	f.StringVar(&siteSpeedInput.DesignLife, "life", "50 Years", "Design working life")
	f.IntVar(&siteSpeedInput.ImportanceLevel, "importance", 2, "Importance level (1-4)")
	f.BoolVar(&siteSpeedInput.Cyclonic, "cyclonic", false, "Use the cyclonic recurrence intervals")
	f.BoolVar(&siteSpeedInput.PolygonCrossSection, "polygon", false, "Polygonal cross-section (M_d = 1.0)")

	// Shielding
	f.Float64Var(&siteSpeedShield.Hs, "hs", 0, "Average roof height of shielding buildings (m)")
	f.Float64Var(&siteSpeedShield.Bs, "bs", 0, "Average breadth of shielding buildings (m)")
	f.Float64Var(&siteSpeedShield.Ns, "ns", 0, "Number of shielding buildings")

	// Topography
	f.Float64Var(&siteSpeedTopo.HillHeight, "hill-height", 0, "Hill height H (m)")
	f.Float64Var(&siteSpeedTopo.Lu, "lu", 0, "Horizontal distance L_u (m)")
	f.Float64Var(&siteSpeedTopo.X, "x", 0, "Distance from the crest (m)")
	f.BoolVar(&siteSpeedTopo.Escarpment, "escarpment", false, "Site is near an escarpment")
	f.Float64Var(&siteSpeedTopo.Elevation, "elevation", 0, "Site elevation above sea level (m)")

	// Diagram options
	f.BoolVar(&siteSpeedDiagram, "diagram", false, "Show ASCII wind speed profile")
	f.StringVarP(&siteSpeedOutput, "output", "o", "", "Export profile to file (png, svg, pdf)")
}

func runSpeedSite(cmd *cobra.Command, args []string) error {
	s := siteSpeedInput
	f := cmd.Flags()
	if f.Changed("hs") || f.Changed("bs") || f.Changed("ns") {
		shield := siteSpeedShield
		s.Shielding = &shield
	}
	if f.Changed("lu") {
		topo := siteSpeedTopo
		s.Topography = &topo
	}

	result, err := s.Analyze()
	if err != nil {
		return err
	}
	logger.Debug("site analysed", "region", result.Region, "ari", result.ARI, "mzcat", result.Mzcat)

	printHeader("SITE WIND SPEED - AS/NZS 1170.2")
	printSiteResult(result)

	title := fmt.Sprintf("Region %s, %s, z = %.1f m", result.Region, result.Terrain, s.Height)
	return profileOutputs(result, title, siteSpeedDiagram, siteSpeedOutput)
}
