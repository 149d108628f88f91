package cmd

import (
	"github.com/spf13/cobra"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Site analysis from JSON and batch files",
	Long: `Run the full wind analysis for sites defined in files.

A site is defined in a JSON file with its location, building and
optional shielding and topography. Batches of sites are read from CSV
or XLSX files with one site per row.

Subcommands:
  analyze  - Analyze one site from a JSON file
  batch    - Analyze every site in a CSV or XLSX file

Example JSON file structure:
{
  "name": "Port Hedland Depot",
  "region": "D",
  "terrain_category": "TC2",
  "design_life": "50 Years",
  "importance_level": 2,
  "height": 8,
  "orientation": 15,
  "shielding": {"h_s": 6, "b_s": 12, "n_s": 3},
  "building": {
    "depth": 20,
    "breadth": 40,
    "roof_pitch": 5,
    "cpi": -0.3,
    "framing": "roof and walls"
  }
}

Batch files have a header row:
  name,region,terrain,height,design_life,importance_level,orientation`,
}

func init() {
	rootCmd.AddCommand(siteCmd)
}
