package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/report"
	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/alexiusacademia/gowind/internal/windspeed"
	"github.com/spf13/cobra"
)

var (
	siteBatchFile string
	siteBatchXLSX string
)

var siteBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every site in a CSV or XLSX file",
	Long: `Calculate design wind speeds and pressures for each site in a
CSV or XLSX file. Rows that cannot be read or analysed are reported and
skipped; the remaining sites are still processed.

Examples:
  gowind site batch --file sites.csv
  gowind site batch -f sites.xlsx --xlsx results.xlsx`,
	RunE: runSiteBatch,
}

func init() {
	siteCmd.AddCommand(siteBatchCmd)

	siteBatchCmd.Flags().StringVarP(&siteBatchFile, "file", "f", "", "Path to CSV or XLSX batch file [required]")
	siteBatchCmd.MarkFlagRequired("file")
	siteBatchCmd.Flags().StringVar(&siteBatchXLSX, "xlsx", "", "Write results to an Excel workbook")
}

func runSiteBatch(cmd *cobra.Command, args []string) error {
	rows, err := site.LoadBatch(siteBatchFile)
	if err != nil {
		return fmt.Errorf("loading batch: %w", err)
	}

	entries := make([]report.BatchEntry, 0, len(rows))
	failed := 0
	for _, row := range rows {
		e := report.BatchEntry{Line: row.Line, Err: row.Err}
		if row.Site != nil {
			e.Name = row.Site.Name
			if e.Result, e.Err = row.Site.Analyze(); e.Err != nil {
				e.Err = fmt.Errorf("line %d: %w", row.Line, e.Err)
			}
		}
		if e.Err != nil {
			failed++
			logger.Warn("skipping batch row", "file", siteBatchFile, "line", row.Line, "err", e.Err)
		}
		entries = append(entries, e)
	}

	printHeader("BATCH WIND ANALYSIS - AS/NZS 1170.2")
	w := newTable()
	fmt.Fprintf(w, "  Line\tSite\tRegion\tTC\tz (m)\tR (yrs)\tV_des 0\tV_des 90\tV_des 180\tV_des 270\tp_b,max\n")
	fmt.Fprintf(w, "  ────\t────\t──────\t──\t─────\t───────\t───────\t────────\t─────────\t─────────\t───────\n")
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(w, "  %d\t%s\t✗ %v\n", e.Line, e.Name, e.Err)
			continue
		}
		r := e.Result
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.1f\t%.0f\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\n",
			e.Line, e.Name, r.Region, r.Terrain, r.Site.Height, r.ARI,
			r.Vdes[windspeed.Deg0], r.Vdes[windspeed.Deg90], r.Vdes[windspeed.Deg180], r.Vdes[windspeed.Deg270],
			maxOf(r.Pressure[:]))
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d sites analysed, %d skipped\n", len(entries)-failed, failed)
	fmt.Println()

	if siteBatchXLSX != "" {
		path := outputPath(siteBatchXLSX)
		f, err := createFile(path)
		if err != nil {
			return err
		}
		if err := report.WriteBatchXLSX(f, reportMeta(), entries); err != nil {
			f.Close()
			return fmt.Errorf("writing workbook: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("batch workbook written", "file", path, "rows", len(entries))
		fmt.Printf("  Results written to: %s\n", path)
	}
	return nil
}
