package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gowind/internal/report"
	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/spf13/cobra"
)

var (
	siteAnalyzeFile        string
	siteAnalyzeShowDiagram bool
	siteAnalyzeExportFile  string
	siteAnalyzeReport      string
)

var siteAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze wind actions for a site defined in a JSON file",
	Long: `Calculate the regional, site and design wind speeds, pressures and
shape factors for a site defined in a JSON file.

Examples:
  gowind site analyze --file depot.json
  gowind site analyze -f depot.json --diagram -o depot.png
  gowind site analyze -f depot.json --report depot.pdf
  gowind site analyze -f depot.json --report depot.xlsx`,
	RunE: runSiteAnalyze,
}

func init() {
	siteCmd.AddCommand(siteAnalyzeCmd)

	siteAnalyzeCmd.Flags().StringVarP(&siteAnalyzeFile, "file", "f", "", "Path to site JSON file [required]")
	siteAnalyzeCmd.MarkFlagRequired("file")

	// Output options
	siteAnalyzeCmd.Flags().BoolVar(&siteAnalyzeShowDiagram, "diagram", false, "Show ASCII wind speed profile")
	siteAnalyzeCmd.Flags().StringVarP(&siteAnalyzeExportFile, "output", "o", "", "Export profile to file (png, svg, pdf)")
	siteAnalyzeCmd.Flags().StringVar(&siteAnalyzeReport, "report", "", "Write a calculation report (pdf, xlsx)")
}

func runSiteAnalyze(cmd *cobra.Command, args []string) error {
	s, err := site.LoadFromFile(siteAnalyzeFile)
	if err != nil {
		return fmt.Errorf("loading site: %w", err)
	}
	logger.Debug("site loaded", "file", siteAnalyzeFile, "name", s.Name)

	result, err := s.Analyze()
	if err != nil {
		return fmt.Errorf("analyzing site: %w", err)
	}

	printHeader("WIND ACTIONS - AS/NZS 1170.2")
	printSiteResult(result)

	title := s.Name
	if title == "" {
		title = fmt.Sprintf("Region %s, %s", result.Region, result.Terrain)
	}
	if err := profileOutputs(result, title, siteAnalyzeShowDiagram, siteAnalyzeExportFile); err != nil {
		return err
	}

	if siteAnalyzeReport != "" {
		path := outputPath(siteAnalyzeReport)
		if err := writeReport(path, result); err != nil {
			return err
		}
		fmt.Printf("  Report written to: %s\n", path)
	}
	return nil
}

func reportMeta() report.Meta {
	if cfg == nil {
		return report.Meta{}
	}
	return report.Meta{Project: cfg.ReportProject, Author: cfg.ReportAuthor}
}

func writeReport(path string, r *site.Result) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".xlsx" {
		return fmt.Errorf("unsupported report format %q: use .pdf or .xlsx", ext)
	}
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if ext == ".pdf" {
		err = report.WritePDF(f, reportMeta(), r)
	} else {
		err = report.WriteXLSX(f, reportMeta(), r)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written", "file", path)
	return nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
