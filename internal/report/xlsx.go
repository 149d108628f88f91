package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/alexiusacademia/gowind/internal/util"
	"github.com/alexiusacademia/gowind/internal/windspeed"
)

// Sheet names used in site workbooks.
const (
	SheetSummary     = "Summary"
	SheetDirectional = "Directional"
	SheetProfile     = "Profile"
	SheetBatch       = "Sites"
)

// WriteXLSX writes a workbook for a site analysis with a summary sheet, the
// directional multipliers and speeds, and the interpolated speed profile.
func WriteXLSX(w io.Writer, meta Meta, r *site.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Project", meta.Project},
		{"Site", r.Site.Name},
		{"Author", meta.Author},
		{"Date", meta.date()},
		{},
		{"Wind region", r.Region.String()},
		{"Terrain category", r.Terrain.String()},
		{"Design life", r.Site.DesignLife},
		{"Importance level", r.Site.ImportanceLevel},
		{"Height (m)", r.Site.Height},
		{"Orientation (deg)", r.Site.Orientation},
		{"ARI (years)", r.ARI},
		{"V_R (m/s)", r.VR},
		{"V_R,SLS (m/s)", r.VRsl},
		{"M_c", r.Mc},
		{"M_z,cat", r.Mzcat},
		{"M_s", r.Ms},
		{"M_t", r.Mt},
		{"C_dyn", r.Cdyn},
		{},
		{"Axis", "V_des (m/s)", "p_b (kPa)", "V_des cladding (m/s)", "p_b cladding (kPa)"},
	}
	for _, o := range windspeed.Orthogonals {
		summary = append(summary, []any{o.String(), r.Vdes[o], r.Pressure[o], r.VdesCladding[o], r.PressureCladding[o]})
	}
	if sh := r.Shape; sh != nil {
		summary = append(summary,
			[]any{},
			[]any{"Windward C_p,e", sh.Windward},
			[]any{"Leeward C_p,e", sh.Leeward},
			[]any{"Combination case", sh.Combination.Case, sh.Combination.External, sh.Combination.Internal},
			[]any{"Windward pressure (kPa)", sh.WindwardPressure},
			[]any{"Leeward pressure (kPa)", sh.LeewardPressure},
			[]any{"Internal pressure (kPa)", sh.InternalPressure},
		)
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 26); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return err
	}

	directional := [][]any{{"Direction", "M_d", "M_d cladding", "V_sit (m/s)", "V_sit cladding (m/s)"}}
	for _, dir := range asnzs.Directions {
		directional = append(directional, []any{dir.String(), r.Md[dir], r.MdCladding[dir], r.Vsit[dir], r.VsitCladding[dir]})
	}
	if err := newSheet(f, SheetDirectional, directional, bold); err != nil {
		return err
	}

	profile := [][]any{{"Bearing (deg)", "V_sit (m/s)"}}
	for _, p := range r.Profile {
		profile = append(profile, []any{p.Angle, p.Speed})
	}
	if err := newSheet(f, SheetProfile, profile, bold); err != nil {
		return err
	}

	return f.Write(w)
}

// WriteBatchXLSX writes one row per batch entry. Rows that failed carry the
// error message in place of results. The governing pressure is rounded up to
// the nearest Pa.
func WriteBatchXLSX(w io.Writer, meta Meta, entries []BatchEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBatch); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{
		{"Project", meta.Project, "Date", meta.date()},
		{"Line", "Name", "Region", "Terrain", "Height (m)", "ARI (years)", "V_R (m/s)",
			"V_des 0", "V_des 90", "V_des 180", "V_des 270", "Max p_b (kPa)", "Error"},
	}
	for _, e := range entries {
		if e.Err != nil {
			rows = append(rows, []any{e.Line, e.Name, "", "", "", "", "", "", "", "", "", "", e.Err.Error()})
			continue
		}
		r := e.Result
		rows = append(rows, []any{
			e.Line, e.Name, r.Region.String(), r.Terrain.String(), r.Site.Height, r.ARI, r.VR,
			r.Vdes[windspeed.Deg0], r.Vdes[windspeed.Deg90], r.Vdes[windspeed.Deg180], r.Vdes[windspeed.Deg270],
			util.RoundValue(maxPressure(r.Pressure), 3, util.RoundUp), "",
		})
	}
	if err := writeRows(f, SheetBatch, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetBatch, "A2", "M2", bold); err != nil {
		return err
	}

	return f.Write(w)
}

func newSheet(f *excelize.File, name string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := writeRows(f, name, rows); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(name, "A1", last, headerStyle)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func maxPressure(p [4]float64) float64 {
	return max(p[0], p[1], p[2], p[3])
}
