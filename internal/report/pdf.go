package report

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/site"
	"github.com/alexiusacademia/gowind/internal/windspeed"
)

const (
	pdfLine  = 6.0
	pdfLabel = 70.0
)

// WritePDF writes a calculation report for a site analysis.
func WritePDF(w io.Writer, meta Meta, r *site.Result) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Wind Actions - "+r.Site.Name, true)
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Wind Actions to AS/NZS 1170.2:2021"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, kv := range [][2]string{
		{"Project", meta.Project},
		{"Site", r.Site.Name},
		{"Author", meta.Author},
		{"Date", meta.date()},
	} {
		if kv[1] == "" {
			continue
		}
		pdf.Cell(0, pdfLine, tr(fmt.Sprintf("%s: %s", kv[0], kv[1])))
		pdf.Ln(pdfLine)
	}
	if r.Site.Description != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, pdfLine, tr(r.Site.Description), "", "L", false)
	}

	section := func(title string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(pdfLabel, pdfLine, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLine, tr(value), "", 1, "L", false, 0, "")
	}

	section("Input")
	row("Wind region", r.Region.String())
	row("Terrain category", r.Terrain.String())
	row("Design life / importance level", fmt.Sprintf("%s / %d", r.Site.DesignLife, r.Site.ImportanceLevel))
	row("Average roof height", fmt.Sprintf("%.2f m", r.Site.Height))
	row("Building orientation", fmt.Sprintf("%.1f°", r.Site.Orientation))

	section("Regional Wind Speed")
	row("Average recurrence interval R", fmt.Sprintf("%.0f years", r.ARI))
	row("V_R (ultimate)", fmt.Sprintf("%.0f m/s", r.VR))
	row("V_R (serviceability)", fmt.Sprintf("%.0f m/s", r.VRsl))

	section("Multipliers")
	row("M_c", fmt.Sprintf("%.2f", r.Mc))
	row("M_z,cat", fmt.Sprintf("%.3f", r.Mzcat))
	row("M_s", fmt.Sprintf("%.3f", r.Ms))
	row("M_t", fmt.Sprintf("%.3f", r.Mt))

	section("Site Wind Speed by Direction")
	directionalTable(pdf, tr, r)

	section("Design Wind Speed and Basic Pressure")
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []string{"Axis", "Bearing", "V_des (m/s)", "p_b (kPa)", "V_des clad.", "p_b clad."} {
		pdf.CellFormat(30, pdfLine, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, o := range windspeed.Orthogonals {
		cells := []string{
			o.String(),
			fmt.Sprintf("%.1f°", r.Site.Orientation+o.Angle()),
			fmt.Sprintf("%.2f", r.Vdes[o]),
			fmt.Sprintf("%.3f", r.Pressure[o]),
			fmt.Sprintf("%.2f", r.VdesCladding[o]),
			fmt.Sprintf("%.3f", r.PressureCladding[o]),
		}
		for _, c := range cells {
			pdf.CellFormat(30, pdfLine, tr(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if sh := r.Shape; sh != nil {
		section("Aerodynamic Shape Factors")
		row("Windward wall C_p,e", fmt.Sprintf("%.2f", sh.Windward))
		row("Leeward wall C_p,e", fmt.Sprintf("%.3f", sh.Leeward))
		for _, z := range sh.SideWalls {
			row(fmt.Sprintf("Side wall %.1f-%.1f m", z.From, z.To), fmt.Sprintf("%.2f", z.Cpe))
		}
		if sh.ShallowRoof != nil {
			for _, z := range sh.ShallowRoof {
				row(fmt.Sprintf("Roof %.1f-%.1f m", z.From, z.To), fmt.Sprintf("%.3f, %.3f", z.Cpe.Min, z.Cpe.Max))
			}
		}
		if sh.SteepRoof != nil {
			row("Upwind slope", fmt.Sprintf("%.3f, %.3f", sh.SteepRoof.Upwind.Min, sh.SteepRoof.Upwind.Max))
			row("Downwind slope", fmt.Sprintf("%.3f", sh.SteepRoof.Downwind))
		}
		row("Combination case", fmt.Sprintf("%s (K_c,e %.1f, K_c,i %.1f)", sh.Combination.Case, sh.Combination.External, sh.Combination.Internal))
		row("Windward wall pressure", fmt.Sprintf("%.3f kPa", sh.WindwardPressure))
		row("Leeward wall pressure", fmt.Sprintf("%.3f kPa", sh.LeewardPressure))
		row("Internal pressure", fmt.Sprintf("%.3f kPa", sh.InternalPressure))

		for _, z := range append(sh.WallLocal.Zones(), sh.RoofLocal.Zones()...) {
			row("Local factor "+z.Label, fmt.Sprintf("K_l %.2f, area %.2f m²", z.Kl, z.Area))
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func directionalTable(pdf *fpdf.Fpdf, tr func(string) string, r *site.Result) {
	const colW = 20.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, pdfLine, "", "1", 0, "C", false, 0, "")
	for _, dir := range asnzs.Directions {
		pdf.CellFormat(colW, pdfLine, dir.String(), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	series := []struct {
		label  string
		values windspeed.Directional
		format string
	}{
		{"M_d", r.Md, "%.2f"},
		{"V_sit", r.Vsit, "%.2f"},
		{"V_sit clad.", r.VsitCladding, "%.2f"},
	}
	for _, s := range series {
		pdf.CellFormat(30, pdfLine, tr(s.label), "1", 0, "L", false, 0, "")
		for _, dir := range asnzs.Directions {
			pdf.CellFormat(colW, pdfLine, fmt.Sprintf(s.format, s.values[dir]), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
