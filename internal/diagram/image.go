package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gowind/internal/windspeed"
)

// ExportProfile exports the directional wind speed profile to an image file.
// The design speed on each building axis is marked at its bearing.
func ExportProfile(data ProfileData, filename string) error {
	if len(data.Profile) == 0 {
		return fmt.Errorf("no profile points to plot")
	}

	p := plot.New()
	p.Title.Text = "Site Wind Speed Profile"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "Bearing from true North (degrees)"
	p.Y.Label.Text = "Wind speed (m/s)"
	p.Add(plotter.NewGrid())

	profilePts := make(plotter.XYs, len(data.Profile))
	for i, pt := range data.Profile {
		profilePts[i] = plotter.XY{X: pt.Angle, Y: pt.Speed}
	}
	profileLine, err := plotter.NewLine(profilePts)
	if err != nil {
		return err
	}
	profileLine.LineStyle.Width = vg.Points(2)
	profileLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(profileLine)
	p.Legend.Add("V_sit", profileLine)

	// Minimum design speed reference line
	first, last := profilePts[0].X, profilePts[len(profilePts)-1].X
	minLine, err := plotter.NewLine(plotter.XYs{
		{X: first, Y: windspeed.MinimumDesignSpeed},
		{X: last, Y: windspeed.MinimumDesignSpeed},
	})
	if err != nil {
		return err
	}
	minLine.LineStyle.Width = vg.Points(1)
	minLine.LineStyle.Color = color.Gray{Y: 128}
	minLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(minLine)
	p.Legend.Add("minimum V_des", minLine)

	// Design speeds at each building axis
	designPts := make(plotter.XYs, 0, len(windspeed.Orthogonals))
	labels := plotter.XYLabels{}
	for _, o := range windspeed.Orthogonals {
		bearing := data.Orientation + o.Angle()
		pt := plotter.XY{X: bearing, Y: data.Design[o]}
		designPts = append(designPts, pt)
		labels.XYs = append(labels.XYs, plotter.XY{X: bearing, Y: data.Design[o] + 0.5})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%s: %.1f", o, data.Design[o]))
	}
	design, err := plotter.NewScatter(designPts)
	if err != nil {
		return err
	}
	design.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	design.GlyphStyle.Radius = vg.Points(5)
	design.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(design)
	p.Legend.Add("V_des", design)

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)

	p.X.Min = first
	p.X.Max = max(last, data.Orientation+windspeed.Deg270.Angle())
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportHeightProfile exports a terrain/height multiplier curve, with height
// on the vertical axis.
func ExportHeightProfile(title string, profile []windspeed.HeightMultiplier, filename string) error {
	if len(profile) == 0 {
		return fmt.Errorf("no height multipliers to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "M_z,cat"
	p.Y.Label.Text = "Height (m)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(profile))
	for i, hm := range profile {
		pts[i] = plotter.XY{X: hm.Mzcat, Y: hm.Height}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)

	return save(p, 5*vg.Inch, 7*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension, creating
// the directory if needed. Unknown extensions are saved as PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
