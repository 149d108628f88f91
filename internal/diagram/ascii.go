package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/windspeed"
)

// ProfileData holds the directional wind speed profile of a site and the
// design speeds resolved onto the building axes.
type ProfileData struct {
	Title       string
	Profile     []windspeed.ProfilePoint
	Orientation float64 // degrees
	Design      windspeed.DesignSpeeds
}

// DrawASCIIProfile plots the site wind speed against bearing as a terminal
// chart, followed by the design speed on each building axis.
func DrawASCIIProfile(data ProfileData) string {
	var sb strings.Builder

	speeds := make([]float64, len(data.Profile))
	for i, p := range data.Profile {
		speeds[i] = p.Speed
	}

	caption := "V_sit (m/s) vs bearing"
	if len(data.Profile) > 0 {
		first, last := data.Profile[0].Angle, data.Profile[len(data.Profile)-1].Angle
		caption = fmt.Sprintf("V_sit (m/s) vs bearing, %.0f° to %.0f° in 5° steps", first, last)
	}

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
		sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(data.Title)))))
	}
	if len(speeds) > 0 {
		sb.WriteString(asciigraph.Plot(speeds,
			asciigraph.Height(12),
			asciigraph.Offset(4),
			asciigraph.Precision(1),
			asciigraph.Caption(caption),
		))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Building orientation: %.1f°\n", data.Orientation))
	for _, o := range windspeed.Orthogonals {
		bearing := data.Orientation + o.Angle()
		sb.WriteString(fmt.Sprintf("  %-8s (bearing %5.1f°)  V_des = %6.2f m/s\n", o, bearing, data.Design[o]))
	}

	return sb.String()
}

// DrawDirectionRose lists a directional series as horizontal bars scaled to
// the largest value.
func DrawDirectionRose(title string, values windspeed.Directional, unit string) string {
	var sb strings.Builder

	width := 40
	maxVal, _ := values.Max()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	for _, dir := range asnzs.Directions {
		v := values[dir]
		barLen := 0
		if maxVal > 0 && v > 0 {
			barLen = int(v / maxVal * float64(width))
		}
		sb.WriteString(fmt.Sprintf("  %-3s │%s %.2f %s\n", dir, strings.Repeat("█", barLen), v, unit))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
