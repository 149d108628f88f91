package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gowind/internal/windspeed"
)

func sampleProfile(t *testing.T) ProfileData {
	t.Helper()
	vsit := windspeed.Directional{45.36, 42.84, 42.84, 45.36, 45.36, 47.88, 50.40, 47.88}
	design, err := windspeed.DesignWindSpeed(0, vsit)
	require.NoError(t, err)
	return ProfileData{
		Title:   "Depot",
		Profile: windspeed.DirectionalProfile(vsit),
		Design:  design,
	}
}

func TestDrawASCIIProfile(t *testing.T) {
	out := DrawASCIIProfile(sampleProfile(t))

	assert.Contains(t, out, "DEPOT")
	assert.Contains(t, out, "-45° to 355°")
	assert.Contains(t, out, "Building orientation: 0.0°")
	assert.Contains(t, out, "270 Deg")
	assert.Contains(t, out, "V_des =  50.40 m/s")
}

func TestDrawASCIIProfile_Empty(t *testing.T) {
	out := DrawASCIIProfile(ProfileData{})
	assert.Contains(t, out, "0 Deg")
	assert.NotContains(t, out, "vs bearing")
}

func TestDrawDirectionRose(t *testing.T) {
	out := DrawDirectionRose("M_d", windspeed.Directional{0.9, 0.85, 0.85, 0.9, 0.9, 0.95, 1.0, 0.95}, "")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "N "))
	assert.Contains(t, lines[8], strings.Repeat("█", 40))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"V_R = 66 m/s", "p = 2.33 kPa"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportProfile(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "charts", "profile.png")
	require.NoError(t, ExportProfile(sampleProfile(t), png))
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	svg := filepath.Join(dir, "profile.svg")
	require.NoError(t, ExportProfile(sampleProfile(t), svg))
	assert.FileExists(t, svg)

	noExt := filepath.Join(dir, "profile")
	require.NoError(t, ExportProfile(sampleProfile(t), noExt))
	assert.FileExists(t, noExt+".png")

	assert.Error(t, ExportProfile(ProfileData{}, filepath.Join(dir, "empty.png")))
}

func TestExportHeightProfile(t *testing.T) {
	profile := []windspeed.HeightMultiplier{{Height: 3, Mzcat: 0.91}, {Height: 10, Mzcat: 1.0}, {Height: 200, Mzcat: 1.29}}
	path := filepath.Join(t.TempDir(), "mzcat.png")
	require.NoError(t, ExportHeightProfile("TC2", profile, path))
	assert.FileExists(t, path)

	assert.Error(t, ExportHeightProfile("TC2", nil, path))
}
