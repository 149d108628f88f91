package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/alexiusacademia/gowind/internal/windspeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycloneSite() *Site {
	return &Site{
		Name:            "Depot",
		Region:          "C",
		TerrainCategory: "TC2",
		DesignLife:      "50 Years",
		ImportanceLevel: 2,
		Height:          10,
		Orientation:     0,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	require.NoError(t, cycloneSite().Validate())

	tests := []struct {
		name   string
		mutate func(*Site)
		target error
	}{
		{"unknown region", func(s *Site) { s.Region = "E" }, asnzs.ErrInvalidCategory},
		{"lower case region", func(s *Site) { s.Region = "c" }, asnzs.ErrInvalidCategory},
		{"unknown terrain", func(s *Site) { s.TerrainCategory = "TC5" }, asnzs.ErrInvalidCategory},
		{"unknown life", func(s *Site) { s.DesignLife = "10 Years" }, asnzs.ErrInvalidCategory},
		{"importance level", func(s *Site) { s.ImportanceLevel = 5 }, asnzs.ErrInvalidCategory},
		{"orientation", func(s *Site) { s.Orientation = 120 }, asnzs.ErrOutOfRange},
		{"height", func(s *Site) { s.Height = 0 }, nil},
		{"shielding", func(s *Site) { s.Shielding = &Shielding{Hs: 5, Bs: 0, Ns: 2} }, nil},
		{"building", func(s *Site) { s.Building = &Building{Depth: 20} }, nil},
		{"framing", func(s *Site) { s.Building = &Building{Depth: 20, Breadth: 40, Framing: "Roof"} }, asnzs.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := cycloneSite()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "site.json", `{
		"name": "Warehouse",
		"region": "A2",
		"terrain_category": "TC2.5",
		"design_life": "25 Years",
		"importance_level": 2,
		"height": 8,
		"orientation": 30,
		"shielding": {"h_s": 6, "b_s": 10, "n_s": 4},
		"building": {"depth": 30, "breadth": 50, "roof_pitch": 15, "framing": "walls", "cpi": -0.3}
	}`)

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", s.Name)
	assert.Equal(t, "TC2.5", s.TerrainCategory)
	require.NotNil(t, s.Shielding)
	assert.Equal(t, 4.0, s.Shielding.Ns)
	require.NotNil(t, s.Building)
	assert.Equal(t, "walls", s.Building.Framing)
	assert.Nil(t, s.Topography)

	_, err = LoadFromFile(writeFile(t, "bad.json", `{"region": "A2",`))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "invalid.json", `{"region": "Q"}`))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAnalyze_Cyclonic(t *testing.T) {
	r, err := cycloneSite().Analyze()
	require.NoError(t, err)

	assert.True(t, r.Cyclonic)
	assert.Equal(t, 500.0, r.ARI)
	assert.Equal(t, 66.0, r.VR)
	assert.Equal(t, 47.0, r.VRsl)
	assert.Equal(t, 1.05, r.Mc)
	assert.Equal(t, windspeed.Uniform(0.9), r.Md)
	assert.Equal(t, windspeed.Uniform(1.0), r.MdCladding)
	assert.Equal(t, 1.0, r.Mzcat)
	assert.Equal(t, 1.0, r.Ms)
	assert.Equal(t, 1.0, r.Mt)
	assert.Equal(t, 1.0, r.Cdyn)

	for _, dir := range asnzs.Directions {
		assert.InDelta(t, 62.37, r.Vsit[dir], 1e-9)
		assert.InDelta(t, 69.3, r.VsitCladding[dir], 1e-9)
	}
	for _, o := range windspeed.Orthogonals {
		assert.InDelta(t, 62.37, r.Vdes[o], 1e-9)
		assert.InDelta(t, 69.3, r.VdesCladding[o], 1e-9)
		assert.InDelta(t, 0.5*1.2e-3*62.37*62.37, r.Pressure[o], 1e-9)
		assert.InDelta(t, 0.5*1.2e-3*69.3*69.3, r.PressureCladding[o], 1e-9)
	}
	assert.Len(t, r.Profile, 81)
	assert.Nil(t, r.Shape)
	assert.Nil(t, r.HeightProfile)
}

func TestAnalyze_NonCyclonicWithModifiers(t *testing.T) {
	s := &Site{
		Region:          "A0",
		TerrainCategory: "TC3",
		DesignLife:      "50 Years",
		ImportanceLevel: 1,
		Height:          10,
		Orientation:     45,
		Shielding:       &Shielding{Hs: 10, Bs: 10, Ns: 4},
		Topography:      &Topography{HillHeight: 5, Lu: 100},
	}
	r, err := s.Analyze()
	require.NoError(t, err)

	assert.False(t, r.Cyclonic)
	assert.Equal(t, 100.0, r.ARI)
	assert.Equal(t, 1.0, r.Mc)
	assert.InDelta(t, 0.925, r.Ms, 1e-9)
	// A0 blends M_h = 1.0 to 1.0
	assert.Equal(t, 1.0, r.Mt)
	// A0 uses its own curve for every category
	assert.Equal(t, 1.0, r.Mzcat)
	assert.Equal(t, r.Md, r.MdCladding)

	vr, err := windspeed.RegionalWindSpeed(asnzs.RegionA0, 100)
	require.NoError(t, err)
	assert.InDelta(t, vr*0.9*0.925, r.Vsit[asnzs.North], 1e-9)
}

func TestAnalyze_CyclonicFlag(t *testing.T) {
	s := cycloneSite()
	s.Region = "A4"
	s.ImportanceLevel = 1

	r, err := s.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.ARI)

	s.Cyclonic = true
	r, err = s.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 200.0, r.ARI)
}

func TestAnalyze_RuleViolation(t *testing.T) {
	s := cycloneSite()
	s.DesignLife = "5 Years"
	s.ImportanceLevel = 4

	_, err := s.Analyze()
	assert.True(t, errors.Is(err, asnzs.ErrInvalidCombination))
}

func TestAnalyze_Building(t *testing.T) {
	s := cycloneSite()
	s.Building = &Building{Depth: 20, Breadth: 40, RoofPitch: 5, Cpi: -0.3, Framing: "roof", VaryWithHeight: true}

	r, err := s.Analyze()
	require.NoError(t, err)
	require.NotNil(t, r.Shape)
	sh := r.Shape

	assert.Equal(t, 0.8, sh.Windward)
	assert.Equal(t, -0.5, sh.Leeward)
	assert.Equal(t, -0.65, sh.SideWalls[0].Cpe)
	require.NotNil(t, sh.ShallowRoof)
	assert.Nil(t, sh.SteepRoof)
	assert.Equal(t, shape.Pair{Min: -0.9, Max: -0.4}, sh.ShallowRoof[0].Cpe)
	assert.Equal(t, 4.0, sh.WallLocal.A)
	assert.NotNil(t, sh.RoofLocal.RA3)
	assert.Equal(t, shape.Combination{Case: "b", External: 0.9, Internal: 1.0}, sh.Combination)
	assert.Len(t, r.HeightProfile, 12)

	pb := r.Pressure[windspeed.Deg0]
	assert.InDelta(t, pb*0.8*0.9, sh.WindwardPressure, 1e-9)
	assert.InDelta(t, pb*-0.5*0.9, sh.LeewardPressure, 1e-9)
	assert.InDelta(t, pb*-0.3, sh.InternalPressure, 1e-9)
}

func TestAnalyze_SteepRoof(t *testing.T) {
	s := cycloneSite()
	s.Building = &Building{Depth: 20, Breadth: 40, RoofPitch: 20}
	s.Cdyn = 1.2

	r, err := s.Analyze()
	require.NoError(t, err)
	require.NotNil(t, r.Shape.SteepRoof)
	assert.Nil(t, r.Shape.ShallowRoof)
	assert.Equal(t, shape.Pair{Min: -0.4, Max: 0}, r.Shape.SteepRoof.Upwind)
	assert.Equal(t, -0.6, r.Shape.SteepRoof.Downwind)
	assert.Equal(t, "default", r.Shape.Combination.Case)
	assert.InDelta(t, r.Pressure[0]*0.7*1.2, r.Shape.WindwardPressure, 1e-9)
	assert.NotNil(t, r.Shape.RoofLocal.RC1)
}

func TestGoverningAxis(t *testing.T) {
	assert.Equal(t, windspeed.Deg0, governingAxis(windspeed.DesignSpeeds{40, 40, 40, 40}))
	assert.Equal(t, windspeed.Deg180, governingAxis(windspeed.DesignSpeeds{40, 41, 45, 44}))
}
