package windspeed

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindDirectionMultiplier(t *testing.T) {
	t.Run("region C primary and cladding", func(t *testing.T) {
		md, clad, err := WindDirectionMultiplier(asnzs.RegionC, false)
		require.NoError(t, err)
		assert.Equal(t, Uniform(0.90), md)
		assert.Equal(t, Uniform(1.0), clad)
	})

	t.Run("region A0 keeps order", func(t *testing.T) {
		md, clad, err := WindDirectionMultiplier(asnzs.RegionA0, false)
		require.NoError(t, err)
		assert.Equal(t, Directional{0.90, 0.85, 0.85, 0.90, 0.90, 0.95, 1.00, 0.95}, md)
		assert.Equal(t, md, clad)
		assert.Equal(t, 0.85, md.At(asnzs.NorthEast))
		assert.Equal(t, 1.00, md.At(asnzs.West))
	})

	t.Run("polygonal cross-section", func(t *testing.T) {
		md, clad, err := WindDirectionMultiplier(asnzs.RegionA4, true)
		require.NoError(t, err)
		assert.Equal(t, Uniform(1.0), md)
		assert.Equal(t, Uniform(1.0), clad)
	})

	t.Run("B2 cladding uniform", func(t *testing.T) {
		_, clad, err := WindDirectionMultiplier(asnzs.RegionB2, false)
		require.NoError(t, err)
		assert.Equal(t, Uniform(1.0), clad)
	})

	t.Run("NZ region has no table row", func(t *testing.T) {
		_, _, err := WindDirectionMultiplier(asnzs.RegionNZ3, false)
		assert.True(t, errors.Is(err, asnzs.ErrInvalidCategory))
	})
}

func TestClimateChangeMultiplier(t *testing.T) {
	for _, r := range asnzs.AustralianRegions {
		want := 1.0
		if r == asnzs.RegionB2 || r == asnzs.RegionC || r == asnzs.RegionD {
			want = 1.05
		}
		assert.Equal(t, want, ClimateChangeMultiplier(r), r.String())
	}
	assert.Equal(t, 1.0, ClimateChangeMultiplier(asnzs.RegionNZ1))
}

func TestTerrainHeightMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		tc     asnzs.TerrainCategory
		region asnzs.Region
		height float64
		want   float64
	}{
		{"A0 midpoint", asnzs.TC1, asnzs.RegionA0, 17.5, 1.065},
		{"A0 upper plateau", asnzs.TC1, asnzs.RegionA0, 125, 1.24},
		{"TC1 midpoint", asnzs.TC1, asnzs.RegionA1, 17.5, 1.13},
		{"TC2.5 between 20 and 30", asnzs.TC2_5, asnzs.RegionC, 25, 1.035},
		{"below table clamps", asnzs.TC3, asnzs.RegionC, 2.5, 0.83},
		{"top knot", asnzs.TC3, asnzs.RegionC, 200, 1.24},
		{"above table clamps", asnzs.TC4, asnzs.RegionB1, 500, 1.16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TerrainHeightMultiplier(tt.tc, tt.region, tt.height)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	t.Run("knots are exact", func(t *testing.T) {
		got, err := TerrainHeightMultiplier(asnzs.TC3, asnzs.RegionC, 200)
		require.NoError(t, err)
		assert.Equal(t, 1.24, got)
	})

	t.Run("invalid category", func(t *testing.T) {
		_, err := TerrainHeightMultiplier(asnzs.TerrainCategory(9), asnzs.RegionC, 10)
		assert.True(t, errors.Is(err, asnzs.ErrInvalidCategory))
	})
}

func TestTerrainHeightProfile(t *testing.T) {
	profile, err := TerrainHeightProfile(asnzs.TC2, asnzs.RegionB1)
	require.NoError(t, err)
	require.Len(t, profile, 12)
	assert.Equal(t, HeightMultiplier{Height: 3, Mzcat: 0.91}, profile[0])
	assert.Equal(t, HeightMultiplier{Height: 200, Mzcat: 1.29}, profile[11])

	a0, err := TerrainHeightProfile(asnzs.TC4, asnzs.RegionA0)
	require.NoError(t, err)
	assert.Equal(t, 1.18, a0[7].Mzcat)
}

func TestShieldingMultiplier(t *testing.T) {
	t.Run("large spacing is unshielded", func(t *testing.T) {
		ms, err := ShieldingMultiplier(10, 4, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ms)
	})

	t.Run("interpolated", func(t *testing.T) {
		// s = 10*(10/4+5)/10 = 7.5
		ms, err := ShieldingMultiplier(10, 10, 10, 4)
		require.NoError(t, err)
		assert.InDelta(t, 0.925, ms, 1e-9)
	})

	t.Run("full shielding", func(t *testing.T) {
		// s = 2*(10/10+5)/sqrt(100*100) = 0.12
		ms, err := ShieldingMultiplier(2, 100, 100, 10)
		require.NoError(t, err)
		assert.Equal(t, 0.7, ms)
	})

	t.Run("breakpoint", func(t *testing.T) {
		// s = 9*(10/10+5)/sqrt(36*36) = 1.5
		s, err := ShieldingParameter(9, 36, 36, 10)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, s, 1e-12)
	})

	t.Run("tall structures are not shielded", func(t *testing.T) {
		ms, err := ShieldingMultiplier(30, 100, 100, 10)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ms)
	})

	t.Run("zero divisors", func(t *testing.T) {
		for _, args := range [][3]float64{{0, 10, 1}, {10, 0, 1}, {10, 10, 0}} {
			_, err := ShieldingMultiplier(10, args[0], args[1], args[2])
			assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero), "%v", args)
		}
	})
}

func TestTopographicMultiplier(t *testing.T) {
	flat := Topography{Z: 10, HillHeight: 5, Lu: 100, X: 0}

	t.Run("gentle slope", func(t *testing.T) {
		mt, err := TopographicMultiplier(asnzs.RegionB1, flat)
		require.NoError(t, err)
		assert.Equal(t, 1.0, mt)
	})

	t.Run("general hill", func(t *testing.T) {
		// slope 0.2, L1 = max(36, 16) = 36, L2 = 144
		hill := Topography{Z: 10, HillHeight: 40, Lu: 100, X: 20}
		mt, err := TopographicMultiplier(asnzs.RegionC, hill)
		require.NoError(t, err)
		want := 1 + (40/(3.5*(10+36.0)))*(1-20/144.0)
		assert.InDelta(t, want, mt, 1e-12)
	})

	t.Run("escarpment extends L2", func(t *testing.T) {
		hill := Topography{Z: 10, HillHeight: 40, Lu: 100, X: 20, Escarpment: true}
		mt, err := TopographicMultiplier(asnzs.RegionC, hill)
		require.NoError(t, err)
		want := 1 + (40/(3.5*(10+36.0)))*(1-20/360.0)
		assert.InDelta(t, want, mt, 1e-12)
	})

	t.Run("steep crest", func(t *testing.T) {
		// slope 0.5, L1 = max(18, 20) = 20, L2 = 80
		crest := Topography{Z: 5, HillHeight: 50, Lu: 50, X: 10}
		mh, err := HillShapeMultiplier(crest)
		require.NoError(t, err)
		assert.InDelta(t, 1+0.71*(1-10/80.0), mh, 1e-12)
	})

	t.Run("A0 halves the effect", func(t *testing.T) {
		hill := Topography{Z: 10, HillHeight: 40, Lu: 100, X: 20}
		mh, _ := HillShapeMultiplier(hill)
		mt, err := TopographicMultiplier(asnzs.RegionA0, hill)
		require.NoError(t, err)
		assert.InDelta(t, 0.5+0.5*mh, mt, 1e-12)
	})

	t.Run("A4 elevation", func(t *testing.T) {
		high := flat
		high.Elevation = 600
		mt, err := TopographicMultiplier(asnzs.RegionA4, high)
		require.NoError(t, err)
		assert.InDelta(t, 1.09, mt, 1e-12)

		high.Elevation = 499
		mt, err = TopographicMultiplier(asnzs.RegionA4, high)
		require.NoError(t, err)
		assert.Equal(t, 1.0, mt)
	})

	t.Run("zero Lu", func(t *testing.T) {
		_, err := TopographicMultiplier(asnzs.RegionC, Topography{HillHeight: 10})
		assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero))
	})
}
