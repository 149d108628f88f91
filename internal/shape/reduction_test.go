package shape

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurface(t *testing.T) {
	tests := map[string]Surface{
		"roof":          SurfaceRoof,
		"Roof":          SurfaceRoof,
		"side walls":    SurfaceSideWalls,
		"Side Wall":     SurfaceSideWalls,
		"WINDWARD":      SurfaceWindward,
		"windward wall": SurfaceWindward,
		" Leeward ":     SurfaceLeeward,
		"leeward walls": SurfaceLeeward,
	}
	for name, want := range tests {
		got, err := ParseSurface(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseSurface("floor")
	assert.True(t, errors.Is(err, asnzs.ErrInvalidCategory))
}

func TestAreaReductionFactor(t *testing.T) {
	tests := []struct {
		area    float64
		surface Surface
		want    float64
	}{
		{5, SurfaceRoof, 1.0},
		{10, SurfaceRoof, 1.0},
		{17.5, SurfaceRoof, 0.95},
		{25, SurfaceSideWalls, 0.9},
		{100, SurfaceSideWalls, 0.8},
		{400, SurfaceRoof, 0.8},
		{50, SurfaceWindward, 1.0},
		{500, SurfaceLeeward, 1.0},
	}
	for _, tt := range tests {
		got, err := AreaReductionFactor(tt.area, tt.surface)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "%s at %g m²", tt.surface, tt.area)
	}

	_, err := AreaReductionFactor(10, Surface(8))
	assert.True(t, errors.Is(err, asnzs.ErrInvalidCategory))
}

func TestTributaryArea(t *testing.T) {
	assert.Equal(t, 18.0, TributaryArea(6, 3))
}
