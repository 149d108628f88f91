package windspeed

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalWindSpeed(t *testing.T) {
	tests := []struct {
		region asnzs.Region
		ari    float64
		want   float64
	}{
		{asnzs.RegionA0, 500, 45},
		{asnzs.RegionA2, 250, 43},
		{asnzs.RegionB2, 250, 53},
		{asnzs.RegionC, 500, 66},
		{asnzs.RegionC, 2500, 74},
		{asnzs.RegionC, 10000, 81},
		{asnzs.RegionD, 500, 80},
	}
	for _, tt := range tests {
		t.Run(tt.region.String(), func(t *testing.T) {
			got, err := RegionalWindSpeed(tt.region, tt.ari)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionalWindSpeedSLS(t *testing.T) {
	tests := map[asnzs.Region]float64{
		asnzs.RegionA0: 37,
		asnzs.RegionA1: 37,
		asnzs.RegionB2: 39,
		asnzs.RegionC:  47,
		asnzs.RegionD:  53,
	}
	for region, want := range tests {
		got, err := RegionalWindSpeedSLS(region)
		require.NoError(t, err)
		assert.Equal(t, want, got, region.String())
	}
}

func TestRegionalWindSpeed_MonotonicInARI(t *testing.T) {
	aris := []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000}
	for _, region := range asnzs.Regions {
		prev := -1.0
		for _, r := range aris {
			v, err := RegionalWindSpeed(region, r)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, prev, "%s at R=%g", region, r)
			prev = v
		}
	}
}

func TestRegionalWindSpeed_SubRegionsShareFormula(t *testing.T) {
	a0, err := RegionalWindSpeed(asnzs.RegionA0, 1000)
	require.NoError(t, err)
	for _, r := range []asnzs.Region{asnzs.RegionA1, asnzs.RegionA2, asnzs.RegionA3, asnzs.RegionA4, asnzs.RegionA5} {
		v, err := RegionalWindSpeed(r, 1000)
		require.NoError(t, err)
		assert.Equal(t, a0, v)
	}

	nz1, _ := RegionalWindSpeed(asnzs.RegionNZ1, 500)
	nz2, _ := RegionalWindSpeed(asnzs.RegionNZ2, 500)
	assert.Equal(t, nz1, nz2)
}

func TestRegionalWindSpeed_Errors(t *testing.T) {
	_, err := RegionalWindSpeed(asnzs.Region(42), 500)
	assert.True(t, errors.Is(err, asnzs.ErrInvalidCategory))

	_, err = RegionalWindSpeed(asnzs.RegionC, 0)
	assert.True(t, errors.Is(err, asnzs.ErrOutOfRange))

	_, err = RegionalWindSpeed(asnzs.RegionC, -100)
	assert.True(t, errors.Is(err, asnzs.ErrOutOfRange))
}
