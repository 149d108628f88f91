package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoofShallow_TableRows(t *testing.T) {
	t.Run("h/d exactly 0.5", func(t *testing.T) {
		zones, err := RoofShallow(5, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, [5]RoofZone{
			{From: 0, To: 2.5, Cpe: Pair{-0.9, -0.4}},
			{From: 2.5, To: 5, Cpe: Pair{-0.9, -0.4}},
			{From: 5, To: 10, Cpe: Pair{-0.5, 0}},
			{From: 10, To: 15, Cpe: Pair{-0.3, 0.1}},
			{From: 15, To: 15, Cpe: Pair{-0.2, 0.2}},
		}, zones)
	})

	t.Run("h/d exactly 1.0", func(t *testing.T) {
		zones, err := RoofShallow(10, 10, 0)
		require.NoError(t, err)
		want := [5]Pair{{-1.3, -0.6}, {-0.7, -0.3}, {-0.7, -0.3}, {-0.7, -0.3}, {-0.7, -0.3}}
		for i, z := range zones {
			assert.Equal(t, want[i], z.Cpe, "zone %d", i)
		}
		assert.Equal(t, 30.0, zones[4].To)
	})

	t.Run("low roof uses first row", func(t *testing.T) {
		zones, err := RoofShallow(2, 20, 3)
		require.NoError(t, err)
		assert.Equal(t, Pair{-0.2, 0.2}, zones[4].Cpe)
		assert.Equal(t, 20.0, zones[4].To)
	})

	t.Run("tall roof uses second row", func(t *testing.T) {
		zones, err := RoofShallow(30, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, Pair{-1.3, -0.6}, zones[0].Cpe)
	})
}

func TestRoofShallow_Blend(t *testing.T) {
	zones, err := RoofShallow(7.5, 10, 5)
	require.NoError(t, err)
	assert.InDelta(t, -1.1, zones[0].Cpe.Min, 1e-12)
	assert.InDelta(t, -0.5, zones[0].Cpe.Max, 1e-12)
	assert.InDelta(t, -0.6, zones[2].Cpe.Min, 1e-12)
	assert.InDelta(t, -0.15, zones[2].Cpe.Max, 1e-12)
}

func TestRoofShallow_Errors(t *testing.T) {
	_, err := RoofShallow(5, 10, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asnzs.ErrOutOfRange))
	assert.Contains(t, err.Error(), "10 degrees")

	_, err = RoofShallow(5, 0, 5)
	assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero))
}

func TestRoofSteep(t *testing.T) {
	t.Run("table knot", func(t *testing.T) {
		roof, err := RoofSteep(5, 10, 20, 15)
		require.NoError(t, err)
		assert.Equal(t, SteepRoof{Upwind: Pair{-0.7, -0.3}, Downwind: -0.5}, roof)
	})

	t.Run("25 degrees with b/d between 3 and 8", func(t *testing.T) {
		roof, err := RoofSteep(2.5, 10, 50, 25)
		require.NoError(t, err)
		assert.Equal(t, Pair{-0.2, 0.3}, roof.Upwind)
		assert.InDelta(t, -0.72, roof.Downwind, 1e-12)
	})

	t.Run("wide building", func(t *testing.T) {
		roof, err := RoofSteep(10, 10, 100, 30)
		require.NoError(t, err)
		assert.Equal(t, Pair{-0.3, 0.2}, roof.Upwind)
		assert.Equal(t, -0.9, roof.Downwind)
	})

	t.Run("between pitches", func(t *testing.T) {
		roof, err := RoofSteep(2.5, 10, 10, 12.5)
		require.NoError(t, err)
		assert.InDelta(t, -0.6, roof.Upwind.Min, 1e-12)
		assert.InDelta(t, -0.15, roof.Upwind.Max, 1e-12)
		assert.InDelta(t, -0.4, roof.Downwind, 1e-12)
	})

	t.Run("between ratios", func(t *testing.T) {
		roof, err := RoofSteep(7.5, 10, 10, 10)
		require.NoError(t, err)
		assert.InDelta(t, -1.1, roof.Upwind.Min, 1e-12)
		assert.InDelta(t, -0.5, roof.Upwind.Max, 1e-12)
		assert.InDelta(t, -0.6, roof.Downwind, 1e-12)
	})

	t.Run("above 45 degrees", func(t *testing.T) {
		roof, err := RoofSteep(20, 10, 10, 60)
		require.NoError(t, err)
		assert.Equal(t, 0.0, roof.Upwind.Min)
		assert.InDelta(t, 0.8*math.Sin(math.Pi/3), roof.Upwind.Max, 1e-12)
		assert.Equal(t, -0.6, roof.Downwind)
	})

	t.Run("45 degrees", func(t *testing.T) {
		roof, err := RoofSteep(5, 10, 10, 45)
		require.NoError(t, err)
		assert.InDelta(t, 0.8*math.Sin(math.Pi/4), roof.Upwind.Max, 1e-12)
	})
}

func TestRoofSteep_Errors(t *testing.T) {
	_, err := RoofSteep(5, 10, 10, 9.9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asnzs.ErrOutOfRange))
	assert.Contains(t, err.Error(), "9.9")

	_, err = RoofSteep(5, 0, 10, 20)
	assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero))
}

func TestDownwindSteep(t *testing.T) {
	assert.Equal(t, -0.6, downwindSteep(3))
	assert.InDelta(t, -0.6, downwindSteep(3.0000001), 1e-6)
	assert.InDelta(t, -0.9, downwindSteep(7.9999999), 1e-6)
	assert.Equal(t, -0.9, downwindSteep(8))
}
