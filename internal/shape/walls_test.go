package shape

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindwardWall(t *testing.T) {
	assert.Equal(t, 0.7, WindwardWall(10, false))
	assert.Equal(t, 0.8, WindwardWall(10, true))
	assert.Equal(t, 0.8, WindwardWall(25, false))
	assert.Equal(t, 0.8, WindwardWall(40, false))
}

func TestLeewardWall(t *testing.T) {
	tests := []struct {
		name        string
		d, b, pitch float64
		want        float64
	}{
		{"flat square", 10, 10, 5, -0.5},
		{"flat d/b 2", 20, 10, 5, -0.3},
		{"flat d/b 3", 30, 10, 0, -0.25},
		{"flat d/b 4", 40, 10, 5, -0.2},
		{"flat deep clamps", 80, 10, 5, -0.2},
		{"10 degrees", 10, 10, 10, -0.3},
		{"17.5 degrees", 10, 10, 17.5, -0.35},
		{"20 degrees", 10, 10, 20, -0.4},
		{"steep b/d 0.2", 10, 2, 30, -0.625},
		{"steep wide clamps", 10, 10, 30, -0.5},
		{"transition", 10, 2, 22.5, -0.5125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeewardWall(tt.d, tt.b, tt.pitch)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	_, err := LeewardWall(0, 10, 5)
	assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero))
	_, err = LeewardWall(10, 0, 30)
	assert.True(t, errors.Is(err, asnzs.ErrDivisionByZero))
}

func TestSideWalls(t *testing.T) {
	assert.Equal(t, [4]WallZone{
		{From: 0, To: 5, Cpe: -0.65},
		{From: 5, To: 10, Cpe: -0.5},
		{From: 10, To: 15, Cpe: -0.3},
		{From: 15, To: 30, Cpe: -0.2},
	}, SideWalls(5, 30))

	short := SideWalls(10, 20)
	assert.Equal(t, WallZone{From: 30, To: 30, Cpe: -0.2}, short[3])
}
