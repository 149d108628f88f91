package shape

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/interp"
)

// SteepPitch is the roof pitch (degrees) from which a roof is treated as
// steep, with separate upwind and downwind slope coefficients.
const SteepPitch = 10.0

// RoofZone is a roof band measured from the windward edge (m).
type RoofZone struct {
	From float64
	To   float64
	Cpe  Pair
}

// Shallow roof rows, Table 5.3(A), for h/d <= 0.5 and h/d >= 1.0.
var (
	shallowLow = [5]Pair{
		{-0.9, -0.4}, {-0.9, -0.4}, {-0.5, 0}, {-0.3, 0.1}, {-0.2, 0.2},
	}
	shallowHigh = [5]Pair{
		{-1.3, -0.6}, {-0.7, -0.3}, {-0.7, -0.3}, {-0.7, -0.3}, {-0.7, -0.3},
	}
	shallowBands = [5][2]float64{{0, 0.5}, {0.5, 1}, {1, 2}, {2, 3}, {3, 3}}
)

// RoofShallow returns C_p,e for the five along-wind zones of a roof pitched
// under 10°. The zones start at 0, 0.5h, h, 2h and 3h; the last runs to the
// leeward edge. Between h/d of 0.5 and 1.0 the two table rows are blended
// linearly.
func RoofShallow(h, d, pitch float64) ([5]RoofZone, error) {
	var zones [5]RoofZone
	if pitch >= SteepPitch {
		return zones, fmt.Errorf("%w: shallow roof coefficients apply below %g degrees, not %g degrees",
			asnzs.ErrOutOfRange, SteepPitch, pitch)
	}
	if d == 0 {
		return zones, fmt.Errorf("%w: roof depth d shall not be zero", asnzs.ErrDivisionByZero)
	}

	ratio := h / d
	for i := range zones {
		lo, hi := shallowLow[i], shallowHigh[i]
		zones[i] = RoofZone{
			From: shallowBands[i][0] * h,
			To:   shallowBands[i][1] * h,
			Cpe: Pair{
				Min: interp.Between(ratio, 0.5, 1.0, lo.Min, hi.Min),
				Max: interp.Between(ratio, 0.5, 1.0, lo.Max, hi.Max),
			},
		}
	}
	zones[4].To = max(3*h, d)
	return zones, nil
}

// SteepRoof holds the coefficients for a roof pitched 10° or more with wind
// normal to the ridge. The upwind slope carries a minimum and maximum.
type SteepRoof struct {
	Upwind   Pair
	Downwind float64
}

// Steep roof tables, Table 5.3(B) and 5.3(C). Rows are for h/d of 0.25, 0.5
// and 1.0.
var (
	steepRatios   = []float64{0.25, 0.5, 1.0}
	upwindPitches = []float64{10, 15, 20, 25, 30, 35, 45}
	upwindMinRows = [3][]float64{
		{-0.7, -0.5, -0.3, -0.2, -0.2, 0, 0},
		{-0.9, -0.7, -0.4, -0.3, -0.2, -0.2, 0},
		{-1.3, -1.0, -0.7, -0.5, -0.3, -0.2, 0},
	}
	upwindMaxRows = [3][]float64{
		{-0.3, 0, 0.2, 0.3, 0.4, 0.5, 0.8 * sin45},
		{-0.4, -0.3, 0, 0.2, 0.3, 0.4, 0.8 * sin45},
		{-0.6, -0.5, -0.3, 0, 0.2, 0.3, 0.8 * sin45},
	}
	downwindPitches = []float64{10, 15, 20, 25}
	downwindRows    = [3][3]float64{
		{-0.3, -0.5, -0.6},
		{-0.5, -0.5, -0.6},
		{-0.7, -0.6, -0.6},
	}
)

const sin45 = math.Sqrt2 / 2

// RoofSteep returns the upwind and downwind slope coefficients for a roof
// pitched 10° or more. Each table row is first interpolated on pitch and the
// three row results are then interpolated on h/d. Above 45° the upwind slope
// takes (0, 0.8 sin α). The downwind value at 25° and above depends on b/d.
func RoofSteep(h, d, b, pitch float64) (SteepRoof, error) {
	if pitch < SteepPitch {
		return SteepRoof{}, fmt.Errorf("%w: steep roof coefficients apply from %g degrees, not %g degrees",
			asnzs.ErrOutOfRange, SteepPitch, pitch)
	}
	if d == 0 {
		return SteepRoof{}, fmt.Errorf("%w: roof depth d shall not be zero", asnzs.ErrDivisionByZero)
	}

	ratio := h / d
	var roof SteepRoof

	if pitch > 45 {
		roof.Upwind = Pair{Min: 0, Max: 0.8 * math.Sin(pitch*math.Pi/180)}
	} else {
		var mins, maxs [3]float64
		for i := range steepRatios {
			mins[i] = mustLinear(pitch, upwindPitches, upwindMinRows[i])
			maxs[i] = mustLinear(pitch, upwindPitches, upwindMaxRows[i])
		}
		roof.Upwind = Pair{
			Min: mustLinear(ratio, steepRatios, mins[:]),
			Max: mustLinear(ratio, steepRatios, maxs[:]),
		}
	}

	x := downwindSteep(b / d)
	var downs [3]float64
	for i, row := range downwindRows {
		downs[i] = mustLinear(pitch, downwindPitches, []float64{row[0], row[1], row[2], x})
	}
	roof.Downwind = mustLinear(ratio, steepRatios, downs[:])
	return roof, nil
}

// downwindSteep is the downwind slope coefficient at 25° and above.
func downwindSteep(bd float64) float64 {
	switch {
	case bd <= 3:
		return -0.6
	case bd < 8:
		return -0.06 * (7 + bd)
	}
	return -0.9
}

// mustLinear interpolates against a table built from package data, which is
// always well formed.
func mustLinear(x float64, xs, ys []float64) float64 {
	v, err := interp.Linear(x, xs, ys)
	if err != nil {
		panic(err)
	}
	return v
}
