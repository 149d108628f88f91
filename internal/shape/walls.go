// Package shape provides the aerodynamic shape factor tables of
// AS/NZS 1170.2:2021 Section 5 for enclosed rectangular buildings: external
// pressure coefficients for walls and roofs, area reduction, action
// combination and local pressure factors.
//
// Geometry follows the Standard: h is the average roof height, d the building
// depth parallel to the wind, b the breadth normal to the wind, and pitch the
// roof pitch α in degrees.
package shape

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/interp"
)

// Pair is a minimum and maximum C_p,e. Both values are considered when
// designing for the most severe load case.
type Pair struct {
	Min float64
	Max float64
}

// WallZone is a band of a side wall measured from the windward edge (m).
type WallZone struct {
	From float64
	To   float64
	Cpe  float64
}

// Leeward wall, Table 5.2(B).
var (
	leewardFlat     = interp.MustFit([]float64{1, 2, 4}, []float64{-0.5, -0.3, -0.2})
	leewardPitched  = interp.MustFit([]float64{10, 15, 20}, []float64{-0.3, -0.3, -0.4})
	leewardSteep    = interp.MustFit([]float64{0.1, 0.3}, []float64{-0.75, -0.5})
	sideWallFactors = [4]float64{-0.65, -0.5, -0.3, -0.2}
)

// WindwardWall returns C_p,e for the windward wall (Table 5.2(A)). Buildings
// under 25 m use 0.7 unless the wind speed is taken to vary with height.
func WindwardWall(h float64, varyWithHeight bool) float64 {
	if h < 25 && !varyWithHeight {
		return 0.7
	}
	return 0.8
}

// LeewardWall returns C_p,e for the leeward wall with wind normal to the
// ridge (Table 5.2(B)). Below 10° the coefficient depends on d/b, from 10° to
// 20° on pitch, and from 25° on b/d; between 20° and 25° it is interpolated
// on pitch from -0.4 to the 25° value.
func LeewardWall(d, b, pitch float64) (float64, error) {
	if d == 0 || b == 0 {
		return 0, fmt.Errorf("%w: leeward wall needs non-zero depth and breadth (d=%g, b=%g)",
			asnzs.ErrDivisionByZero, d, b)
	}

	switch {
	case pitch < 10:
		return leewardFlat.At(d / b), nil
	case pitch < 20:
		return leewardPitched.At(pitch), nil
	case pitch >= 25:
		return leewardSteep.At(b / d), nil
	}
	return interp.Between(pitch, 20, 25, -0.4, leewardSteep.At(b/d)), nil
}

// SideWalls returns the side wall bands of Table 5.2(C), measured from the
// windward edge in multiples of h. The last band runs to the leeward edge, or
// to 3h if the building is shallower than that.
func SideWalls(h, d float64) [4]WallZone {
	var zones [4]WallZone
	for i := range zones {
		zones[i] = WallZone{
			From: float64(i) * h,
			To:   float64(i+1) * h,
			Cpe:  sideWallFactors[i],
		}
	}
	zones[3].To = max(3*h, d)
	return zones
}
