package shape

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Zone is a local pressure factor zone of Table 5.6. Area is the largest
// tributary area (m²) the factor applies to; EdgeFrom and EdgeTo bound the
// distance (m) from the edge, corner or ridge. An EdgeTo of +Inf means the
// zone may be anywhere on the surface.
type Zone struct {
	Label    string
	Kl       float64
	Area     float64
	EdgeFrom float64
	EdgeTo   float64
}

// WallLocalFactors holds the wall zones for a building. SA3 is present only
// when h/min(d, b) exceeds 1.
type WallLocalFactors struct {
	A   float64
	WA1 Zone
	SA1 Zone
	SA2 Zone
	SA3 *Zone
}

// Zones returns the zones that apply.
func (w WallLocalFactors) Zones() []Zone {
	zones := []Zone{w.WA1, w.SA1, w.SA2}
	if w.SA3 != nil {
		zones = append(zones, *w.SA3)
	}
	return zones
}

// RoofLocalFactors holds the roof zones for a building. RA3 is present below
// 10° pitch; RC1 and RC2 replace it from 10°.
type RoofLocalFactors struct {
	A   float64
	RA1 Zone
	RA2 Zone
	RA3 *Zone
	RC1 *Zone
	RC2 *Zone
}

// Zones returns the zones that apply.
func (r RoofLocalFactors) Zones() []Zone {
	zones := []Zone{r.RA1, r.RA2}
	for _, z := range []*Zone{r.RA3, r.RC1, r.RC2} {
		if z != nil {
			zones = append(zones, *z)
		}
	}
	return zones
}

func edgeDimension(h, d, b float64) (float64, float64, error) {
	least := math.Min(d, b)
	if least == 0 {
		return 0, 0, fmt.Errorf("%w: local pressure factors need non-zero depth and breadth (d=%g, b=%g)",
			asnzs.ErrDivisionByZero, d, b)
	}
	return math.Min(math.Min(0.2*b, 0.2*d), h), h / least, nil
}

// LocalPressureFactorsWalls returns the local pressure factor zones for the
// walls. The zone dimension a is the least of 0.2b, 0.2d and h.
func LocalPressureFactorsWalls(h, d, b float64) (WallLocalFactors, error) {
	a, ratio, err := edgeDimension(h, d, b)
	if err != nil {
		return WallLocalFactors{}, err
	}

	w := WallLocalFactors{
		A:   a,
		WA1: Zone{Label: "WA1", Kl: 1.25, Area: a * a, EdgeTo: math.Inf(1)},
		SA1: Zone{Label: "SA1", Kl: 1.5, Area: a * a, EdgeTo: a},
		SA2: Zone{Label: "SA2", Kl: 2.0, Area: 0.25 * a * a, EdgeTo: 0.5 * a},
	}
	if ratio > 1 {
		w.SA3 = &Zone{Label: "SA3", Kl: 3.0, Area: 0.25 * a * a, EdgeTo: 0.5 * a}
	}
	return w, nil
}

// LocalPressureFactorsRoof returns the local pressure factor zones for the
// roof. For low, wide buildings (h/min(d, b) < 0.2) a is taken as 2h.
func LocalPressureFactorsRoof(h, d, b, pitch float64) (RoofLocalFactors, error) {
	a, ratio, err := edgeDimension(h, d, b)
	if err != nil {
		return RoofLocalFactors{}, err
	}
	if ratio < 0.2 {
		a = 2 * h
	}

	r := RoofLocalFactors{
		A:   a,
		RA1: Zone{Label: "RA1", Kl: 1.5, Area: a * a, EdgeTo: a},
		RA2: Zone{Label: "RA2", Kl: 2.0, Area: 0.25 * a * a, EdgeTo: 0.5 * a},
	}
	if pitch < SteepPitch {
		r.RA3 = &Zone{Label: "RA3", Kl: 3.0, Area: 0.25 * a * a, EdgeTo: 0.5 * a}
	} else {
		r.RC1 = &Zone{Label: "RC1", Kl: 1.5, Area: a * a, EdgeTo: a}
		r.RC2 = &Zone{Label: "RC2", Kl: 2.0, Area: 0.25 * a * a, EdgeTo: 0.5 * a}
	}
	return r, nil
}

// MinimumLocalPressure is the most negative K_l·C_p,e permitted.
const MinimumLocalPressure = -3.0

// NegativeLimit returns K_l·C_p,e limited to no less than -3.0.
func NegativeLimit(kl, cpe float64) float64 {
	return math.Max(kl*cpe, MinimumLocalPressure)
}
