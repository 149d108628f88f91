package windspeed

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/interp"
)

// Terrain/height multipliers M_z,cat, Table 4.1.
var terrainHeights = []float64{3, 5, 10, 15, 20, 30, 40, 50, 75, 100, 150, 200}

var terrainCurves = map[asnzs.TerrainCategory][]float64{
	asnzs.TC1:   {0.97, 1.01, 1.08, 1.12, 1.14, 1.18, 1.21, 1.23, 1.27, 1.31, 1.36, 1.39},
	asnzs.TC2:   {0.91, 0.91, 1.00, 1.05, 1.08, 1.12, 1.16, 1.19, 1.22, 1.24, 1.27, 1.29},
	asnzs.TC2_5: {0.87, 0.87, 0.92, 0.97, 1.01, 1.06, 1.10, 1.13, 1.17, 1.20, 1.24, 1.27},
	asnzs.TC3:   {0.83, 0.83, 0.83, 0.89, 0.94, 1.00, 1.04, 1.07, 1.12, 1.16, 1.21, 1.24},
	asnzs.TC4:   {0.75, 0.75, 0.75, 0.75, 0.75, 0.80, 0.85, 0.90, 0.98, 1.03, 1.11, 1.16},
}

// Region A0 uses a single curve regardless of terrain category.
var terrainCurveA0 = []float64{0.91, 0.91, 1.00, 1.05, 1.08, 1.12, 1.16, 1.18, 1.22, 1.24, 1.24, 1.24}

var (
	terrainTables  = map[asnzs.TerrainCategory]interp.Table{}
	terrainTableA0 = interp.MustFit(terrainHeights, terrainCurveA0)
	shieldingTable = interp.MustFit([]float64{1.5, 3.0, 6.0, 12.0}, []float64{0.7, 0.8, 0.9, 1.0})
)

func init() {
	for tc, curve := range terrainCurves {
		terrainTables[tc] = interp.MustFit(terrainHeights, curve)
	}
}

func terrainCurve(tc asnzs.TerrainCategory, region asnzs.Region) ([]float64, interp.Table, error) {
	if region == asnzs.RegionA0 {
		return terrainCurveA0, terrainTableA0, nil
	}
	tbl, ok := terrainTables[tc]
	if !ok {
		return nil, interp.Table{}, fmt.Errorf("%w: terrain category %s", asnzs.ErrInvalidCategory, tc)
	}
	return terrainCurves[tc], tbl, nil
}

// TerrainHeightMultiplier returns M_z,cat at the given height (m) by linear
// interpolation of Table 4.1. Heights below 3 m or above 200 m take the end
// values. Region A0 uses its own curve for every terrain category.
func TerrainHeightMultiplier(tc asnzs.TerrainCategory, region asnzs.Region, height float64) (float64, error) {
	_, tbl, err := terrainCurve(tc, region)
	if err != nil {
		return 0, err
	}
	return tbl.At(height), nil
}

// HeightMultiplier is one row of a terrain/height profile.
type HeightMultiplier struct {
	Height float64 // m
	Mzcat  float64
}

// TerrainHeightProfile returns the tabulated M_z,cat curve used for a
// category and region, for structures where the wind speed varies with height.
func TerrainHeightProfile(tc asnzs.TerrainCategory, region asnzs.Region) ([]HeightMultiplier, error) {
	curve, _, err := terrainCurve(tc, region)
	if err != nil {
		return nil, err
	}
	profile := make([]HeightMultiplier, len(terrainHeights))
	for i, z := range terrainHeights {
		profile[i] = HeightMultiplier{Height: z, Mzcat: curve[i]}
	}
	return profile, nil
}

// ShieldingParameter returns s = l_s / sqrt(h_s*b_s) with l_s = h(10/n_s + 5).
//
//	height  average roof height of the shielded structure (m)
//	hs      average roof height of the shielding buildings (m)
//	bs      average breadth of the shielding buildings normal to the wind (m)
//	ns      number of upwind shielding buildings in the 45° sector of radius 20h
func ShieldingParameter(height, hs, bs, ns float64) (float64, error) {
	if hs == 0 || bs == 0 || ns == 0 {
		return 0, fmt.Errorf("%w: shielding parameters h_s, b_s and n_s shall not be zero (h_s=%g, b_s=%g, n_s=%g)",
			asnzs.ErrDivisionByZero, hs, bs, ns)
	}
	ls := height * (10/ns + 5)
	return ls / math.Sqrt(hs*bs), nil
}

// ShieldingMultiplier returns M_s (Clause 4.3). Structures taller than 25 m
// are not shielded.
func ShieldingMultiplier(height, hs, bs, ns float64) (float64, error) {
	s, err := ShieldingParameter(height, hs, bs, ns)
	if err != nil {
		return 0, err
	}

	switch {
	case s >= 12.0 || height > 25:
		return 1.0, nil
	case s <= 1.5:
		return 0.7, nil
	}
	return shieldingTable.At(s), nil
}

// Topography describes the hill, ridge or escarpment near a site (Clause 4.4).
type Topography struct {
	Z          float64 // reference height of the structure above local ground (m)
	HillHeight float64 // H, height of the hill, ridge or escarpment (m)
	Lu         float64 // horizontal distance from crest to half height, upwind (m)
	X          float64 // horizontal distance from the structure to the crest (m)
	Escarpment bool
	Elevation  float64 // E, site elevation above mean sea level (m)
}

// LeeMultiplier is M_lee. Lee zones only occur in New Zealand and are not
// evaluated, so the multiplier is always 1.0.
const LeeMultiplier = 1.0

// HillShapeMultiplier returns M_h (Clause 4.4.2).
func HillShapeMultiplier(t Topography) (float64, error) {
	if t.Lu == 0 {
		return 0, fmt.Errorf("%w: L_u shall not be zero", asnzs.ErrDivisionByZero)
	}

	slope := t.HillHeight / (2 * t.Lu)
	l1 := math.Max(0.36*t.Lu, 0.4*t.HillHeight)
	l2 := 4 * l1
	if t.Escarpment {
		l2 = 10 * l1
	}

	switch {
	case slope < 0.05:
		return 1.0, nil
	case slope > 0.45 && t.X >= 0 && t.X <= t.HillHeight/4:
		return 1 + 0.71*(1-math.Abs(t.X)/l2), nil
	}
	return 1 + (t.HillHeight/(3.5*(t.Z+l1)))*(1-math.Abs(t.X)/l2), nil
}

// TopographicMultiplier returns M_t (Clause 4.4.1). In region A0 the hill
// shape effect is halved; in region A4 sites at or above 500 m elevation are
// increased by 0.015% per metre.
func TopographicMultiplier(region asnzs.Region, t Topography) (float64, error) {
	if !region.Valid() {
		return 0, fmt.Errorf("%w: wind region %s", asnzs.ErrInvalidCategory, region)
	}
	mh, err := HillShapeMultiplier(t)
	if err != nil {
		return 0, err
	}

	switch {
	case region == asnzs.RegionA0:
		return 0.5 + 0.5*mh, nil
	case region == asnzs.RegionA4 && t.Elevation >= 500:
		return mh * LeeMultiplier * (1 + 0.00015*t.Elevation), nil
	}
	return math.Max(mh, LeeMultiplier), nil
}
