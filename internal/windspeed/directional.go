package windspeed

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Directional holds one value per cardinal direction, indexed by
// asnzs.Direction in compass order (N, NE, E, SE, S, SW, W, NW).
type Directional [asnzs.NumDirections]float64

// Uniform returns a series with v in every direction.
func Uniform(v float64) Directional {
	var d Directional
	for i := range d {
		d[i] = v
	}
	return d
}

// At returns the value for direction dir.
func (d Directional) At(dir asnzs.Direction) float64 {
	return d[dir]
}

// Max returns the largest value in the series and its direction.
func (d Directional) Max() (float64, asnzs.Direction) {
	best, at := d[0], asnzs.North
	for _, dir := range asnzs.Directions[1:] {
		if d[dir] > best {
			best, at = d[dir], dir
		}
	}
	return best, at
}

// Map returns the series keyed by compass code.
func (d Directional) Map() map[string]float64 {
	m := make(map[string]float64, asnzs.NumDirections)
	for _, dir := range asnzs.Directions {
		m[dir.String()] = d[dir]
	}
	return m
}

// DirectionalFromMap builds a series from compass-keyed values. All eight
// directions must be present.
func DirectionalFromMap(m map[string]float64) (Directional, error) {
	var d Directional
	for _, dir := range asnzs.Directions {
		v, ok := m[dir.String()]
		if !ok {
			return d, fmt.Errorf("%w: direction %s missing from series", asnzs.ErrInvalidCategory, dir)
		}
		d[dir] = v
	}
	if len(m) != asnzs.NumDirections {
		return d, fmt.Errorf("%w: series has %d entries, want %d", asnzs.ErrInvalidCategory, len(m), asnzs.NumDirections)
	}
	return d, nil
}

// Wind direction multipliers M_d, Table 3.2(A), in compass order.
var directionTable = map[asnzs.Region]Directional{
	asnzs.RegionA0: {0.90, 0.85, 0.85, 0.90, 0.90, 0.95, 1.00, 0.95},
	asnzs.RegionA1: {0.90, 0.85, 0.85, 0.80, 0.80, 0.95, 1.00, 0.95},
	asnzs.RegionA2: {0.85, 0.75, 0.85, 0.95, 0.95, 0.95, 1.00, 0.95},
	asnzs.RegionA3: {0.90, 0.75, 0.75, 0.90, 0.90, 0.95, 1.00, 0.95},
	asnzs.RegionA4: {0.85, 0.75, 0.75, 0.80, 0.80, 0.90, 1.00, 1.00},
	asnzs.RegionA5: {0.95, 0.80, 0.80, 0.80, 0.80, 0.95, 1.00, 0.95},
	asnzs.RegionB1: {0.75, 0.75, 0.85, 0.90, 0.95, 0.95, 0.95, 0.90},
	asnzs.RegionB2: {0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90},
	asnzs.RegionC:  {0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90},
	asnzs.RegionD:  {0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90},
}

// WindDirectionMultiplier returns M_d for the primary structure and for
// cladding and its immediate supports. Chimneys, tanks and poles with a
// circular or polygonal cross-section (polygonCrossSection) take 1.0 in every
// direction. In regions B2, C and D cladding uses 1.0 in every direction.
func WindDirectionMultiplier(region asnzs.Region, polygonCrossSection bool) (md, mdCladding Directional, err error) {
	row, ok := directionTable[region]
	if !ok {
		return md, mdCladding, fmt.Errorf("%w: no wind direction multipliers for region %s", asnzs.ErrInvalidCategory, region)
	}

	md = row
	if polygonCrossSection {
		md = Uniform(1.0)
	}

	mdCladding = md
	if region.IsCyclonicOrB2() {
		mdCladding = Uniform(1.0)
	}
	return md, mdCladding, nil
}

// ClimateChangeMultiplier returns M_c (Clause 3.4): 1.05 in regions B2, C
// and D, otherwise 1.0.
func ClimateChangeMultiplier(region asnzs.Region) float64 {
	if region.IsCyclonicOrB2() {
		return 1.05
	}
	return 1.0
}
