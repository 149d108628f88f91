package windspeed

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/interp"
)

// MinimumDesignSpeed is the lower limit on V_des,θ for ultimate limit states (m/s).
const MinimumDesignSpeed = 30.0

const (
	profileStart = -45 // degrees
	profileEnd   = 360 // exclusive
	profileStep  = 5
)

// SiteWindSpeed returns V_sit,β for each cardinal direction (Clause 2.2):
//
//	V_sit,β = V_R * M_c * M_d * (M_z,cat * M_s * M_t)
func SiteWindSpeed(vr, mc float64, md Directional, mzcat, ms, mt float64) Directional {
	var v Directional
	for _, dir := range asnzs.Directions {
		v[dir] = vr * mc * md[dir] * (mzcat * ms * mt)
	}
	return v
}

// Orthogonal is one of the four building axes, measured from the
// building's 0° axis.
type Orthogonal int

const (
	Deg0 Orthogonal = iota
	Deg90
	Deg180
	Deg270
)

// Orthogonals lists the four building axes.
var Orthogonals = [4]Orthogonal{Deg0, Deg90, Deg180, Deg270}

// Angle returns the axis angle in degrees relative to the building.
func (o Orthogonal) Angle() float64 {
	return float64(o) * 90
}

// String returns the axis key, e.g. "90 Deg".
func (o Orthogonal) String() string {
	return fmt.Sprintf("%d Deg", int(o)*90)
}

// DesignSpeeds holds V_des,θ (m/s) for the four orthogonal building axes.
type DesignSpeeds [4]float64

// Map returns the speeds keyed "0 Deg", "90 Deg", "180 Deg", "270 Deg".
func (s DesignSpeeds) Map() map[string]float64 {
	m := make(map[string]float64, len(s))
	for _, o := range Orthogonals {
		m[o.String()] = s[o]
	}
	return m
}

// Max returns the governing design speed over all four axes.
func (s DesignSpeeds) Max() float64 {
	return math.Max(math.Max(s[0], s[1]), math.Max(s[2], s[3]))
}

// ProfilePoint is the site wind speed interpolated at a bearing.
type ProfilePoint struct {
	Angle float64 // degrees clockwise from true North
	Speed float64 // m/s, rounded to 2 decimals
}

// DirectionalProfile interpolates the site wind speeds at 5° intervals from
// -45° to 355°. Each 45° sector is interpolated linearly between its bounding
// cardinal directions; negative bearings and bearings from 315° are taken
// between NW and N.
func DirectionalProfile(vsit Directional) []ProfilePoint {
	profile := make([]ProfilePoint, 0, (profileEnd-profileStart)/profileStep)
	for angle := profileStart; angle < profileEnd; angle += profileStep {
		a := float64(angle)
		profile = append(profile, ProfilePoint{
			Angle: a,
			Speed: roundTo(sectorSpeed(vsit, a), 2),
		})
	}
	return profile
}

// sectorSpeed interpolates between the cardinal directions either side of a.
func sectorSpeed(vsit Directional, a float64) float64 {
	if a < 0 {
		return interp.Between(a, -45, 0, vsit[asnzs.NorthWest], vsit[asnzs.North])
	}
	sector := int(a / 45)
	lo := asnzs.Direction(sector)
	hi := asnzs.Direction((sector + 1) % asnzs.NumDirections)
	x0 := float64(sector) * 45
	return interp.Between(a, x0, x0+45, vsit[lo], vsit[hi])
}

// DesignWindSpeed resolves the site wind speeds onto the building axes
// (Clause 2.3). orientation is the bearing of the building's 0° axis from
// true North, between 0 and 90 degrees. For each axis the design speed is the
// largest profile speed within ±45° of the axis, and not less than 30 m/s.
func DesignWindSpeed(orientation float64, vsit Directional) (DesignSpeeds, error) {
	var speeds DesignSpeeds
	if orientation < 0 || orientation > 90 || math.IsNaN(orientation) {
		return speeds, fmt.Errorf("%w: building orientation shall be between 0 and 90 degrees, not %g degrees",
			asnzs.ErrOutOfRange, orientation)
	}

	profile := DirectionalProfile(vsit)
	for _, o := range Orthogonals {
		axis := orientation + o.Angle()
		lower, upper := axis-45, axis+45

		best := math.Inf(-1)
		for _, p := range profile {
			if p.Angle >= lower && p.Angle <= upper && p.Speed > best {
				best = p.Speed
			}
		}
		speeds[o] = math.Max(best, MinimumDesignSpeed)
	}
	return speeds, nil
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}
