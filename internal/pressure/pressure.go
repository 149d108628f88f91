// Package pressure converts design wind speeds to wind pressures
// (AS/NZS 1170.2:2021 Clause 2.4).
package pressure

import "github.com/alexiusacademia/gowind/internal/windspeed"

// AirDensity is ρ_air in t/m³, giving pressures in kPa for speeds in m/s.
const AirDensity = 1.2e-3

// StaticCdyn is the dynamic response factor for structures that are not
// dynamically wind sensitive.
const StaticCdyn = 1.0

// BasicWindPressure returns 0.5·ρ_air·V² (kPa) for a design wind speed V
// (m/s), before any shape or dynamic factor is applied.
func BasicWindPressure(v float64) float64 {
	return 0.5 * AirDensity * v * v
}

// DesignWindPressure returns p = p_b·C_shp·C_dyn (kPa).
func DesignWindPressure(basic, cshp, cdyn float64) float64 {
	return basic * cshp * cdyn
}

// Directional returns the basic wind pressure on each orthogonal building axis.
func Directional(speeds windspeed.DesignSpeeds) [4]float64 {
	var p [4]float64
	for _, o := range windspeed.Orthogonals {
		p[o] = BasicWindPressure(speeds[o])
	}
	return p
}
