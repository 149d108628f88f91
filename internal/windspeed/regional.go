package windspeed

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// ServiceabilityARI is the recurrence interval used for serviceability
// limit state wind speeds.
const ServiceabilityARI = 25

// regionalCoefficients holds a and b in V_R = a - b*R^-0.1 (Table 3.1(A)).
type regionalCoefficients struct {
	a, b float64
}

func coefficientsFor(region asnzs.Region) (regionalCoefficients, error) {
	switch {
	case region.IsNonCyclonicA():
		return regionalCoefficients{67, 41}, nil
	case region == asnzs.RegionB1 || region == asnzs.RegionB2:
		return regionalCoefficients{106, 92}, nil
	case region == asnzs.RegionC:
		return regionalCoefficients{122, 104}, nil
	case region == asnzs.RegionD:
		return regionalCoefficients{156, 142}, nil
	case region == asnzs.RegionNZ1 || region == asnzs.RegionNZ2:
		return regionalCoefficients{61, 30}, nil
	case region == asnzs.RegionNZ3:
		return regionalCoefficients{71, 34}, nil
	case region == asnzs.RegionNZ4:
		return regionalCoefficients{63, 25}, nil
	}
	return regionalCoefficients{}, fmt.Errorf("%w: wind region %s", asnzs.ErrInvalidCategory, region)
}

// RegionalWindSpeed returns V_R (m/s) for the region and average recurrence
// interval R (years), rounded to the nearest whole m/s (ties to even).
func RegionalWindSpeed(region asnzs.Region, R float64) (float64, error) {
	c, err := coefficientsFor(region)
	if err != nil {
		return 0, err
	}
	if R <= 0 || math.IsNaN(R) {
		return 0, fmt.Errorf("%w: average recurrence interval must be positive, got %g", asnzs.ErrOutOfRange, R)
	}
	v := c.a - c.b*math.Pow(R, -0.1)
	return math.RoundToEven(v), nil
}

// RegionalWindSpeedSLS returns the serviceability regional wind speed,
// V_R at R = 25 years.
func RegionalWindSpeedSLS(region asnzs.Region) (float64, error) {
	return RegionalWindSpeed(region, ServiceabilityARI)
}
