package shape

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// Framing describes which surfaces contribute to the action on a member.
type Framing int

const (
	SingleSurface Framing = iota
	RoofFraming
	WallFraming
	RoofAndWalls
	AllSurfaces
)

var framingNames = [...]string{
	SingleSurface: "single surface",
	RoofFraming:   "roof",
	WallFraming:   "walls",
	RoofAndWalls:  "roof and walls",
	AllSurfaces:   "all surfaces",
}

// ParseFraming matches a framing name exactly: "single surface", "roof",
// "walls", "roof and walls" or "all surfaces".
func ParseFraming(name string) (Framing, error) {
	for f, n := range framingNames {
		if n == name {
			return Framing(f), nil
		}
	}
	return 0, fmt.Errorf("%w: framing %q is not one of single surface, roof, walls, roof and walls, all surfaces",
		asnzs.ErrInvalidCategory, name)
}

func (f Framing) String() string {
	if f < SingleSurface || f > AllSurfaces {
		return fmt.Sprintf("Framing(%d)", int(f))
	}
	return framingNames[f]
}

// Combination is a row of Table 5.5: the combination factors applied to
// external (K_c,e) and internal (K_c,i) pressures.
type Combination struct {
	Case     string
	External float64
	Internal float64
}

// InternalPressureThreshold is the |C_p,i| at and above which internal
// pressure is treated as contributing fully to the combination.
const InternalPressureThreshold = 0.4

var (
	combinationDefault = Combination{Case: "default", External: 1.0, Internal: 1.0}

	// indexed by framing, then [|Cpi| >= 0.4, |Cpi| < 0.4]
	combinationCases = map[Framing][2]Combination{
		RoofFraming:  {{"a", 0.9, 0.9}, {"b", 0.9, 1.0}},
		WallFraming:  {{"c", 0.9, 0.9}, {"d", 0.9, 1.0}},
		RoofAndWalls: {{"e", 0.8, 0.8}, {"f", 0.8, 1.0}},
		AllSurfaces:  {{"g", 0.8, 0.8}, {"h", 0.8, 1.0}},
	}
)

// ActionCombinationFactor selects the combination case for a framing type
// and internal pressure coefficient. A single surface takes the default
// factors of 1.0.
func ActionCombinationFactor(f Framing, cpi float64) (Combination, error) {
	if f == SingleSurface {
		return combinationDefault, nil
	}
	cases, ok := combinationCases[f]
	if !ok {
		return Combination{}, fmt.Errorf("%w: framing %s", asnzs.ErrInvalidCategory, f)
	}
	if math.Abs(cpi) >= InternalPressureThreshold {
		return cases[0], nil
	}
	return cases[1], nil
}
