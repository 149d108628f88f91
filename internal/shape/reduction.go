package shape

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/interp"
)

// Surface selects an area reduction curve.
type Surface int

const (
	SurfaceRoof Surface = iota
	SurfaceSideWalls
	SurfaceWindward
	SurfaceLeeward
)

var surfaceNames = [...]string{
	SurfaceRoof:      "roof",
	SurfaceSideWalls: "side walls",
	SurfaceWindward:  "windward wall",
	SurfaceLeeward:   "leeward wall",
}

func (s Surface) String() string {
	if s < SurfaceRoof || s > SurfaceLeeward {
		return fmt.Sprintf("Surface(%d)", int(s))
	}
	return surfaceNames[s]
}

// ParseSurface matches a surface name ignoring case. "Side Walls",
// "side wall", "Windward" and "leeward walls" are all accepted.
func ParseSurface(name string) (Surface, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "s")
	key = strings.TrimSuffix(key, " wall")
	switch key {
	case "roof":
		return SurfaceRoof, nil
	case "side":
		return SurfaceSideWalls, nil
	case "windward":
		return SurfaceWindward, nil
	case "leeward":
		return SurfaceLeeward, nil
	}
	return 0, fmt.Errorf("%w: surface %q is not one of roof, side walls, windward wall, leeward wall",
		asnzs.ErrInvalidCategory, name)
}

// Area reduction factors K_a, Table 5.4.
var (
	reductionAreas   = []float64{10, 25, 100}
	reductionReduced = interp.MustFit(reductionAreas, []float64{1.0, 0.9, 0.8})
	reductionNone    = interp.MustFit(reductionAreas, []float64{1.0, 1.0, 1.0})
)

// TributaryArea returns the area (m²) carried by a member of the given length
// and load width.
func TributaryArea(length, width float64) float64 {
	return length * width
}

// AreaReductionFactor returns K_a for a tributary area (m²). Roofs and side
// walls reduce from 1.0 at 10 m² to 0.8 at 100 m²; windward and leeward walls
// are not reduced.
func AreaReductionFactor(area float64, surface Surface) (float64, error) {
	switch surface {
	case SurfaceRoof, SurfaceSideWalls:
		return reductionReduced.At(area), nil
	case SurfaceWindward, SurfaceLeeward:
		return reductionNone.At(area), nil
	}
	return 0, fmt.Errorf("%w: surface %s", asnzs.ErrInvalidCategory, surface)
}
