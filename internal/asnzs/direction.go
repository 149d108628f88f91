package asnzs

import "fmt"

// Direction is one of the eight cardinal wind directions, in compass order.
// The ordering is significant: adjacent values are 45° apart and are
// interpolated between when resolving design wind speeds.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the size of every directional series.
const NumDirections = 8

var directionCodes = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Directions lists the compass directions from N clockwise to NW.
var Directions = [NumDirections]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// ParseDirection converts a compass code such as "SW".
func ParseDirection(code string) (Direction, error) {
	for d, c := range directionCodes {
		if c == code {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q is not one of N, NE, E, SE, S, SW, W, NW", ErrInvalidCategory, code)
}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionCodes[d]
}

// Bearing returns the direction in degrees clockwise from true North.
func (d Direction) Bearing() float64 {
	return float64(d) * 45
}
