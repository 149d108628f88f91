package site

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/shape"
)

// Site describes a structure and its location. Categorical fields hold the
// codes used in the Standard, e.g. "C", "TC2.5", "50 Years".
type Site struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Region          string `json:"region"`
	TerrainCategory string `json:"terrain_category"`
	DesignLife      string `json:"design_life"`
	ImportanceLevel int    `json:"importance_level"`
	// Cyclonic forces the cyclonic recurrence interval. Regions C and D are
	// always treated as cyclonic.
	Cyclonic bool `json:"cyclonic,omitempty"`

	Height              float64 `json:"height"`      // average roof height (m)
	Orientation         float64 `json:"orientation"` // bearing of the 0° building axis (degrees)
	PolygonCrossSection bool    `json:"polygon_cross_section,omitempty"`

	Shielding  *Shielding  `json:"shielding,omitempty"`
	Topography *Topography `json:"topography,omitempty"`
	Building   *Building   `json:"building,omitempty"`

	// Cdyn is the dynamic response factor; zero means 1.0.
	Cdyn float64 `json:"c_dyn,omitempty"`
}

// Shielding describes the upwind buildings providing shelter.
type Shielding struct {
	Hs float64 `json:"h_s"` // average roof height of shielding buildings (m)
	Bs float64 `json:"b_s"` // average breadth of shielding buildings (m)
	Ns float64 `json:"n_s"` // number of shielding buildings
}

// Topography describes a hill, ridge or escarpment near the site.
type Topography struct {
	HillHeight float64 `json:"hill_height"` // m
	Lu         float64 `json:"l_u"`         // m
	X          float64 `json:"x"`           // distance from crest (m)
	Escarpment bool    `json:"escarpment,omitempty"`
	Elevation  float64 `json:"elevation,omitempty"` // m above sea level
}

// Building is the enclosed rectangular building used for shape factors.
type Building struct {
	Depth          float64 `json:"depth"`      // d, parallel to the wind (m)
	Breadth        float64 `json:"breadth"`    // b, normal to the wind (m)
	RoofPitch      float64 `json:"roof_pitch"` // degrees
	VaryWithHeight bool    `json:"vary_with_height,omitempty"`
	Cpi            float64 `json:"cpi,omitempty"`
	Framing        string  `json:"framing,omitempty"` // defaults to "single surface"
}

// categories holds the parsed categorical inputs of a site.
type categories struct {
	region  asnzs.Region
	terrain asnzs.TerrainCategory
	life    asnzs.DesignLife
	level   asnzs.ImportanceLevel
	framing shape.Framing
}

func (s *Site) categories() (categories, error) {
	var c categories
	var err error

	if c.region, err = asnzs.ParseRegion(s.Region); err != nil {
		return c, &ValidationError{msg: err.Error(), err: err}
	}
	if c.terrain, err = asnzs.ParseTerrainCategory(s.TerrainCategory); err != nil {
		return c, &ValidationError{msg: err.Error(), err: err}
	}
	if c.life, err = asnzs.ParseDesignLife(s.DesignLife); err != nil {
		return c, &ValidationError{msg: err.Error(), err: err}
	}
	c.level = asnzs.ImportanceLevel(s.ImportanceLevel)
	if !c.level.Valid() {
		return c, &ValidationError{msg: fmt.Sprintf("importance level must be 1 to 4, got %d", s.ImportanceLevel), err: asnzs.ErrInvalidCategory}
	}

	c.framing = shape.SingleSurface
	if s.Building != nil && s.Building.Framing != "" {
		if c.framing, err = shape.ParseFraming(s.Building.Framing); err != nil {
			return c, &ValidationError{msg: err.Error(), err: err}
		}
	}
	return c, nil
}

// Validate checks that the site definition is complete and consistent.
func (s *Site) Validate() error {
	if _, err := s.categories(); err != nil {
		return err
	}
	if s.Height <= 0 {
		return &ValidationError{msg: "height must be positive"}
	}
	if s.Orientation < 0 || s.Orientation > 90 {
		return &ValidationError{msg: fmt.Sprintf("orientation must be between 0 and 90 degrees, got %g", s.Orientation), err: asnzs.ErrOutOfRange}
	}
	if s.Cdyn < 0 {
		return &ValidationError{msg: "c_dyn must not be negative"}
	}
	if sh := s.Shielding; sh != nil && (sh.Hs <= 0 || sh.Bs <= 0 || sh.Ns <= 0) {
		return &ValidationError{msg: "shielding h_s, b_s and n_s must be positive"}
	}
	if t := s.Topography; t != nil && t.Lu <= 0 {
		return &ValidationError{msg: "topography l_u must be positive"}
	}
	if b := s.Building; b != nil {
		if b.Depth <= 0 || b.Breadth <= 0 {
			return &ValidationError{msg: "building depth and breadth must be positive"}
		}
		if b.RoofPitch < 0 || b.RoofPitch >= 90 {
			return &ValidationError{msg: fmt.Sprintf("roof pitch must be between 0 and 90 degrees, got %g", b.RoofPitch)}
		}
	}
	return nil
}

// ValidationError represents a site validation error.
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap returns the category error behind the failure, if any.
func (e *ValidationError) Unwrap() error {
	return e.err
}
