package site

import (
	"encoding/json"
	"os"

	"github.com/alexiusacademia/gowind/internal/asnzs"
	"github.com/alexiusacademia/gowind/internal/pressure"
	"github.com/alexiusacademia/gowind/internal/shape"
	"github.com/alexiusacademia/gowind/internal/windspeed"
)

// LoadFromFile loads a site definition from a JSON file.
func LoadFromFile(filepath string) (*Site, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var site Site
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, err
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	return &site, nil
}

// Result holds the wind speeds, pressures and shape factors for a site.
type Result struct {
	Site *Site

	Region   asnzs.Region
	Terrain  asnzs.TerrainCategory
	Cyclonic bool

	// Regional wind speed
	ARI  float64 // years
	VR   float64 // m/s
	VRsl float64 // serviceability, R = 25 years (m/s)

	// Multipliers
	Mc         float64
	Md         windspeed.Directional
	MdCladding windspeed.Directional
	Mzcat      float64
	Ms         float64
	Mt         float64

	// Site and design wind speeds (m/s)
	Vsit         windspeed.Directional
	VsitCladding windspeed.Directional
	Profile      []windspeed.ProfilePoint
	Vdes         windspeed.DesignSpeeds
	VdesCladding windspeed.DesignSpeeds

	// Basic wind pressure on each building axis (kPa)
	Pressure         [4]float64
	PressureCladding [4]float64
	Cdyn             float64

	// Terrain/height profile, when the wind speed varies with height
	HeightProfile []windspeed.HeightMultiplier

	// Shape factors, when a building is described
	Shape *ShapeResult
}

// ShapeResult holds the shape factors for the described building and the
// design pressures on its main surfaces for the governing axis.
type ShapeResult struct {
	Windward    float64
	Leeward     float64
	SideWalls   [4]shape.WallZone
	ShallowRoof *[5]shape.RoofZone
	SteepRoof   *shape.SteepRoof
	WallLocal   shape.WallLocalFactors
	RoofLocal   shape.RoofLocalFactors
	Combination shape.Combination

	// Design pressures (kPa) on the governing axis, C_shp = C_p,e·K_c,e
	WindwardPressure float64
	LeewardPressure  float64
	InternalPressure float64
}

// Analyze computes the design wind speeds and pressures for the site.
func (s *Site) Analyze() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c, err := s.categories()
	if err != nil {
		return nil, err
	}

	r := &Result{
		Site:     s,
		Region:   c.region,
		Terrain:  c.terrain,
		Cyclonic: s.Cyclonic || c.region == asnzs.RegionC || c.region == asnzs.RegionD,
		Cdyn:     s.Cdyn,
	}
	if r.Cdyn == 0 {
		r.Cdyn = pressure.StaticCdyn
	}

	// Step 1: Regional wind speed
	if r.ARI, err = asnzs.AverageRecurrenceInterval(c.life, c.level, r.Cyclonic); err != nil {
		return nil, err
	}
	if r.VR, err = windspeed.RegionalWindSpeed(c.region, r.ARI); err != nil {
		return nil, err
	}
	if r.VRsl, err = windspeed.RegionalWindSpeedSLS(c.region); err != nil {
		return nil, err
	}

	// Step 2: Multipliers
	r.Mc = windspeed.ClimateChangeMultiplier(c.region)
	if r.Md, r.MdCladding, err = windspeed.WindDirectionMultiplier(c.region, s.PolygonCrossSection); err != nil {
		return nil, err
	}
	if r.Mzcat, err = windspeed.TerrainHeightMultiplier(c.terrain, c.region, s.Height); err != nil {
		return nil, err
	}

	r.Ms = 1.0
	if sh := s.Shielding; sh != nil {
		if r.Ms, err = windspeed.ShieldingMultiplier(s.Height, sh.Hs, sh.Bs, sh.Ns); err != nil {
			return nil, err
		}
	}

	r.Mt = 1.0
	if t := s.Topography; t != nil {
		r.Mt, err = windspeed.TopographicMultiplier(c.region, windspeed.Topography{
			Z:          s.Height,
			HillHeight: t.HillHeight,
			Lu:         t.Lu,
			X:          t.X,
			Escarpment: t.Escarpment,
			Elevation:  t.Elevation,
		})
		if err != nil {
			return nil, err
		}
	}

	// Step 3: Site and design wind speeds
	r.Vsit = windspeed.SiteWindSpeed(r.VR, r.Mc, r.Md, r.Mzcat, r.Ms, r.Mt)
	r.VsitCladding = windspeed.SiteWindSpeed(r.VR, r.Mc, r.MdCladding, r.Mzcat, r.Ms, r.Mt)
	r.Profile = windspeed.DirectionalProfile(r.Vsit)
	if r.Vdes, err = windspeed.DesignWindSpeed(s.Orientation, r.Vsit); err != nil {
		return nil, err
	}
	if r.VdesCladding, err = windspeed.DesignWindSpeed(s.Orientation, r.VsitCladding); err != nil {
		return nil, err
	}

	// Step 4: Basic pressures
	r.Pressure = pressure.Directional(r.Vdes)
	r.PressureCladding = pressure.Directional(r.VdesCladding)

	if b := s.Building; b != nil {
		if b.VaryWithHeight {
			if r.HeightProfile, err = windspeed.TerrainHeightProfile(c.terrain, c.region); err != nil {
				return nil, err
			}
		}
		if r.Shape, err = s.shapeFactors(c, r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (s *Site) shapeFactors(c categories, r *Result) (*ShapeResult, error) {
	b := s.Building
	h, d, br := s.Height, b.Depth, b.Breadth
	out := &ShapeResult{
		Windward:  shape.WindwardWall(h, b.VaryWithHeight),
		SideWalls: shape.SideWalls(h, d),
	}

	var err error
	if out.Leeward, err = shape.LeewardWall(d, br, b.RoofPitch); err != nil {
		return nil, err
	}

	if b.RoofPitch < shape.SteepPitch {
		zones, err := shape.RoofShallow(h, d, b.RoofPitch)
		if err != nil {
			return nil, err
		}
		out.ShallowRoof = &zones
	} else {
		roof, err := shape.RoofSteep(h, d, br, b.RoofPitch)
		if err != nil {
			return nil, err
		}
		out.SteepRoof = &roof
	}

	if out.WallLocal, err = shape.LocalPressureFactorsWalls(h, d, br); err != nil {
		return nil, err
	}
	if out.RoofLocal, err = shape.LocalPressureFactorsRoof(h, d, br, b.RoofPitch); err != nil {
		return nil, err
	}
	if out.Combination, err = shape.ActionCombinationFactor(c.framing, b.Cpi); err != nil {
		return nil, err
	}

	pb := r.Pressure[governingAxis(r.Vdes)]
	kce := out.Combination.External
	out.WindwardPressure = pressure.DesignWindPressure(pb, shape.ExternalShapeFactor(out.Windward, 1, kce, 1, 1), r.Cdyn)
	out.LeewardPressure = pressure.DesignWindPressure(pb, shape.ExternalShapeFactor(out.Leeward, 1, kce, 1, 1), r.Cdyn)
	out.InternalPressure = pressure.DesignWindPressure(pb, shape.InternalShapeFactor(b.Cpi, out.Combination.Internal), r.Cdyn)
	return out, nil
}

// governingAxis returns the building axis with the highest design speed.
func governingAxis(v windspeed.DesignSpeeds) windspeed.Orthogonal {
	best := windspeed.Deg0
	for _, o := range windspeed.Orthogonals[1:] {
		if v[o] > v[best] {
			best = o
		}
	}
	return best
}
