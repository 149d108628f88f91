package asnzs

import "fmt"

// Region is a wind region from AS/NZS 1170.2:2021 Figure 3.1(A) and 3.1(B).
type Region int

const (
	RegionA0 Region = iota
	RegionA1
	RegionA2
	RegionA3
	RegionA4
	RegionA5
	RegionB1
	RegionB2
	RegionC
	RegionD
	RegionNZ1
	RegionNZ2
	RegionNZ3
	RegionNZ4
)

var regionCodes = [...]string{
	RegionA0:  "A0",
	RegionA1:  "A1",
	RegionA2:  "A2",
	RegionA3:  "A3",
	RegionA4:  "A4",
	RegionA5:  "A5",
	RegionB1:  "B1",
	RegionB2:  "B2",
	RegionC:   "C",
	RegionD:   "D",
	RegionNZ1: "NZ1",
	RegionNZ2: "NZ2",
	RegionNZ3: "NZ3",
	RegionNZ4: "NZ4",
}

// Regions lists every wind region in table order.
var Regions = []Region{
	RegionA0, RegionA1, RegionA2, RegionA3, RegionA4, RegionA5,
	RegionB1, RegionB2, RegionC, RegionD,
	RegionNZ1, RegionNZ2, RegionNZ3, RegionNZ4,
}

// AustralianRegions are the regions covered by Table 3.2(A).
var AustralianRegions = Regions[:10]

// ParseRegion converts a region code such as "A2" or "NZ3".
// Matching is case-sensitive.
func ParseRegion(code string) (Region, error) {
	for r, c := range regionCodes {
		if c == code {
			return Region(r), nil
		}
	}
	return 0, fmt.Errorf("%w: wind region %q is not one of A0-A5, B1, B2, C, D, NZ1-NZ4", ErrInvalidCategory, code)
}

// String returns the region code.
func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionCodes[r]
}

// Valid reports whether r is one of the enumerated regions.
func (r Region) Valid() bool {
	return r >= RegionA0 && r <= RegionNZ4
}

// IsNonCyclonicA reports whether r is one of regions A0 to A5.
func (r Region) IsNonCyclonicA() bool {
	return r >= RegionA0 && r <= RegionA5
}

// IsNewZealand reports whether r is one of regions NZ1 to NZ4.
func (r Region) IsNewZealand() bool {
	return r >= RegionNZ1 && r <= RegionNZ4
}

// IsCyclonicOrB2 reports whether r is B2, C or D, the regions that take the
// climate change multiplier and a uniform cladding direction multiplier.
func (r Region) IsCyclonicOrB2() bool {
	return r == RegionB2 || r == RegionC || r == RegionD
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	v, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// TerrainCategory selects a terrain/height multiplier curve (Clause 4.2.1).
type TerrainCategory int

const (
	TC1 TerrainCategory = iota
	TC2
	TC2_5
	TC3
	TC4
)

var terrainCodes = [...]string{
	TC1:   "TC1",
	TC2:   "TC2",
	TC2_5: "TC2.5",
	TC3:   "TC3",
	TC4:   "TC4",
}

// TerrainCategories lists the categories in table order.
var TerrainCategories = []TerrainCategory{TC1, TC2, TC2_5, TC3, TC4}

// ParseTerrainCategory converts "TC1", "TC2", "TC2.5", "TC3" or "TC4".
func ParseTerrainCategory(code string) (TerrainCategory, error) {
	for tc, c := range terrainCodes {
		if c == code {
			return TerrainCategory(tc), nil
		}
	}
	return 0, fmt.Errorf("%w: terrain category %q is not one of TC1, TC2, TC2.5, TC3, TC4", ErrInvalidCategory, code)
}

func (tc TerrainCategory) String() string {
	if !tc.Valid() {
		return fmt.Sprintf("TerrainCategory(%d)", int(tc))
	}
	return terrainCodes[tc]
}

// Valid reports whether tc is one of the enumerated categories.
func (tc TerrainCategory) Valid() bool {
	return tc >= TC1 && tc <= TC4
}

// MarshalText implements encoding.TextMarshaler.
func (tc TerrainCategory) MarshalText() ([]byte, error) {
	if !tc.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, tc)
	}
	return []byte(tc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (tc *TerrainCategory) UnmarshalText(text []byte) error {
	v, err := ParseTerrainCategory(string(text))
	if err != nil {
		return err
	}
	*tc = v
	return nil
}
