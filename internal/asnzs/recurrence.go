package asnzs

import (
	"fmt"
	"strconv"
)

// Average recurrence intervals for wind, AS/NZS 1170.0:2002 (+A5) Appendix F.
// The ARI is the reciprocal of the annual probability of exceedance.

// DesignLife is the design working life of a structure.
type DesignLife int

const (
	ConstructionEquipment DesignLife = iota
	FiveYears
	TwentyFiveYears
	FiftyYears
	HundredYears
)

var designLifeNames = [...]string{
	ConstructionEquipment: "Construction Equipment",
	FiveYears:             "5 Years",
	TwentyFiveYears:       "25 Years",
	FiftyYears:            "50 Years",
	HundredYears:          "100 Years",
}

// DesignLives lists the design working lives in table order.
var DesignLives = []DesignLife{ConstructionEquipment, FiveYears, TwentyFiveYears, FiftyYears, HundredYears}

// ParseDesignLife converts "Construction Equipment", "5 Years", "25 Years",
// "50 Years" or "100 Years".
func ParseDesignLife(name string) (DesignLife, error) {
	for l, n := range designLifeNames {
		if n == name {
			return DesignLife(l), nil
		}
	}
	return 0, fmt.Errorf("%w: design life %q", ErrInvalidCategory, name)
}

func (l DesignLife) String() string {
	if l < ConstructionEquipment || l > HundredYears {
		return fmt.Sprintf("DesignLife(%d)", int(l))
	}
	return designLifeNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l DesignLife) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *DesignLife) UnmarshalText(text []byte) error {
	v, err := ParseDesignLife(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ImportanceLevel is the importance level of a structure, 1 to 4
// (AS/NZS 1170.0 Table F1 / National Construction Code).
type ImportanceLevel int

// ParseImportanceLevel converts "1" to "4".
func ParseImportanceLevel(s string) (ImportanceLevel, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: importance level %q", ErrInvalidCategory, s)
	}
	il := ImportanceLevel(n)
	if !il.Valid() {
		return 0, fmt.Errorf("%w: importance level %d", ErrInvalidCategory, n)
	}
	return il, nil
}

// Valid reports whether il is between 1 and 4.
func (il ImportanceLevel) Valid() bool {
	return il >= 1 && il <= 4
}

// ariCell is one entry of the recurrence table. A cell either holds a
// number of years or the rule that forbids a table lookup.
type ariCell struct {
	years float64
	rule  string
}

func years(y float64) ariCell { return ariCell{years: y} }

const (
	ruleIL4ShortLife    = "Importance Level 4 structures shall not be designed for less than a 25 year design life"
	ruleIL4RiskAnalysis = "Importance Level 4 structures with a design working life of 100 years or more shall be " +
		"determined by a risk analysis, with probabilities no greater than those for Importance Level 3"
)

// cycloneCell marks the 50 year / IL1 entry, which depends on the cyclonic flag.
const cycloneCell = -1

// ariTable is indexed by design life then importance level - 1.
var ariTable = [...][4]ariCell{
	ConstructionEquipment: {years(100), years(100), years(100), years(100)},
	FiveYears:             {years(25), years(50), years(100), {rule: ruleIL4ShortLife}},
	TwentyFiveYears:       {years(100), years(250), years(500), years(1000)},
	FiftyYears:            {years(cycloneCell), years(500), years(1000), years(2500)},
	HundredYears:          {years(500), years(1000), years(2500), {rule: ruleIL4RiskAnalysis}},
}

// AverageRecurrenceInterval returns the ARI in years for wind actions at the
// ultimate limit state. For a 50 year life at importance level 1 the ARI is
// 100 years, or 200 years in cyclonic regions.
func AverageRecurrenceInterval(life DesignLife, level ImportanceLevel, cyclonic bool) (float64, error) {
	if life < ConstructionEquipment || life > HundredYears {
		return 0, fmt.Errorf("%w: design life %s", ErrInvalidCategory, life)
	}
	if !level.Valid() {
		return 0, fmt.Errorf("%w: importance level %d", ErrInvalidCategory, int(level))
	}

	cell := ariTable[life][level-1]
	if cell.rule != "" {
		return 0, fmt.Errorf("%w: %s (design life %s, importance level %d)", ErrInvalidCombination, cell.rule, life, int(level))
	}
	if cell.years == cycloneCell {
		if cyclonic {
			return 200, nil
		}
		return 100, nil
	}
	return cell.years, nil
}
