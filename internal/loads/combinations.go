// Package loads combines wind actions with permanent and imposed actions
// following AS/NZS 1170.0 Section 4.
package loads

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gowind/internal/asnzs"
)

// LimitState distinguishes strength from serviceability combinations.
type LimitState int

const (
	Ultimate LimitState = iota
	Serviceability
)

func (s LimitState) String() string {
	if s == Serviceability {
		return "SLS"
	}
	return "ULS"
}

// Combination is a set of load factors applied to unfactored actions.
// Live is multiplied by the combination factor ψ when Combined is set.
type Combination struct {
	ID          string
	Description string
	State       LimitState

	Dead     float64 // G
	Live     float64 // Q
	Combined bool    // Q factor is ψ_c (ULS) or ψ_s (SLS)
	Wind     float64 // W_u or W_s
}

// Combinations lists the AS/NZS 1170.0 Clause 4.2 combinations that carry
// wind, together with the gravity cases they are checked against.
var Combinations = []Combination{
	{ID: "1", Description: "1.35G", State: Ultimate, Dead: 1.35},
	{ID: "2", Description: "1.2G + 1.5Q", State: Ultimate, Dead: 1.2, Live: 1.5},
	{ID: "3", Description: "1.2G + ψcQ + Wu", State: Ultimate, Dead: 1.2, Live: 1, Combined: true, Wind: 1},
	{ID: "4", Description: "0.9G + Wu", State: Ultimate, Dead: 0.9, Wind: 1},
	{ID: "5", Description: "G + ψsQ + Ws", State: Serviceability, Dead: 1, Live: 1, Combined: true, Wind: 1},
}

// Actions holds unfactored action effects in consistent units, e.g. kPa on
// a surface or kN·m in a member. Uplift and suction are negative.
type Actions struct {
	Dead    float64 // G
	Live    float64 // Q
	WindULS float64 // W_u
	WindSLS float64 // W_s
}

// Factors are the combination factors for imposed actions (Table 4.1).
type Factors struct {
	PsiC float64 // ψ_c
	PsiS float64 // ψ_s
}

// DefaultFactors are the Table 4.1 values for floors in residential and
// office occupancies.
var DefaultFactors = Factors{PsiC: 0.4, PsiS: 0.7}

// Validate checks that both factors lie in [0, 1].
func (f Factors) Validate() error {
	for _, v := range []float64{f.PsiC, f.PsiS} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: combination factor shall be between 0 and 1, not %g", asnzs.ErrOutOfRange, v)
		}
	}
	return nil
}

// Factored returns the combined action effect.
func (c Combination) Factored(a Actions, f Factors) float64 {
	live := c.Live
	if c.Combined {
		if c.State == Serviceability {
			live *= f.PsiS
		} else {
			live *= f.PsiC
		}
	}
	wind := a.WindULS
	if c.State == Serviceability {
		wind = a.WindSLS
	}
	return c.Dead*a.Dead + live*a.Live + c.Wind*wind
}

// Result is one evaluated combination.
type Result struct {
	Combination
	Value float64
}

// Envelope is the extreme combined effects for one limit state.
type Envelope struct {
	Max, Min Result
}

// Evaluate factors the actions for every combination in combos and returns
// the results with the ultimate and serviceability envelopes.
func Evaluate(a Actions, f Factors, combos []Combination) ([]Result, map[LimitState]Envelope, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	results := make([]Result, 0, len(combos))
	env := make(map[LimitState]Envelope, 2)
	for _, c := range combos {
		r := Result{Combination: c, Value: c.Factored(a, f)}
		results = append(results, r)

		e, ok := env[c.State]
		if !ok {
			env[c.State] = Envelope{Max: r, Min: r}
			continue
		}
		if r.Value > e.Max.Value {
			e.Max = r
		}
		if r.Value < e.Min.Value {
			e.Min = r
		}
		env[c.State] = e
	}
	return results, env, nil
}

// Governing returns the result of greatest magnitude in an envelope.
func (e Envelope) Governing() Result {
	if math.Abs(e.Min.Value) > math.Abs(e.Max.Value) {
		return e.Min
	}
	return e.Max
}
