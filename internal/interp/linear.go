// Package interp provides the piecewise-linear table lookups used throughout
// the wind actions clauses. Values between breakpoints are interpolated
// linearly; values outside the table take the nearest end value.
package interp

import (
	"fmt"

	interpolate "gonum.org/v1/gonum/interp"
)

// Table is a fitted breakpoint table. The zero value is not usable.
type Table struct {
	pl   interpolate.PiecewiseLinear
	xmin float64
	xmax float64
}

// Fit builds a table from strictly increasing breakpoints xs and values ys.
func Fit(xs, ys []float64) (Table, error) {
	if len(xs) != len(ys) {
		return Table{}, fmt.Errorf("interp: %d breakpoints but %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Table{}, fmt.Errorf("interp: need at least 2 breakpoints, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return Table{}, fmt.Errorf("interp: breakpoints not strictly increasing at index %d (%g <= %g)", i, xs[i], xs[i-1])
		}
	}

	var t Table
	if err := t.pl.Fit(xs, ys); err != nil {
		return Table{}, err
	}
	t.xmin, t.xmax = xs[0], xs[len(xs)-1]
	return t, nil
}

// MustFit is like Fit but panics on malformed tables. It is intended for
// package-level tables whose breakpoints are fixed at compile time.
func MustFit(xs, ys []float64) Table {
	t, err := Fit(xs, ys)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the interpolated value at x, clamped to the end values outside
// the table range.
func (t Table) At(x float64) float64 {
	return t.pl.Predict(x)
}

// Domain returns the first and last breakpoints.
func (t Table) Domain() (float64, float64) {
	return t.xmin, t.xmax
}

// Linear interpolates x against a one-off table.
func Linear(x float64, xs, ys []float64) (float64, error) {
	t, err := Fit(xs, ys)
	if err != nil {
		return 0, err
	}
	return t.At(x), nil
}

// Between interpolates between two points (x0, y0) and (x1, y1), clamping
// outside [x0, x1]. It is the two-point case of Linear without the fitting
// overhead, and returns y0 and y1 exactly at the end points.
func Between(x, x0, x1, y0, y1 float64) float64 {
	switch {
	case x <= x0:
		return y0
	case x >= x1:
		return y1
	}
	return y0 + (y1-y0)/(x1-x0)*(x-x0)
}
