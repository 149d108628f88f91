// Package util holds small helpers for reading loosely typed tabular input.
package util

import (
	"math"
	"strconv"
	"strings"
)

// StrToInt returns s as an int when it holds a base-10 integer, otherwise
// the original string.
func StrToInt(s string) any {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return n
}

// StrToFloat returns s as a float64 when it is numeric, otherwise the
// original string.
func StrToFloat(s string) any {
	f, ok := ParseNumber(s)
	if !ok {
		return s
	}
	return f
}

// ParseNumber parses s as a float64, ignoring surrounding space.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// RoundDown rounds x towards negative infinity at the given number of
// decimal places.
func RoundDown(x float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Floor(x*m) / m
}

// RoundUp rounds x towards positive infinity at the given number of
// decimal places.
func RoundUp(x float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Ceil(x*m) / m
}

// RoundValue applies round to v when it is a number. Any other value,
// including numeric strings, is returned unchanged.
func RoundValue(v any, decimals int, round func(float64, int) float64) any {
	switch n := v.(type) {
	case float64:
		return round(n, decimals)
	case int:
		return round(float64(n), decimals)
	}
	return v
}
