package asnzs

import "errors"

// Error taxonomy shared by every calculation package.
// Callers match with errors.Is; messages carry the offending value.
var (
	// ErrInvalidCategory is returned when a categorical input (region,
	// terrain category, design life, importance level, framing type,
	// surface type) is outside its enumerated domain.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidCombination is returned when two otherwise valid categorical
	// values are not permitted together by the Standard.
	ErrInvalidCombination = errors.New("invalid combination")

	// ErrDivisionByZero is returned when a divisor supplied by the caller is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOutOfRange is returned when a numeric input is outside the domain
	// of the clause being applied.
	ErrOutOfRange = errors.New("value out of range")
)
