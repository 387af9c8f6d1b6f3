package core

import (
	"errors"
	"math"
)

var (
	// ErrInvalidVector is reported when a direction would be the zero vector
	ErrInvalidVector = errors.New("invalid vector: zero length")
	// ErrDivisionByZero is reported when a computation divides by a zero denominator
	ErrDivisionByZero = errors.New("division by zero")
)

// IsNumeric reports whether err is one of the numeric degeneracy errors
func IsNumeric(err error) bool {
	return errors.Is(err, ErrInvalidVector) || errors.Is(err, ErrDivisionByZero)
}

// zeroTolerance is the magnitude under which values are treated as zero
const zeroTolerance = 1e-10

// AlignZero returns 0 for values within floating-point noise of zero, x otherwise
func AlignZero(x float64) float64 {
	if math.Abs(x) < zeroTolerance {
		return 0
	}
	return x
}

// IsZero reports whether x is within floating-point noise of zero
func IsZero(x float64) bool {
	return AlignZero(x) == 0
}

// Sign returns 1, -1 or 0 according to the sign of AlignZero(x)
func Sign(x float64) int {
	switch x = AlignZero(x); {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
