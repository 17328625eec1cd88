// Package fraction defines sentinel errors for the fraction subpackage of
// github.com/katalvlaran/cnum.
package fraction

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error tags every error escaping the fraction package.
var Error = errs.Class("fraction")

// Sentinel errors for fraction operations.
var (
	// ErrZeroDenominator indicates an operation that requires a non-zero
	// denominator touched a zero one.
	ErrZeroDenominator = errors.New("fraction: zero denominator")
	// ErrDivideByZero indicates division by a zero-valued fraction.
	ErrDivideByZero = errors.New("fraction: division by zero")
)
