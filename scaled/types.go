// Package scaled defines core types and sentinel errors for the scaled
// subpackage of github.com/katalvlaran/cnum.
package scaled

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error tags every error escaping the scaled package.
var Error = errs.Class("scaled")

// Sentinel errors for scaled operations.
var (
	// ErrBadRadix indicates a radix other than 2 or 10.
	ErrBadRadix = errors.New("scaled: radix must be 2 or 10")
	// ErrRadixMismatch indicates operands carrying different radixes.
	ErrRadixMismatch = errors.New("scaled: operands carry different radixes")
	// ErrDivideByZero indicates division by a zero value.
	ErrDivideByZero = errors.New("scaled: division by zero")
)

// Scale is a compile-time-style (exponent, radix) pair: the represented
// value is stored × Radix^Exp.
type Scale struct {
	Exp   int
	Radix int
}

// Binary returns a radix-2 scale with the given exponent.
func Binary(exp int) Scale { return Scale{Exp: exp, Radix: 2} }

// Decimal returns a radix-10 scale with the given exponent.
func Decimal(exp int) Scale { return Scale{Exp: exp, Radix: 10} }

// Valid reports whether the radix is one of the supported bases.
func (s Scale) Valid() bool { return s.Radix == 2 || s.Radix == 10 }

// String renders the scale as "radix^exp", e.g. "2^-30".
func (s Scale) String() string { return fmt.Sprintf("%d^%d", s.Radix, s.Exp) }
