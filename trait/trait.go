package trait

import "math/big"

// Rep is the capability interface every numeric representation implements.
//
// The first five methods are the trait operations proper: queries and
// transforms of digit count and signedness. Transforms preserve the
// outermost family and touch only the innermost representation, and always
// return a new value. The remaining methods are the value protocol
// composition relies on: nesting depth, exact value access, representable
// bounds, binary arithmetic and comparison.
//
// Rep is the extensibility seam of cnum: an external numeric type becomes
// interoperable with the elastic, checked, scaled and fraction families
// purely by implementing it.
type Rep interface {
	// Digits reports the magnitude bit count, excluding any sign bit.
	Digits() int
	// IsSigned reports whether the representation carries a sign bit.
	IsSigned() bool
	// SetDigits returns a same-family representation with at least n digits.
	SetDigits(n int) Rep
	// AddSignedness returns a signed same-family representation.
	AddSignedness() Rep
	// RemoveSignedness returns an unsigned same-family representation.
	RemoveSignedness() Rep

	// Family names the representation's family ("word", "elastic", …).
	Family() string
	// Depth reports the count of wrapped family layers; a native scalar is 0.
	Depth() int
	// Big returns a fresh copy of the exact stored integer value.
	Big() *big.Int
	// Absorb returns a same-parameter representation holding v, applying
	// the family's out-of-range behavior (widening, wrapping, or policy).
	Absorb(v *big.Int) (Rep, error)
	// Bounds reports the representable extremes; bounded is false when the
	// representation widens instead of overflowing.
	Bounds() (min, max *big.Int, bounded bool)

	// Add, Sub, Mul and Quo apply the receiver family's result rules to the
	// exact operand values. Quo truncates toward zero.
	Add(o Rep) (Rep, error)
	Sub(o Rep) (Rep, error)
	Mul(o Rep) (Rep, error)
	Quo(o Rep) (Rep, error)
	// Cmp compares exact values; it never changes either operand's type.
	Cmp(o Rep) int

	// Float converts the exact value to the nearest float64.
	Float() float64
	// String renders the composite type, e.g. "elastic<7, uint8>".
	String() string
}

// Digits reports the magnitude bit count of r, excluding any sign bit.
func Digits(r Rep) int { return r.Digits() }

// SetDigits returns a same-family representation with at least n digits.
func SetDigits(r Rep, n int) Rep { return r.SetDigits(n) }

// IsSigned reports whether r carries a sign bit.
func IsSigned(r Rep) bool { return r.IsSigned() }

// AddSignedness returns a signed same-family counterpart of r.
func AddSignedness(r Rep) Rep { return r.AddSignedness() }

// RemoveSignedness returns an unsigned same-family counterpart of r.
func RemoveSignedness(r Rep) Rep { return r.RemoveSignedness() }
