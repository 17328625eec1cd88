// Package scaled implements the fixed-point family.
package scaled

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cnum/trait"
)

// Family names the scaled family.
const Family = "scaled"

// Int is a fixed-point value: a wrapped integer representation holding the
// stored value, and a static scale. Int is an immutable value type; all
// operations return new values.
type Int struct {
	rep   trait.Rep
	scale Scale
}

// New wraps rep (with its current value as the stored integer) under the
// given scale.
func New(rep trait.Rep, s Scale) (Int, error) {
	if !s.Valid() {
		return Int{}, Error.Wrap(ErrBadRadix)
	}

	return Int{rep: rep, scale: s}, nil
}

// FromInt64 constructs the fixed-point value closest to v (truncating
// toward zero when the exponent is positive). The scale transform flows
// through rep's Absorb, so out-of-range stored values get rep's behavior.
func FromInt64(v int64, rep trait.Rep, s Scale) (Int, error) {
	if !s.Valid() {
		return Int{}, Error.Wrap(ErrBadRadix)
	}

	stored := big.NewInt(v)
	if s.Exp < 0 {
		stored.Mul(stored, pow(s.Radix, -s.Exp))
	} else if s.Exp > 0 {
		stored.Quo(stored, pow(s.Radix, s.Exp))
	}
	r, err := rep.Absorb(stored)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return Int{rep: r, scale: s}, nil
}

// FromFloat constructs the fixed-point value closest to f, truncating
// toward zero.
func FromFloat(f float64, rep trait.Rep, s Scale) (Int, error) {
	if !s.Valid() {
		return Int{}, Error.Wrap(ErrBadRadix)
	}

	bf := big.NewFloat(f)
	if s.Exp < 0 {
		bf.Mul(bf, new(big.Float).SetInt(pow(s.Radix, -s.Exp)))
	} else if s.Exp > 0 {
		bf.Quo(bf, new(big.Float).SetInt(pow(s.Radix, s.Exp)))
	}
	stored, _ := bf.Int(nil)
	r, err := rep.Absorb(stored)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return Int{rep: r, scale: s}, nil
}

// Rep returns the wrapped representation holding the stored integer.
func (i Int) Rep() trait.Rep { return i.rep }

// Scale reports the static scale.
func (i Int) Scale() Scale { return i.scale }

// Depth reports one layer above the wrapped representation.
func (i Int) Depth() int { return i.rep.Depth() + 1 }

// Add aligns both operands to the finer exponent and delegates the raw sum
// to the wrapped representations.
func (i Int) Add(o Int) (Int, error) { return i.combine(o, trait.Rep.Add) }

// Sub aligns both operands to the finer exponent and delegates the raw
// difference to the wrapped representations.
func (i Int) Sub(o Int) (Int, error) { return i.combine(o, trait.Rep.Sub) }

// Mul returns the product: the result exponent is the sum of the operand
// exponents and the raw integer multiply is delegated entirely to the
// wrapped representation.
func (i Int) Mul(o Int) (Int, error) {
	if i.scale.Radix != o.scale.Radix {
		return Int{}, Error.Wrap(ErrRadixMismatch)
	}
	r, err := i.rep.Mul(o.rep)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return Int{rep: r, scale: Scale{Exp: i.scale.Exp + o.scale.Exp, Radix: i.scale.Radix}}, nil
}

// Div returns the quotient, truncated toward zero, with result exponent =
// dividend exponent − divisor exponent (see package doc for the decision).
func (i Int) Div(o Int) (Int, error) {
	if i.scale.Radix != o.scale.Radix {
		return Int{}, Error.Wrap(ErrRadixMismatch)
	}
	if o.rep.Big().Sign() == 0 {
		return Int{}, Error.Wrap(ErrDivideByZero)
	}
	r, err := i.rep.Quo(o.rep)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return Int{rep: r, scale: Scale{Exp: i.scale.Exp - o.scale.Exp, Radix: i.scale.Radix}}, nil
}

// Cmp compares represented values at a common exponent. It never changes
// either operand's type.
func (i Int) Cmp(o Int) (int, error) {
	if i.scale.Radix != o.scale.Radix {
		return 0, Error.Wrap(ErrRadixMismatch)
	}
	fine := minInt(i.scale.Exp, o.scale.Exp)
	l := new(big.Int).Mul(i.rep.Big(), pow(i.scale.Radix, i.scale.Exp-fine))
	r := new(big.Int).Mul(o.rep.Big(), pow(o.scale.Radix, o.scale.Exp-fine))

	return l.Cmp(r), nil
}

// Eq reports whether both operands represent the same value.
func (i Int) Eq(o Int) (bool, error) {
	c, err := i.Cmp(o)

	return c == 0, err
}

// Float converts the represented value to the nearest float64.
func (i Int) Float() float64 {
	f := new(big.Float).SetInt(i.rep.Big())
	if i.scale.Exp < 0 {
		f.Quo(f, new(big.Float).SetInt(pow(i.scale.Radix, -i.scale.Exp)))
	} else if i.scale.Exp > 0 {
		f.Mul(f, new(big.Float).SetInt(pow(i.scale.Radix, i.scale.Exp)))
	}
	out, _ := f.Float64()

	return out
}

// Int64 converts the represented value to an int64, truncating toward zero.
func (i Int) Int64() int64 {
	v := i.rep.Big()
	if i.scale.Exp < 0 {
		v = new(big.Int).Quo(v, pow(i.scale.Radix, -i.scale.Exp))
	} else if i.scale.Exp > 0 {
		v = new(big.Int).Mul(v, pow(i.scale.Radix, i.scale.Exp))
	}

	return v.Int64()
}

// String renders the type, e.g. "scaled<word<32, unsigned>, 2^-30>".
func (i Int) String() string {
	return fmt.Sprintf("scaled<%s, %s>", i.rep, i.scale)
}

// combine aligns both operands to the finer exponent and applies op to the
// aligned representations. Aligning the coarser operand multiplies its
// stored value through Absorb: an elastic inner widens, a bounded inner
// applies its own wrap or policy (the accepted precision-loss point).
func (i Int) combine(o Int, op func(l, r trait.Rep) (trait.Rep, error)) (Int, error) {
	if i.scale.Radix != o.scale.Radix {
		return Int{}, Error.Wrap(ErrRadixMismatch)
	}

	fine := minInt(i.scale.Exp, o.scale.Exp)
	l, err := i.alignTo(fine)
	if err != nil {
		return Int{}, err
	}
	r, err := o.alignTo(fine)
	if err != nil {
		return Int{}, err
	}

	res, err := op(l, r)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}

	return Int{rep: res, scale: Scale{Exp: fine, Radix: i.scale.Radix}}, nil
}

// alignTo shifts the stored value down to the given (finer) exponent.
func (i Int) alignTo(exp int) (trait.Rep, error) {
	if exp == i.scale.Exp {
		return i.rep, nil
	}
	shifted := new(big.Int).Mul(i.rep.Big(), pow(i.scale.Radix, i.scale.Exp-exp))
	r, err := i.rep.Absorb(shifted)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return r, nil
}

// pow returns radix^n for n ≥ 0.
func pow(radix, n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(n)), nil)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
