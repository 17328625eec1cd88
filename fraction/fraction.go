// Package fraction implements the exact-rational family.
package fraction

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cnum/trait"
)

// Family names the fraction family.
const Family = "fraction"

// Frac is an exact rational: numerator over denominator, never implicitly
// reduced. Frac is an immutable value type; all operations return new
// values.
type Frac struct {
	num trait.Rep
	den trait.Rep
}

// New returns num over the multiplicative identity: the denominator is
// num's own family absorbing 1.
func New(num trait.Rep) (Frac, error) {
	den, err := num.Absorb(big.NewInt(1))
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}

	return Frac{num: num, den: den}, nil
}

// NewRatio returns num over den. A zero denominator is constructible — the
// representation is never normalized — and only errors when used.
func NewRatio(num, den trait.Rep) Frac {
	return Frac{num: num, den: den}
}

// Num returns the numerator representation.
func (f Frac) Num() trait.Rep { return f.num }

// Den returns the denominator representation.
func (f Frac) Den() trait.Rep { return f.den }

// Depth reports one layer above the deeper component.
func (f Frac) Depth() int {
	d := f.num.Depth()
	if n := f.den.Depth(); n > d {
		d = n
	}

	return d + 1
}

// Add computes a/b + c/d as (a·d + c·b) / (b·d) with component arithmetic;
// elastic components grow digits per their own rules.
func (f Frac) Add(o Frac) (Frac, error) { return f.addSub(o, trait.Rep.Add) }

// Sub computes a/b − c/d as (a·d − c·b) / (b·d).
func (f Frac) Sub(o Frac) (Frac, error) { return f.addSub(o, trait.Rep.Sub) }

// Mul computes (a·c) / (b·d).
func (f Frac) Mul(o Frac) (Frac, error) {
	num, err := f.num.Mul(o.num)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	den, err := f.den.Mul(o.den)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}

	return Frac{num: num, den: den}, nil
}

// Div computes (a·d) / (b·c) — the swapped products. Dividing by a
// zero-valued fraction yields ErrDivideByZero.
func (f Frac) Div(o Frac) (Frac, error) {
	if o.num.Big().Sign() == 0 {
		return Frac{}, Error.Wrap(ErrDivideByZero)
	}
	num, err := f.num.Mul(o.den)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	den, err := f.den.Mul(o.num)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}

	return Frac{num: num, den: den}, nil
}

// Eq reports cross-multiplication equality: a/b == c/d iff a·d == c·b.
// Defined only for non-zero denominators.
func (f Frac) Eq(o Frac) (bool, error) {
	if f.den.Big().Sign() == 0 || o.den.Big().Sign() == 0 {
		return false, Error.Wrap(ErrZeroDenominator)
	}
	l := new(big.Int).Mul(f.num.Big(), o.den.Big())
	r := new(big.Int).Mul(o.num.Big(), f.den.Big())

	return l.Cmp(r) == 0, nil
}

// Reduce divides numerator and denominator by their greatest common
// divisor, preserving the represented value. Reduction is never implicit;
// when and how often to call it is a call-site policy.
func (f Frac) Reduce() (Frac, error) {
	n, d := f.num.Big(), f.den.Big()
	if d.Sign() == 0 {
		return Frac{}, Error.Wrap(ErrZeroDenominator)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))
	if g.Sign() == 0 {
		// 0/0 never reaches here (zero denominator), 0/d has gcd |d|.
		return f, nil
	}
	num, err := f.num.Absorb(n.Quo(n, g))
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	den, err := f.den.Absorb(d.Quo(d, g))
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}

	return Frac{num: num, den: den}, nil
}

// Float divides numerator by denominator in rational arithmetic and
// reports the nearest float64.
func (f Frac) Float() (float64, error) {
	d := f.den.Big()
	if d.Sign() == 0 {
		return 0, Error.Wrap(ErrZeroDenominator)
	}
	out, _ := new(big.Rat).SetFrac(f.num.Big(), d).Float64()

	return out, nil
}

// String renders the type, e.g. "fraction<elastic<2, int8>, elastic<3, int8>>".
func (f Frac) String() string {
	return fmt.Sprintf("fraction<%s, %s>", f.num, f.den)
}

// addSub computes the cross-term combination (a·d op c·b) / (b·d).
func (f Frac) addSub(o Frac, op func(l, r trait.Rep) (trait.Rep, error)) (Frac, error) {
	ad, err := f.num.Mul(o.den)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	cb, err := o.num.Mul(f.den)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	num, err := op(ad, cb)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}
	den, err := f.den.Mul(o.den)
	if err != nil {
		return Frac{}, Error.Wrap(err)
	}

	return Frac{num: num, den: den}, nil
}
