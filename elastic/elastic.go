// Package elastic implements the widening integer family: arithmetic
// results carry exactly enough digits for any in-range outcome, so the
// values themselves can never overflow.
package elastic

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cnum/trait"
)

// Family names the elastic family.
const Family = "elastic"

// Int is an elastic integer: (digit count, narrowest baseline, value).
//
// Invariant: the stored value always fits the digit count; the digit count
// is the exact result of the composition rules, not a capacity ceiling.
// Int is an immutable value type; all operations return new values.
type Int struct {
	digits int
	signed bool
	base   trait.Width
	val    *big.Int
}

// Make returns a zero-valued Int with at least minDigits digits. The
// default layout is signed with the W8 baseline; use WithUnsigned and
// WithBase to override.
func Make(minDigits int, opts ...Option) (Int, error) {
	if minDigits < 0 {
		return Int{}, Error.Wrap(ErrNegativeDigits)
	}

	cfg := config{base: DefaultBase, signed: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.base.Bounded() {
		return Int{}, Error.Wrap(ErrBadBase)
	}

	return Int{digits: minDigits, signed: cfg.signed, base: cfg.base, val: new(big.Int)}, nil
}

// Of returns a signed Int holding v, with the minimal digit count deduced
// from the value itself.
func Of(v int64) Int {
	b := big.NewInt(v)

	return Int{digits: b.BitLen(), signed: true, base: DefaultBase, val: b}
}

// OfUint returns an unsigned Int holding v, with deduced digits.
func OfUint(v uint64) Int {
	b := new(big.Int).SetUint64(v)

	return Int{digits: b.BitLen(), signed: false, base: DefaultBase, val: b}
}

// Adopt promotes any representation into the elastic family: the result
// carries r's digit count, signedness and value over the default baseline.
func Adopt(r trait.Rep) Int {
	return Int{digits: r.Digits(), signed: r.IsSigned(), base: DefaultBase, val: r.Big()}
}

// Digits reports the exact magnitude bit count.
func (i Int) Digits() int { return i.digits }

// IsSigned reports whether the Int carries a sign.
func (i Int) IsSigned() bool { return i.signed }

// SetDigits returns an Int with at least n digits (widening only).
func (i Int) SetDigits(n int) trait.Rep {
	if n <= i.digits {
		return i
	}

	return Int{digits: n, signed: i.signed, base: i.base, val: i.Big()}
}

// AddSignedness returns the signed counterpart; the value is unchanged.
func (i Int) AddSignedness() trait.Rep {
	return Int{digits: i.digits, signed: true, base: i.base, val: i.Big()}
}

// RemoveSignedness returns the unsigned counterpart. A negative value is
// reduced modulo 2^digits, like a native conversion.
func (i Int) RemoveSignedness() trait.Rep {
	v := i.Big()
	if v.Sign() < 0 {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(i.digits))
		mask.Sub(mask, big.NewInt(1))
		v.And(v, mask)
	}

	return Int{digits: i.digits, signed: false, base: i.base, val: v}
}

// Family reports "elastic".
func (i Int) Family() string { return Family }

// Depth reports 1: one family layer over the native baseline.
func (i Int) Depth() int { return 1 }

// Big returns a fresh copy of the stored value.
func (i Int) Big() *big.Int { return new(big.Int).Set(i.big()) }

// Absorb returns an Int holding v, widening the digit count when v needs
// more magnitude bits. Absorbing a negative value into an unsigned Int
// yields ErrSignMismatch.
func (i Int) Absorb(v *big.Int) (trait.Rep, error) {
	if !i.signed && v.Sign() < 0 {
		return Int{}, Error.Wrap(ErrSignMismatch)
	}
	d := i.digits
	if n := v.BitLen(); n > d {
		d = n
	}

	return Int{digits: d, signed: i.signed, base: i.base, val: new(big.Int).Set(v)}, nil
}

// Bounds reports unbounded: an elastic integer widens instead of
// overflowing, which is what lets package checked elide its range checks.
func (i Int) Bounds() (min, max *big.Int, bounded bool) { return nil, nil, false }

// Add returns the sum with max(Da, Db)+1 digits; the result is signed if
// either operand is.
func (i Int) Add(o trait.Rep) (trait.Rep, error) {
	return Int{
		digits: maxInt(i.digits, o.Digits()) + 1,
		signed: i.signed || o.IsSigned(),
		base:   i.base,
		val:    new(big.Int).Add(i.big(), o.Big()),
	}, nil
}

// Sub returns the difference with max(Da, Db)+1 digits. The result is
// always signed: unsigned underflow would otherwise be unrepresentable.
func (i Int) Sub(o trait.Rep) (trait.Rep, error) {
	return Int{
		digits: maxInt(i.digits, o.Digits()) + 1,
		signed: true,
		base:   i.base,
		val:    new(big.Int).Sub(i.big(), o.Big()),
	}, nil
}

// Mul returns the product with exactly Da+Db digits.
func (i Int) Mul(o trait.Rep) (trait.Rep, error) {
	return Int{
		digits: i.digits + o.Digits(),
		signed: i.signed || o.IsSigned(),
		base:   i.base,
		val:    new(big.Int).Mul(i.big(), o.Big()),
	}, nil
}

// Quo returns the quotient truncated toward zero, carrying the dividend's
// digit count (a ceiling for any truncated quotient). Division by zero
// yields ErrDivideByZero.
func (i Int) Quo(o trait.Rep) (trait.Rep, error) {
	d := o.Big()
	if d.Sign() == 0 {
		return Int{}, Error.Wrap(ErrDivideByZero)
	}

	return Int{
		digits: i.digits,
		signed: i.signed || o.IsSigned(),
		base:   i.base,
		val:    new(big.Int).Quo(i.big(), d),
	}, nil
}

// Cmp compares exact values. It never changes either operand's type.
func (i Int) Cmp(o trait.Rep) int { return i.big().Cmp(o.Big()) }

// Float converts the stored value to the nearest float64.
func (i Int) Float() float64 {
	f, _ := new(big.Float).SetInt(i.big()).Float64()

	return f
}

// Storage reports the selected ladder member: the smallest baseline-family
// width holding the digit count (plus sign bit when signed). Beyond the
// 128-bit tier the unbounded WBig representation is substituted.
func (i Int) Storage() trait.Width { return trait.Fit(i.base, i.digits, i.signed) }

// String renders the type, e.g. "elastic<7, uint8>".
func (i Int) String() string {
	return fmt.Sprintf("elastic<%d, %s>", i.digits, baseName(i.base, i.signed))
}

// big returns the stored value, treating the zero Int as 0.
func (i Int) big() *big.Int {
	if i.val == nil {
		return new(big.Int)
	}

	return i.val
}

// baseName renders a baseline layout as a native-looking type name.
func baseName(w trait.Width, signed bool) string {
	if signed {
		return "int" + w.String()
	}

	return "uint" + w.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
