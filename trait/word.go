package trait

import (
	"fmt"
	"math/big"
)

// FamilyWord names the machine-word family.
const FamilyWord = "word"

// Word is a native fixed-width integer value at nesting depth zero. Its
// digit count is a capacity ceiling (the full magnitude width), and Absorb
// wraps out-of-range values modulo 2^bits exactly like a Go conversion,
// two's complement when signed. Word is an immutable value type; all
// operations return new values.
type Word struct {
	width  Width
	signed bool
	val    *big.Int
}

// NewWord returns a zero-valued word of the given layout. The width must be
// a bounded ladder member (W8 … W128).
func NewWord(width Width, signed bool) (Word, error) {
	if !width.Bounded() {
		return Word{}, Error.Wrap(ErrBadWidth)
	}

	return Word{width: width, signed: signed, val: new(big.Int)}, nil
}

// WordOf returns a signed 64-bit word holding v.
func WordOf(v int64) Word {
	return Word{width: W64, signed: true, val: big.NewInt(v)}
}

// WordOfUint returns an unsigned 64-bit word holding v.
func WordOfUint(v uint64) Word {
	return Word{width: W64, signed: false, val: new(big.Int).SetUint64(v)}
}

// Width reports the word's ladder member.
func (w Word) Width() Width { return w.width }

// Digits reports the magnitude bit capacity (width minus any sign bit).
func (w Word) Digits() int {
	if w.signed {
		return w.width.Bits() - 1
	}

	return w.width.Bits()
}

// IsSigned reports whether the word carries a sign bit.
func (w Word) IsSigned() bool { return w.signed }

// SetDigits returns a word of the smallest same-signedness ladder member
// holding at least n digits. The ladder tops out at W128; requests beyond
// it return the W128 member.
func (w Word) SetDigits(n int) Rep {
	next := Fit(w.width, n, w.signed)
	if !next.Bounded() {
		next = W128
	}

	return Word{width: next, signed: w.signed, val: wrapTo(w.big(), next, w.signed)}
}

// AddSignedness returns the signed counterpart, re-wrapping the value.
func (w Word) AddSignedness() Rep {
	return Word{width: w.width, signed: true, val: wrapTo(w.big(), w.width, true)}
}

// RemoveSignedness returns the unsigned counterpart, re-wrapping the value.
func (w Word) RemoveSignedness() Rep {
	return Word{width: w.width, signed: false, val: wrapTo(w.big(), w.width, false)}
}

// Family reports "word".
func (w Word) Family() string { return FamilyWord }

// Depth reports 0: a word is the native scalar baseline.
func (w Word) Depth() int { return 0 }

// Big returns a fresh copy of the stored value.
func (w Word) Big() *big.Int { return new(big.Int).Set(w.big()) }

// Absorb wraps v into the word's range, matching Go conversion semantics.
func (w Word) Absorb(v *big.Int) (Rep, error) {
	return Word{width: w.width, signed: w.signed, val: wrapTo(v, w.width, w.signed)}, nil
}

// Bounds reports the representable extremes of the word's layout.
func (w Word) Bounds() (min, max *big.Int, bounded bool) {
	return WidthBounds(w.width, w.signed)
}

// Add returns the native-wrapping sum.
func (w Word) Add(o Rep) (Rep, error) {
	return w.Absorb(new(big.Int).Add(w.big(), o.Big()))
}

// Sub returns the native-wrapping difference.
func (w Word) Sub(o Rep) (Rep, error) {
	return w.Absorb(new(big.Int).Sub(w.big(), o.Big()))
}

// Mul returns the native-wrapping product.
func (w Word) Mul(o Rep) (Rep, error) {
	return w.Absorb(new(big.Int).Mul(w.big(), o.Big()))
}

// Quo returns the quotient truncated toward zero.
// Division by zero yields ErrDivideByZero.
func (w Word) Quo(o Rep) (Rep, error) {
	d := o.Big()
	if d.Sign() == 0 {
		return Word{}, Error.Wrap(ErrDivideByZero)
	}

	return w.Absorb(new(big.Int).Quo(w.big(), d))
}

// Cmp compares exact values. It never changes either operand's type.
func (w Word) Cmp(o Rep) int { return w.big().Cmp(o.Big()) }

// Float converts the stored value to the nearest float64.
func (w Word) Float() float64 {
	f, _ := new(big.Float).SetInt(w.big()).Float64()

	return f
}

// String renders the layout, e.g. "word<32, unsigned>".
func (w Word) String() string {
	return fmt.Sprintf("word<%s, %s>", w.width, signedness(w.signed))
}

// big returns the stored value, treating the zero Word as 0.
func (w Word) big() *big.Int {
	if w.val == nil {
		return new(big.Int)
	}

	return w.val
}

// signedness renders a sign flag for type descriptions.
func signedness(signed bool) string {
	if signed {
		return "signed"
	}

	return "unsigned"
}

// wrapTo reduces v modulo 2^bits of the target width, interpreting the top
// bit as a sign when signed (two's complement, like a Go conversion).
func wrapTo(v *big.Int, width Width, signed bool) *big.Int {
	bits := uint(width.Bits())
	mask := new(big.Int).Lsh(one, bits)
	mask.Sub(mask, one)
	m := new(big.Int).And(v, mask)
	if signed && m.Bit(int(bits)-1) == 1 {
		m.Sub(m, new(big.Int).Lsh(one, bits))
	}

	return m
}
