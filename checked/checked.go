// Package checked implements the overflow-checked integer family.
package checked

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cnum/trait"
)

// Family names the checked family.
const Family = "checked"

// Int wraps a representation with an overflow tag. Int is an immutable
// value type; all operations return new values.
//
// A Sticky-tagged Int that has saturated carries a poison mark (stuck at
// the minimum or maximum); the mark absorbs every later operation and
// every later absorbed value.
type Int struct {
	rep    trait.Rep
	tag    Tag
	poison int8 // 0 clean, -1 stuck at min, +1 stuck at max
}

// New wraps rep (with its current value) under the given tag.
func New(rep trait.Rep, tag Tag) (Int, error) {
	if tag > Sticky {
		return Int{}, Error.Wrap(ErrBadTag)
	}

	return Int{rep: rep, tag: tag}, nil
}

// OverWord wraps a fresh machine word of the given layout and absorbs v,
// applying the tag's policy when v is out of range — construction from an
// out-of-range value behaves exactly like an arithmetic overflow.
func OverWord(width trait.Width, signed bool, tag Tag, v int64) (Int, error) {
	w, err := trait.NewWord(width, signed)
	if err != nil {
		return Int{}, Error.Wrap(err)
	}
	c, err := New(w, tag)
	if err != nil {
		return Int{}, err
	}

	return c.absorb(big.NewInt(v))
}

// Tag reports the overflow tag.
func (c Int) Tag() Tag { return c.tag }

// Rep returns the wrapped representation.
func (c Int) Rep() trait.Rep { return c.rep }

// Saturated reports whether a Sticky-tagged value is stuck at an extreme.
func (c Int) Saturated() bool { return c.poison != 0 }

// Digits reports the wrapped representation's digit count.
func (c Int) Digits() int { return c.rep.Digits() }

// IsSigned reports the wrapped representation's signedness.
func (c Int) IsSigned() bool { return c.rep.IsSigned() }

// SetDigits widens the wrapped representation; the tag is preserved.
func (c Int) SetDigits(n int) trait.Rep {
	return Int{rep: c.rep.SetDigits(n), tag: c.tag, poison: c.poison}
}

// AddSignedness makes the wrapped representation signed; the tag is preserved.
func (c Int) AddSignedness() trait.Rep {
	return Int{rep: c.rep.AddSignedness(), tag: c.tag, poison: c.poison}
}

// RemoveSignedness makes the wrapped representation unsigned; the tag is preserved.
func (c Int) RemoveSignedness() trait.Rep {
	return Int{rep: c.rep.RemoveSignedness(), tag: c.tag, poison: c.poison}
}

// Family reports "checked".
func (c Int) Family() string { return Family }

// Depth reports one layer above the wrapped representation.
func (c Int) Depth() int { return c.rep.Depth() + 1 }

// Big returns the exact value; a poisoned value reports its stuck extreme.
func (c Int) Big() *big.Int {
	if c.poison != 0 {
		min, max, _ := c.rep.Bounds()
		if c.poison < 0 {
			return new(big.Int).Set(min)
		}

		return new(big.Int).Set(max)
	}

	return c.rep.Big()
}

// Bounds reports the wrapped representation's bounds.
func (c Int) Bounds() (min, max *big.Int, bounded bool) { return c.rep.Bounds() }

// Absorb stores v, applying the tag's policy when v is out of range.
// A poisoned value stays at its extreme regardless of v.
func (c Int) Absorb(v *big.Int) (trait.Rep, error) { return c.absorb(v) }

// Add returns the policy-resolved sum.
func (c Int) Add(o trait.Rep) (trait.Rep, error) {
	return c.binary(o, (*big.Int).Add, trait.Rep.Add)
}

// Sub returns the policy-resolved difference.
func (c Int) Sub(o trait.Rep) (trait.Rep, error) {
	return c.binary(o, (*big.Int).Sub, trait.Rep.Sub)
}

// Mul returns the policy-resolved product.
func (c Int) Mul(o trait.Rep) (trait.Rep, error) {
	return c.binary(o, (*big.Int).Mul, trait.Rep.Mul)
}

// Quo returns the policy-resolved quotient, truncated toward zero.
// Division by zero is a precondition violation under every tag.
func (c Int) Quo(o trait.Rep) (trait.Rep, error) {
	if innerOf(o).Big().Sign() == 0 {
		return Int{}, Error.Wrap(ErrDivideByZero)
	}

	return c.binary(o, func(z, x, y *big.Int) *big.Int { return z.Quo(x, y) }, trait.Rep.Quo)
}

// Cmp compares exact values. It never changes either operand's type.
func (c Int) Cmp(o trait.Rep) int { return c.Big().Cmp(o.Big()) }

// Float converts the exact value to the nearest float64.
func (c Int) Float() float64 {
	f, _ := new(big.Float).SetInt(c.Big()).Float64()

	return f
}

// String renders the type, e.g. "checked<elastic<31, int8>, saturate>".
func (c Int) String() string {
	return fmt.Sprintf("checked<%s, %s>", c.rep, c.tag)
}

// binary resolves a @ b under the receiver's tag.
//
// Elision rule: when the wrapped representation is unbounded (elastic), the
// operation delegates to the inner family's own operator and no range
// comparison happens at all — the widening guarantee already holds. Only a
// bounded inner representation pays for the exact-compute-then-check path.
func (c Int) binary(
	o trait.Rep,
	exact func(z, x, y *big.Int) *big.Int,
	inner func(l, r trait.Rep) (trait.Rep, error),
) (Int, error) {
	rhs := o
	shape := c
	if oc, ok := o.(Int); ok {
		if oc.tag != c.tag {
			return Int{}, Error.Wrap(ErrTagMismatch)
		}
		if c.poison == 0 && oc.poison != 0 {
			// The poisoned operand absorbs the operation.
			return oc, nil
		}
		rhs = oc.rep
		// The wider inner governs the result shape, so mixing capacities
		// behaves like promotion to the common representation.
		if _, _, rb := rhs.Bounds(); !rb || rhs.Digits() > c.rep.Digits() {
			if _, _, lb := c.rep.Bounds(); lb {
				shape = oc
			}
		}
	}
	if c.poison != 0 {
		return c, nil
	}

	if _, _, bounded := c.rep.Bounds(); !bounded {
		r, err := inner(c.rep, rhs)
		if err != nil {
			return Int{}, Error.Wrap(err)
		}

		return Int{rep: r, tag: c.tag}, nil
	}

	return shape.absorb(exact(new(big.Int), c.rep.Big(), rhs.Big()))
}

// absorb applies the tag's policy to an exact value.
func (c Int) absorb(v *big.Int) (Int, error) {
	if c.poison != 0 {
		return c, nil
	}

	min, max, bounded := c.rep.Bounds()
	if !bounded {
		r, err := c.rep.Absorb(v)
		if err != nil {
			return Int{}, Error.Wrap(err)
		}

		return Int{rep: r, tag: c.tag}, nil
	}

	if v.Cmp(min) >= 0 && v.Cmp(max) <= 0 {
		r, err := c.rep.Absorb(v)
		if err != nil {
			return Int{}, Error.Wrap(err)
		}

		return Int{rep: r, tag: c.tag}, nil
	}

	switch c.tag {
	case Contract:
		return Int{}, Error.Wrap(ErrRangeViolation)
	case Saturate, Sticky:
		extreme, poison := max, int8(1)
		if v.Cmp(min) < 0 {
			extreme, poison = min, -1
		}
		r, err := c.rep.Absorb(extreme)
		if err != nil {
			return Int{}, Error.Wrap(err)
		}
		if c.tag != Sticky {
			poison = 0
		}

		return Int{rep: r, tag: c.tag, poison: poison}, nil
	case Modulo:
		// ((v - min) mod range) + min, with range = max - min + 1.
		span := new(big.Int).Sub(max, min)
		span.Add(span, big.NewInt(1))
		m := new(big.Int).Sub(v, min)
		m.Mod(m, span)
		m.Add(m, min)
		r, err := c.rep.Absorb(m)
		if err != nil {
			return Int{}, Error.Wrap(err)
		}

		return Int{rep: r, tag: c.tag}, nil
	default:
		return Int{}, Error.Wrap(ErrBadTag)
	}
}

// innerOf unwraps a checked operand to its representation; any other
// operand participates as-is.
func innerOf(o trait.Rep) trait.Rep {
	if oc, ok := o.(Int); ok {
		return oc.rep
	}

	return o
}
