// Package compose implements heterogeneous operator resolution.
package compose

import (
	"math/big"

	"github.com/katalvlaran/cnum/checked"
	"github.com/katalvlaran/cnum/elastic"
	"github.com/katalvlaran/cnum/fraction"
	"github.com/katalvlaran/cnum/scaled"
	"github.com/katalvlaran/cnum/trait"
)

// Add resolves a + b across any supported operand mix.
func Add(a, b any) (any, error) { return binary(a, b, opAdd) }

// Sub resolves a − b.
func Sub(a, b any) (any, error) { return binary(a, b, opSub) }

// Mul resolves a × b.
func Mul(a, b any) (any, error) { return binary(a, b, opMul) }

// Div resolves a ÷ b.
func Div(a, b any) (any, error) { return binary(a, b, opDiv) }

// Eq resolves a == b. Comparison never changes either operand's type.
func Eq(a, b any) (bool, error) {
	x, err := classify(a)
	if err != nil {
		return false, err
	}
	y, err := classify(b)
	if err != nil {
		return false, err
	}

	if x.kind == kindFloat || y.kind == kindFloat {
		xf, err := floatOf(x)
		if err != nil {
			return false, err
		}
		yf, err := floatOf(y)
		if err != nil {
			return false, err
		}

		return xf == yf, nil
	}
	if x.kind == kindRat || y.kind == kindRat {
		xr, err := ratOf(x)
		if err != nil {
			return false, err
		}
		yr, err := ratOf(y)
		if err != nil {
			return false, err
		}

		return xr.Cmp(yr) == 0, nil
	}

	x, y, err = promote(x, y)
	if err != nil {
		return false, err
	}
	switch x.kind {
	case kindRep:
		return x.rep.Cmp(y.rep) == 0, nil
	case kindScaled:
		eq, err := x.sc.Eq(y.sc)

		return eq, wrap(err)
	default:
		eq, err := x.fr.Eq(y.fr)

		return eq, wrap(err)
	}
}

// kind classifies an operand after lifting.
type kind uint8

const (
	kindRep kind = iota
	kindScaled
	kindFraction
	kindFloat
	kindRat
)

// operand is a classified value participating in resolution.
type operand struct {
	kind kind
	rep  trait.Rep
	sc   scaled.Int
	fr   fraction.Frac
	f    float64
	rat  *big.Rat
}

// binary runs the five-step resolution algorithm and dispatches to the
// governing family's operator.
func binary(a, b any, o op) (any, error) {
	x, err := classify(a)
	if err != nil {
		return nil, err
	}
	y, err := classify(b)
	if err != nil {
		return nil, err
	}

	// Rule 5: a dynamic operand pulls the other side over to the dynamic
	// type and its native operator.
	if x.kind == kindFloat || y.kind == kindFloat {
		return floatOp(x, y, o)
	}
	if x.kind == kindRat || y.kind == kindRat {
		return ratOp(x, y, o)
	}

	// Rules 2-4: promote to a common outermost family, then dispatch.
	x, y, err = promote(x, y)
	if err != nil {
		return nil, err
	}

	switch x.kind {
	case kindRep:
		r, err := repOp(x.rep, y.rep, o)

		return r, wrap(err)
	case kindScaled:
		r, err := scaledOp(x.sc, y.sc, o)

		return r, wrap(err)
	default:
		r, err := fractionOp(x.fr, y.fr, o)

		return r, wrap(err)
	}
}

// classify lifts v into an operand. Native integers become 64-bit (or
// narrower, matching their Go type) machine words at depth 0.
func classify(v any) (operand, error) {
	switch t := v.(type) {
	case trait.Rep:
		return operand{kind: kindRep, rep: t}, nil
	case scaled.Int:
		return operand{kind: kindScaled, sc: t}, nil
	case fraction.Frac:
		return operand{kind: kindFraction, fr: t}, nil
	case int:
		return liftInt(int64(t), trait.W64), nil
	case int8:
		return liftInt(int64(t), trait.W8), nil
	case int16:
		return liftInt(int64(t), trait.W16), nil
	case int32:
		return liftInt(int64(t), trait.W32), nil
	case int64:
		return liftInt(t, trait.W64), nil
	case uint:
		return liftUint(uint64(t), trait.W64), nil
	case uint8:
		return liftUint(uint64(t), trait.W8), nil
	case uint16:
		return liftUint(uint64(t), trait.W16), nil
	case uint32:
		return liftUint(uint64(t), trait.W32), nil
	case uint64:
		return liftUint(t, trait.W64), nil
	case float32:
		return operand{kind: kindFloat, f: float64(t)}, nil
	case float64:
		return operand{kind: kindFloat, f: t}, nil
	case *big.Float:
		f, _ := t.Float64()

		return operand{kind: kindFloat, f: f}, nil
	case *big.Rat:
		return operand{kind: kindRat, rat: t}, nil
	default:
		return operand{}, Error.Wrap(ErrUnsupportedOperand)
	}
}

// liftInt lifts a native signed integer to a machine word of its width.
func liftInt(v int64, w trait.Width) operand {
	word, _ := trait.NewWord(w, true)
	r, _ := word.Absorb(big.NewInt(v))

	return operand{kind: kindRep, rep: r}
}

// liftUint lifts a native unsigned integer to a machine word of its width.
func liftUint(v uint64, w trait.Width) operand {
	word, _ := trait.NewWord(w, false)
	r, _ := word.Absorb(new(big.Int).SetUint64(v))

	return operand{kind: kindRep, rep: r}
}

// depth reports the operand's nesting depth (native scalar = 0).
func depth(o operand) int {
	switch o.kind {
	case kindRep:
		return o.rep.Depth()
	case kindScaled:
		return o.sc.Depth()
	default:
		return o.fr.Depth()
	}
}

// family reports the operand's outermost family name.
func family(o operand) string {
	switch o.kind {
	case kindRep:
		return o.rep.Family()
	case kindScaled:
		return scaled.Family
	default:
		return fraction.Family
	}
}

// promote equalizes the outermost family of both operands. The operand at
// lesser depth is wrapped in the deeper operand's outermost family; the
// family's own operator then handles any remaining inner heterogeneity.
// Distinct families at equal depth fail: no implicit conversion is
// attempted between them.
func promote(x, y operand) (operand, operand, error) {
	if family(x) == family(y) {
		return x, y, nil
	}
	dx, dy := depth(x), depth(y)
	if dx == dy {
		return operand{}, operand{}, Error.Wrap(ErrFamilyMismatch)
	}
	if dx < dy {
		px, err := adopt(y, x)

		return px, y, err
	}
	py, err := adopt(x, y)

	return x, py, err
}

// adopt wraps the shallow operand as a representation of deep's outermost
// family, carrying deep's composition-time parameters (tag, radix) so the
// promoted value keeps every capability a native operand would receive.
func adopt(deep, shallow operand) (operand, error) {
	if shallow.kind != kindRep {
		return operand{}, Error.Wrap(ErrUnsupportedPromotion)
	}

	switch deep.kind {
	case kindScaled:
		// An integer is a fixed-point value at exponent 0.
		sc, err := scaled.New(shallow.rep, scaled.Scale{Exp: 0, Radix: deep.sc.Scale().Radix})
		if err != nil {
			return operand{}, Error.Wrap(err)
		}

		return operand{kind: kindScaled, sc: sc}, nil
	case kindFraction:
		den, err := shallow.rep.Absorb(big.NewInt(1))
		if err != nil {
			return operand{}, Error.Wrap(err)
		}

		return operand{kind: kindFraction, fr: fraction.NewRatio(shallow.rep, den)}, nil
	default:
		switch deep.rep.Family() {
		case elastic.Family:
			return operand{kind: kindRep, rep: elastic.Adopt(shallow.rep)}, nil
		case checked.Family:
			dc, ok := deep.rep.(checked.Int)
			if !ok {
				return operand{}, Error.Wrap(ErrUnsupportedPromotion)
			}
			c, err := checked.New(shallow.rep, dc.Tag())
			if err != nil {
				return operand{}, Error.Wrap(err)
			}

			return operand{kind: kindRep, rep: c}, nil
		default:
			return operand{}, Error.Wrap(ErrUnsupportedPromotion)
		}
	}
}

// repOp dispatches to the left representation's family operator.
func repOp(l, r trait.Rep, o op) (trait.Rep, error) {
	switch o {
	case opAdd:
		return l.Add(r)
	case opSub:
		return l.Sub(r)
	case opMul:
		return l.Mul(r)
	default:
		return l.Quo(r)
	}
}

// scaledOp dispatches to the fixed-point operators.
func scaledOp(l, r scaled.Int, o op) (scaled.Int, error) {
	switch o {
	case opAdd:
		return l.Add(r)
	case opSub:
		return l.Sub(r)
	case opMul:
		return l.Mul(r)
	default:
		return l.Div(r)
	}
}

// fractionOp dispatches to the exact-rational operators.
func fractionOp(l, r fraction.Frac, o op) (fraction.Frac, error) {
	switch o {
	case opAdd:
		return l.Add(r)
	case opSub:
		return l.Sub(r)
	case opMul:
		return l.Mul(r)
	default:
		return l.Div(r)
	}
}

// floatOp converts both operands to float64 and applies the native float
// operator; the result is a float64 (including native ±Inf semantics).
func floatOp(x, y operand, o op) (any, error) {
	xf, err := floatOf(x)
	if err != nil {
		return nil, err
	}
	yf, err := floatOf(y)
	if err != nil {
		return nil, err
	}

	switch o {
	case opAdd:
		return xf + yf, nil
	case opSub:
		return xf - yf, nil
	case opMul:
		return xf * yf, nil
	default:
		return xf / yf, nil
	}
}

// ratOp converts both operands to *big.Rat and applies exact rational
// arithmetic.
func ratOp(x, y operand, o op) (any, error) {
	xr, err := ratOf(x)
	if err != nil {
		return nil, err
	}
	yr, err := ratOf(y)
	if err != nil {
		return nil, err
	}

	z := new(big.Rat)
	switch o {
	case opAdd:
		return z.Add(xr, yr), nil
	case opSub:
		return z.Sub(xr, yr), nil
	case opMul:
		return z.Mul(xr, yr), nil
	default:
		if yr.Sign() == 0 {
			return nil, Error.Wrap(fraction.ErrDivideByZero)
		}

		return z.Quo(xr, yr), nil
	}
}

// floatOf converts any classified operand to float64.
func floatOf(o operand) (float64, error) {
	switch o.kind {
	case kindFloat:
		return o.f, nil
	case kindRat:
		f, _ := o.rat.Float64()

		return f, nil
	case kindRep:
		return o.rep.Float(), nil
	case kindScaled:
		return o.sc.Float(), nil
	default:
		f, err := o.fr.Float()

		return f, wrap(err)
	}
}

// ratOf converts any classified operand to an exact *big.Rat.
func ratOf(o operand) (*big.Rat, error) {
	switch o.kind {
	case kindRat:
		return o.rat, nil
	case kindFloat:
		r := new(big.Rat).SetFloat64(o.f)
		if r == nil {
			return nil, Error.Wrap(ErrUnsupportedOperand)
		}

		return r, nil
	case kindRep:
		return new(big.Rat).SetInt(o.rep.Big()), nil
	case kindScaled:
		s := o.sc.Scale()
		stored := new(big.Rat).SetInt(o.sc.Rep().Big())
		factor := new(big.Int).Exp(big.NewInt(int64(s.Radix)), big.NewInt(int64(abs(s.Exp))), nil)
		if s.Exp < 0 {
			return stored.Quo(stored, new(big.Rat).SetInt(factor)), nil
		}

		return stored.Mul(stored, new(big.Rat).SetInt(factor)), nil
	default:
		d := o.fr.Den().Big()
		if d.Sign() == 0 {
			return nil, Error.Wrap(fraction.ErrZeroDenominator)
		}

		return new(big.Rat).SetFrac(o.fr.Num().Big(), d), nil
	}
}

// wrap tags an error from another family's package without double-wrapping
// nil results.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	return Error.Wrap(err)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
