package trait

import (
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// one is shared by bounds math; never mutated.
var one = big.NewInt(1)

// Fit selects the smallest ladder member at or above base whose bit width
// holds digits magnitude bits plus a sign bit when signed. When even the
// W128 tier is too narrow, WBig is selected.
func Fit(base Width, digits int, signed bool) Width {
	need := digits
	if signed {
		need++
	}

	w := base
	for w.Bounded() {
		if w.Bits() >= need {
			return w
		}
		w, _ = w.Next()
	}

	return WBig
}

// FitValue classifies a concrete value: the smallest ladder member at or
// above base that represents v under the given signedness. The W128 tier
// is probed through go-num's 128-bit conversions.
func FitValue(v *big.Int, signed bool, base Width) Width {
	for w := base; w.Bounded(); w, _ = w.Next() {
		if w == W128 {
			if fits128(v, signed) {
				return W128
			}

			continue
		}
		min, max, _ := WidthBounds(w, signed)
		if v.Cmp(min) >= 0 && v.Cmp(max) <= 0 {
			return w
		}
	}

	return WBig
}

// WidthBounds reports the representable extremes of a ladder member under
// the given signedness. For WBig, bounded is false and both extremes are nil.
func WidthBounds(w Width, signed bool) (min, max *big.Int, bounded bool) {
	if !w.Bounded() {
		return nil, nil, false
	}

	bits := uint(w.Bits())
	if signed {
		// [-2^(bits-1), 2^(bits-1)-1]
		max = new(big.Int).Lsh(one, bits-1)
		min = new(big.Int).Neg(max)
		max.Sub(max, one)

		return min, max, true
	}
	// [0, 2^bits-1]
	max = new(big.Int).Lsh(one, bits)
	max.Sub(max, one)

	return new(big.Int), max, true
}

// fits128 probes the secondary wide-integer tier: a value fits W128 iff
// go-num converts it without loss.
func fits128(v *big.Int, signed bool) bool {
	if signed {
		_, acc := num.I128FromBigInt(v)

		return acc
	}
	if v.Sign() < 0 {
		return false
	}
	_, acc := num.U128FromBigInt(v)

	return acc
}
