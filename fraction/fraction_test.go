// Package fraction_test contains unit tests for the exact-rational family:
// cross-multiplication equality on unreduced pairs, component digit growth,
// explicit reduction, and zero-denominator preconditions.
package fraction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cnum/elastic"
	"github.com/katalvlaran/cnum/fraction"
	"github.com/katalvlaran/cnum/trait"
)

// ratio builds a fraction over elastic components; test fixture helper.
func ratio(n, d int64) fraction.Frac {
	return fraction.NewRatio(elastic.Of(n), elastic.Of(d))
}

//----------------------------------------------------------------------------//
// Equality and construction
//----------------------------------------------------------------------------//

// TestEq_CrossMultiplication verifies a/b == c/d iff a·d == c·b on
// unreduced pairs — the representation is never normalized.
func TestEq_CrossMultiplication(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d int64
		want       bool
	}{
		{"UnreducedEqual", 2, 4, 1, 2, true},
		{"Identity", 3, 7, 3, 7, true},
		{"Different", 2, 4, 2, 3, false},
		{"NegativePair", -1, 2, 1, -2, true},
		{"ZeroNumerators", 0, 5, 0, 9, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eq, err := ratio(tc.a, tc.b).Eq(ratio(tc.c, tc.d))
			require.NoError(t, err)
			require.Equal(t, tc.want, eq)
		})
	}
}

// TestEq_ZeroDenominator verifies the precondition: equality is defined
// only for non-zero denominators.
func TestEq_ZeroDenominator(t *testing.T) {
	_, err := ratio(1, 0).Eq(ratio(1, 2))
	require.True(t, errors.Is(err, fraction.ErrZeroDenominator))
}

// TestNew_DefaultsDenominator verifies single-argument construction.
func TestNew_DefaultsDenominator(t *testing.T) {
	f, err := fraction.New(elastic.Of(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), f.Num().Big().Int64())
	require.Equal(t, int64(1), f.Den().Big().Int64())
}

//----------------------------------------------------------------------------//
// Arithmetic
//----------------------------------------------------------------------------//

// TestAdd verifies cross-term addition and the compounding elastic growth.
func TestAdd(t *testing.T) {
	half, third := ratio(1, 2), ratio(1, 3)
	sum, err := half.Add(third)
	require.NoError(t, err)

	eq, err := sum.Eq(ratio(5, 6))
	require.NoError(t, err)
	require.True(t, eq)

	// Components follow the elastic laws: 1·3 and 1·2 carry 3 digits each,
	// their sum carries 4, the denominator product 2·3 carries 4.
	require.Equal(t, 4, trait.Digits(sum.Num()))
	require.Equal(t, 4, trait.Digits(sum.Den()))
	require.Equal(t, int64(5), sum.Num().Big().Int64())
	require.Equal(t, int64(6), sum.Den().Big().Int64())
}

// TestSubMulDiv covers the remaining operators against known values.
func TestSubMulDiv(t *testing.T) {
	diff, err := ratio(1, 2).Sub(ratio(1, 3))
	require.NoError(t, err)
	eq, err := diff.Eq(ratio(1, 6))
	require.NoError(t, err)
	require.True(t, eq)

	prod, err := ratio(2, 3).Mul(ratio(3, 4))
	require.NoError(t, err)
	eq, err = prod.Eq(ratio(1, 2))
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, int64(6), prod.Num().Big().Int64(), "products stay unreduced")
	require.Equal(t, int64(12), prod.Den().Big().Int64())

	q, err := ratio(1, 2).Div(ratio(3, 4))
	require.NoError(t, err)
	eq, err = q.Eq(ratio(2, 3))
	require.NoError(t, err)
	require.True(t, eq)

	_, err = ratio(1, 2).Div(ratio(0, 4))
	require.True(t, errors.Is(err, fraction.ErrDivideByZero))
}

//----------------------------------------------------------------------------//
// Reduction and conversion
//----------------------------------------------------------------------------//

// TestReduce verifies gcd reduction: coprime components afterwards, value
// preserved, and explicit invocation only.
func TestReduce(t *testing.T) {
	f := ratio(8, 12)
	r, err := f.Reduce()
	require.NoError(t, err)
	require.Equal(t, int64(2), r.Num().Big().Int64())
	require.Equal(t, int64(3), r.Den().Big().Int64())

	eq, err := r.Eq(f)
	require.NoError(t, err)
	require.True(t, eq, "reduction preserves value")

	// The original stays untouched: reduction is never implicit.
	require.Equal(t, int64(8), f.Num().Big().Int64())

	neg, err := ratio(-4, 8).Reduce()
	require.NoError(t, err)
	require.Equal(t, int64(-1), neg.Num().Big().Int64())
	require.Equal(t, int64(2), neg.Den().Big().Int64())

	_, err = ratio(1, 0).Reduce()
	require.True(t, errors.Is(err, fraction.ErrZeroDenominator))
}

// TestFloat verifies conversion through rational division.
func TestFloat(t *testing.T) {
	f, err := ratio(1, 2).Float()
	require.NoError(t, err)
	require.Equal(t, 0.5, f)

	_, err = ratio(1, 0).Float()
	require.True(t, errors.Is(err, fraction.ErrZeroDenominator))
}

// TestString pins the composite rendering.
func TestString(t *testing.T) {
	require.Equal(t, "fraction<elastic<2, int8>, elastic<3, int8>>", ratio(2, 4).String())
}
