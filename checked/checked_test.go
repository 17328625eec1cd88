// Package checked_test contains unit tests for the overflow-checked
// integer family: the four tag policies, the sticky absorbing state, the
// static elision rule over elastic inners, and error preconditions.
package checked_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cnum/checked"
	"github.com/katalvlaran/cnum/elastic"
	"github.com/katalvlaran/cnum/trait"
)

// allTags enumerates the policy matrix exercised by the suite.
var allTags = []checked.Tag{checked.Contract, checked.Saturate, checked.Modulo, checked.Sticky}

// PolicySuite exercises every overflow tag against the same scenarios.
type PolicySuite struct {
	suite.Suite
}

func TestPolicySuite(t *testing.T) { suite.Run(t, new(PolicySuite)) }

// TestRoundTrip verifies that an in-range value survives construction and
// read-back unchanged under all four tags.
func (s *PolicySuite) TestRoundTrip() {
	for _, tag := range allTags {
		for _, v := range []int64{0, 1, 200, 255} {
			c, err := checked.OverWord(trait.W8, false, tag, v)
			require.NoError(s.T(), err, "tag=%s v=%d", tag, v)
			require.Equal(s.T(), v, c.Big().Int64(), "tag=%s v=%d", tag, v)
			require.False(s.T(), c.Saturated())
		}
	}
}

// TestDivideByZero verifies the precondition violation under every tag.
func (s *PolicySuite) TestDivideByZero() {
	zero, err := trait.NewWord(trait.W8, false)
	require.NoError(s.T(), err)
	for _, tag := range allTags {
		c, err := checked.OverWord(trait.W8, false, tag, 10)
		require.NoError(s.T(), err)
		_, err = c.Quo(zero)
		require.True(s.T(), errors.Is(err, checked.ErrDivideByZero), "tag=%s", tag)
	}
}

//----------------------------------------------------------------------------//
// Per-tag semantics
//----------------------------------------------------------------------------//

// TestContract_FailsLoudly verifies the explicit error on out-of-range results.
func TestContract_FailsLoudly(t *testing.T) {
	_, err := checked.OverWord(trait.W8, false, checked.Contract, 300)
	require.True(t, errors.Is(err, checked.ErrRangeViolation))

	a, err := checked.OverWord(trait.W8, false, checked.Contract, 200)
	require.NoError(t, err)
	b, err := checked.OverWord(trait.W8, false, checked.Contract, 100)
	require.NoError(t, err)
	_, err = a.Add(b)
	require.True(t, errors.Is(err, checked.ErrRangeViolation))
}

// TestSaturate_Clamps verifies clamping to both extremes.
func TestSaturate_Clamps(t *testing.T) {
	hi, err := checked.OverWord(trait.W8, false, checked.Saturate, 300)
	require.NoError(t, err)
	require.Equal(t, int64(255), hi.Big().Int64())

	lo, err := checked.OverWord(trait.W8, false, checked.Saturate, -5)
	require.NoError(t, err)
	require.Equal(t, int64(0), lo.Big().Int64())

	shi, err := checked.OverWord(trait.W8, true, checked.Saturate, 300)
	require.NoError(t, err)
	require.Equal(t, int64(127), shi.Big().Int64())

	// Saturation is not sticky: a later in-range absorb recovers.
	back, err := hi.Absorb(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), back.Big().Int64())
}

// TestModulo_Law verifies result == ((v − min) mod range) + min for both
// signednesses.
func TestModulo_Law(t *testing.T) {
	cases := []struct {
		name   string
		signed bool
		v      int64
		want   int64
	}{
		{"UnsignedWrap", false, 300, 44},
		{"UnsignedExact", false, 256, 0},
		{"UnsignedNegative", false, -1, 255},
		{"SignedWrapDown", true, 200, -56},
		{"SignedWrapUp", true, -300, -44},
		{"SignedFar", true, 1000, -24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := checked.OverWord(trait.W8, tc.signed, checked.Modulo, tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, c.Big().Int64())
		})
	}
}

// TestSticky_AbsorbingState verifies that a saturated sticky value stays at
// its extreme through arithmetic and later in-range absorbs.
func TestSticky_AbsorbingState(t *testing.T) {
	c, err := checked.OverWord(trait.W8, false, checked.Sticky, 300)
	require.NoError(t, err)
	require.True(t, c.Saturated())
	require.Equal(t, int64(255), c.Big().Int64())

	small, err := checked.OverWord(trait.W8, false, checked.Sticky, 10)
	require.NoError(t, err)

	diff, err := c.Sub(small)
	require.NoError(t, err)
	stuck, ok := diff.(checked.Int)
	require.True(t, ok)
	require.True(t, stuck.Saturated())
	require.Equal(t, int64(255), stuck.Big().Int64(), "in-range subtraction cannot unstick")

	again, err := stuck.Absorb(big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, int64(255), again.Big().Int64(), "absorb cannot unstick")

	// The poison propagates from either operand.
	mixed, err := small.Add(c)
	require.NoError(t, err)
	require.True(t, mixed.(checked.Int).Saturated())
}

//----------------------------------------------------------------------------//
// Composition behavior
//----------------------------------------------------------------------------//

// TestTagMismatch verifies that differently tagged operands refuse to combine.
func TestTagMismatch(t *testing.T) {
	a, err := checked.OverWord(trait.W8, false, checked.Saturate, 10)
	require.NoError(t, err)
	b, err := checked.OverWord(trait.W8, false, checked.Modulo, 10)
	require.NoError(t, err)
	_, err = a.Add(b)
	require.True(t, errors.Is(err, checked.ErrTagMismatch))
}

// TestElision_OverElastic verifies the central optimization contract: an
// elastic inner widens instead of overflowing, so no range check (and no
// contract violation) can occur.
func TestElision_OverElastic(t *testing.T) {
	c, err := checked.New(elastic.Of(120), checked.Contract)
	require.NoError(t, err)

	prod, err := c.Mul(c)
	require.NoError(t, err, "widening precludes the range check entirely")
	pc, ok := prod.(checked.Int)
	require.True(t, ok)
	require.Equal(t, int64(14400), pc.Big().Int64())
	require.Equal(t, 14, pc.Digits(), "inner elastic digit law still holds through the wrapper")

	_, _, bounded := pc.Bounds()
	require.False(t, bounded)
}

// TestTraitTransforms verifies that transforms touch only the inner
// representation and preserve the tag.
func TestTraitTransforms(t *testing.T) {
	c, err := checked.OverWord(trait.W8, true, checked.Saturate, 10)
	require.NoError(t, err)

	wide := trait.SetDigits(c, 9).(checked.Int)
	require.Equal(t, checked.Saturate, wide.Tag())
	require.Equal(t, 15, wide.Digits())
	require.Equal(t, checked.Family, wide.Family())

	u := trait.RemoveSignedness(c).(checked.Int)
	require.False(t, u.IsSigned())
	require.Equal(t, checked.Saturate, u.Tag())
}

// TestNew_BadTag rejects unknown tags.
func TestNew_BadTag(t *testing.T) {
	_, err := checked.New(trait.WordOf(1), checked.Tag(9))
	require.True(t, errors.Is(err, checked.ErrBadTag))
}
