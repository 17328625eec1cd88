// Package compose_test pins the composite type renderings against golden
// fixtures: the rendering is the user-facing contract for diagnosing what
// a resolved expression actually computed with.
package compose_test

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cnum/checked"
	"github.com/katalvlaran/cnum/compose"
	"github.com/katalvlaran/cnum/elastic"
	"github.com/katalvlaran/cnum/fraction"
	"github.com/katalvlaran/cnum/scaled"
	"github.com/katalvlaran/cnum/trait"
)

// TestRenderings builds one value per family (plus one resolved composite)
// and compares the "type = value" lines against testdata/renderings.golden.
// Run with -update to regenerate the fixture after an intentional change.
func TestRenderings(t *testing.T) {
	var buf bytes.Buffer

	w, err := trait.NewWord(trait.W32, false)
	require.NoError(t, err)
	seven, err := w.Absorb(big.NewInt(7))
	require.NoError(t, err)
	fmt.Fprintf(&buf, "%s = %s\n", seven, seven.Big())

	e := elastic.Of(100)
	fmt.Fprintf(&buf, "%s = %s\n", e, e.Big())

	wide, err := elastic.Make(31)
	require.NoError(t, err)
	c, err := checked.New(wide, checked.Saturate)
	require.NoError(t, err)
	fmt.Fprintf(&buf, "%s = %s\n", c, c.Big())

	inner, err := checked.OverWord(trait.W32, false, checked.Modulo, 0)
	require.NoError(t, err)
	s, err := scaled.FromInt64(3, inner, scaled.Binary(-30))
	require.NoError(t, err)
	fmt.Fprintf(&buf, "%s = %v\n", s, s.Float())

	f := fraction.NewRatio(elastic.Of(2), elastic.Of(4))
	fmt.Fprintf(&buf, "%s = %s/%s\n", f, f.Num().Big(), f.Den().Big())

	r, err := compose.Add(elastic.Of(100), int8(27))
	require.NoError(t, err)
	re := r.(elastic.Int)
	fmt.Fprintf(&buf, "%s = %s\n", re, re.Big())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "renderings", buf.Bytes())
}
