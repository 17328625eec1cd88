// Package fraction_test provides runnable examples for exact rationals.
package fraction_test

import (
	"fmt"

	"github.com/katalvlaran/cnum/elastic"
	"github.com/katalvlaran/cnum/fraction"
)

// ExampleFrac_Eq demonstrates cross-multiplication equality: 2/4 equals
// 1/2 even though neither pair is reduced.
func ExampleFrac_Eq() {
	a := fraction.NewRatio(elastic.Of(2), elastic.Of(4))
	b := fraction.NewRatio(elastic.Of(1), elastic.Of(2))

	eq, _ := a.Eq(b)
	fmt.Println(eq)
	// Output:
	// true
}

// ExampleFrac_Reduce demonstrates explicit reduction: 8/12 becomes 2/3 and
// keeps its value.
func ExampleFrac_Reduce() {
	f := fraction.NewRatio(elastic.Of(8), elastic.Of(12))
	r, _ := f.Reduce()
	fmt.Println(r.Num().Big(), "/", r.Den().Big())
	// Output:
	// 2 / 3
}
