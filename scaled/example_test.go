// Package scaled_test provides runnable examples for fixed-point values.
package scaled_test

import (
	"fmt"

	"github.com/katalvlaran/cnum/scaled"
	"github.com/katalvlaran/cnum/trait"
)

// ExampleFromFloat demonstrates an unsigned 4.4 layout: 4 integer and 4
// fractional bits hold 15.9375 — the maximum value of that layout — exactly.
func ExampleFromFloat() {
	rep, _ := trait.NewWord(trait.W8, false)
	v, _ := scaled.FromFloat(15.9375, rep, scaled.Binary(-4))
	fmt.Println(v, "=", v.Float())
	// Output:
	// scaled<word<8, unsigned>, 2^-4> = 15.9375
}

// ExampleInt_Div demonstrates the division decision: at exponent 0 the
// quotient truncates toward zero, so 15 ÷ 2 is 7.
func ExampleInt_Div() {
	rep, _ := trait.NewWord(trait.W8, true)
	fifteen, _ := scaled.FromInt64(15, rep, scaled.Binary(0))
	two, _ := scaled.FromInt64(2, rep, scaled.Binary(0))

	q, _ := fifteen.Div(two)
	fmt.Println(q.Int64())
	// Output:
	// 7
}
