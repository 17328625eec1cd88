// Package fraction implements exact rationals as unreduced
// numerator/denominator pairs of representations.
//
// What:
//
//   - Frac holds a numerator and a denominator (defaulting to 1); the
//     represented value is numerator ÷ denominator, never implicitly
//     reduced or sign-normalized.
//   - Equality is cross-multiplication: a/b == c/d iff a·d == c·b — required
//     precisely because nothing normalizes the representation.
//   - Arithmetic combines components with their own family arithmetic
//     (cross terms for ±, straight products for ×, swapped products for ÷),
//     so elastic components compound digit growth quickly — a known,
//     unmitigated property; call Reduce when it matters.
//   - Reduce divides both components by their greatest common divisor; it
//     is a distinct, explicitly invoked operation. Eager, lazy-on-growth or
//     periodic reduction are all call-site policies.
//
// Errors:
//
//   - ErrZeroDenominator: equality, reduction or float conversion touched a
//     zero denominator.
//   - ErrDivideByZero: division by a zero-valued fraction.
package fraction
