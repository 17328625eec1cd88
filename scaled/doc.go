// Package scaled implements fixed-point numbers: any integer
// representation plus a static (exponent, radix) scale.
//
// What:
//
//   - Int represents stored × radix^exponent; the radix is 2 (default) or
//     10 (decimal fixed point).
//   - Multiplication adds exponents and delegates the raw integer multiply
//     entirely to the wrapped representation.
//   - Addition/subtraction first align both operands to the finer (smaller)
//     exponent; the alignment shift flows through the wrapped
//     representation's Absorb, so an elastic inner grows digits while a
//     word or checked inner applies its own wrap/policy.
//   - Conversions to/from int64 and float64 perform the scale transform,
//     truncating toward zero on construction.
//
// Why:
//
//   - The wrapper adds no arithmetic of its own beyond exponent tracking;
//     every range behavior is the wrapped representation's.
//   - Re-scaling a coarser operand without compensating digit growth is an
//     accepted, documented approximation, not an error.
//
// Decision (recorded here and in DESIGN.md): the quotient exponent is
// dividend exponent − divisor exponent, truncating toward zero.
//
// Errors:
//
//   - ErrBadRadix: a radix other than 2 or 10 was supplied.
//   - ErrRadixMismatch: operands carry different radixes.
//   - ErrDivideByZero: division by a zero value.
package scaled
