// Package compose resolves binary operators across heterogeneous numeric
// operands: machine words, elastic, checked, scaled and fraction values,
// Go native integers, and dynamic numeric types.
//
// What:
//
//   - Add, Sub, Mul, Div and Eq accept any mix of supported operands and
//     apply the resolution algorithm:
//     1. Native integers are lifted to trait.Word (nesting depth 0).
//     2. Identical instantiations use their family's own operator.
//     3. At unequal nesting depth, the shallower operand is promoted: a new
//     value of the deeper operand's outermost family wraps it (same
//     overflow tag, radix at exponent 0, or denominator 1). The receiver
//     family's operator then resolves any remaining inner heterogeneity.
//     4. Distinct families at equal depth fail with ErrFamilyMismatch —
//     never a silent narrowing.
//     5. A dynamic operand (float32/float64/*big.Float → float64,
//     *big.Rat → *big.Rat) pulls the family member over to the dynamic
//     type and its native operator.
//
// Why:
//
//   - Promotion never suppresses a capability: a native integer promoted
//     into a saturating wrapper still saturates; one promoted into a
//     fixed-point operand still aligns exponents.
//   - Equal-depth family mixes have no defined common type, so the
//     rejection surfaces as an error instead of a silent conversion.
//
// Notes:
//
//   - *big.Int operands are not accepted; wrap the value in a
//     representation (for example via Absorb) instead. This keeps the
//     result type of rule 5 unambiguous.
//
// Errors:
//
//   - ErrFamilyMismatch: distinct families at equal nesting depth.
//   - ErrUnsupportedOperand: the operand belongs to no known family.
//   - ErrUnsupportedPromotion: the operand cannot serve as a wrapped
//     representation of the deeper family.
package compose
