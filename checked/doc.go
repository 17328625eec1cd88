// Package checked implements the overflow-policy wrapper: any
// representation plus an immutable overflow tag chosen at composition time.
//
// What:
//
//   - Int wraps a trait.Rep and resolves out-of-range results per its tag:
//     Contract (explicit error), Saturate (clamp to the extremes), Modulo
//     (reduce into the representable range), Sticky (clamp and stay
//     clamped for every later operation on the value).
//   - Construction from an out-of-range value applies the same policy as
//     an arithmetic overflow.
//
// Why:
//
//   - The central optimization contract of the system: when the wrapped
//     representation already precludes overflow — an elastic integer
//     reports unbounded range because it widens — no range comparison is
//     performed at all. Checks never duplicate widening guarantees.
//
// Decisions (recorded here and in DESIGN.md):
//
//   - Contract violations surface as ErrRangeViolation: the fallible path
//     is explicit, never undefined; divide-by-zero is a precondition
//     violation and yields ErrDivideByZero under every tag.
//   - Operands carrying different tags refuse to combine (ErrTagMismatch):
//     the tag is a property of the type, fixed at composition time.
//
// Errors:
//
//   - ErrRangeViolation: a Contract-tagged result left the representable range.
//   - ErrDivideByZero: division by zero (any tag).
//   - ErrTagMismatch: operands carry different overflow tags.
//   - ErrBadTag: an unknown tag value was supplied.
package checked
