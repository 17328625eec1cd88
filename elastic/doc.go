// Package elastic implements integers that widen instead of overflowing.
//
// What:
//
//   - Int tracks an exact magnitude-bit count (digits) alongside its value
//     and returns widened results from arithmetic:
//     addition/subtraction → max(Da, Db)+1 digits, multiplication → Da+Db.
//   - Storage is selected from the narrowest baseline's width-doubling
//     ladder (trait.Fit); values beyond the native members spill into the
//     wide-integer tiers.
//   - Construction from a constant deduces the minimal digit count holding
//     that exact value.
//
// Why:
//
//   - In-range arithmetic can never lose magnitude, so downstream overflow
//     checks (package checked) are provably unnecessary and get skipped.
//   - Comparison never changes type; only arithmetic widens.
//
// Decisions (recorded here and in DESIGN.md):
//
//   - Division: quotient digits = dividend digits, signedness is the OR of
//     the operands', truncation toward zero.
//   - Subtraction results are always signed, replacing undefined unsigned
//     underflow with explicit semantics.
//   - Zero-digit values are legal and hold exactly 0.
//
// Errors:
//
//   - ErrNegativeDigits: a negative minimum digit count was supplied.
//   - ErrBadBase: the narrowest baseline is not a bounded ladder width.
//   - ErrSignMismatch: a negative value was absorbed into an unsigned Int.
//   - ErrDivideByZero: division by zero.
package elastic
