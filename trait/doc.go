// Package trait defines the compositional interface shared by every numeric
// family in cnum, plus the machine-word representation sitting at nesting
// depth zero.
//
// What:
//
//   - Rep: the capability interface every representation implements —
//     digit-count and signedness queries/transforms, exact value access,
//     bounds, and binary arithmetic.
//   - The five trait operations as package-level functions: Digits,
//     SetDigits, IsSigned, AddSignedness, RemoveSignedness.
//   - Width: the width-doubling storage ladder W8 → W16 → W32 → W64 → W128
//     → WBig, with Fit/FitValue selection helpers.
//   - Word: a native fixed-width integer value (two's-complement wrapping,
//     exactly like a Go conversion), the baseline other families wrap.
//
// Why:
//
//   - Rep is the extensibility seam: any external numeric type that
//     implements it participates in promotion and composition with the
//     elastic, checked, scaled and fraction families unchanged.
//   - Transforms return new values; nothing here mutates in place.
//
// Conventions:
//
//   - Digits counts magnitude bits and excludes any sign bit.
//   - Transforms preserve the outermost family and touch only the innermost
//     representation.
//   - The W128 tier is backed by the go-num 128-bit probe; WBig is the
//     unbounded big.Int fallback when even 128 bits cannot hold a value.
//
// Errors:
//
//   - ErrBadWidth: a width outside the storage ladder was supplied.
//   - ErrDivideByZero: integer division by zero.
package trait
