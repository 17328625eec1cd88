// Package trait defines core types and sentinel errors for the trait layer
// of github.com/katalvlaran/cnum.
package trait

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error tags every error escaping the trait package.
var Error = errs.Class("trait")

// Sentinel errors for trait operations.
var (
	// ErrBadWidth indicates a width outside the storage ladder.
	ErrBadWidth = errors.New("trait: unknown storage width")
	// ErrDivideByZero indicates integer division by zero.
	ErrDivideByZero = errors.New("trait: division by zero")
)

// Width identifies one member of the width-doubling storage ladder.
// W8 through W64 are native machine widths, W128 is the secondary
// wide-integer tier, and WBig is the unbounded fallback beyond it.
type Width uint8

const (
	// W8 is an 8-bit storage member.
	W8 Width = iota
	// W16 is a 16-bit storage member.
	W16
	// W32 is a 32-bit storage member.
	W32
	// W64 is a 64-bit storage member.
	W64
	// W128 is the secondary wide-integer tier (go-num U128/I128).
	W128
	// WBig is the unbounded arbitrary-precision fallback.
	WBig
)

// Bits reports the total bit width of w, including any sign bit.
// WBig reports 0, meaning unbounded.
func (w Width) Bits() int {
	switch w {
	case W8:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	case W128:
		return 128
	default:
		return 0
	}
}

// Bounded reports whether w has representable extremes.
func (w Width) Bounded() bool { return w != WBig }

// Next returns the following ladder member. The second result is false
// once the ladder is exhausted (WBig has no successor).
func (w Width) Next() (Width, bool) {
	if w >= WBig {
		return WBig, false
	}

	return w + 1, true
}

// String renders the width as its bit count ("8", "16", …, "big").
func (w Width) String() string {
	switch w {
	case W8:
		return "8"
	case W16:
		return "16"
	case W32:
		return "32"
	case W64:
		return "64"
	case W128:
		return "128"
	default:
		return "big"
	}
}
