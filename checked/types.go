// Package checked defines core types and sentinel errors for the checked
// subpackage of github.com/katalvlaran/cnum.
package checked

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error tags every error escaping the checked package.
var Error = errs.Class("checked")

// Sentinel errors for checked operations.
var (
	// ErrRangeViolation indicates a Contract-tagged out-of-range result.
	ErrRangeViolation = errors.New("checked: result outside the representable range")
	// ErrDivideByZero indicates division by zero.
	ErrDivideByZero = errors.New("checked: division by zero")
	// ErrTagMismatch indicates operands carrying different overflow tags.
	ErrTagMismatch = errors.New("checked: operands carry different overflow tags")
	// ErrBadTag indicates an unknown overflow tag.
	ErrBadTag = errors.New("checked: unknown overflow tag")
)

// Tag selects the overflow policy of a checked integer. It is immutable
// per type: chosen at composition time, never per value.
type Tag uint8

const (
	// Contract treats overflow as a precondition violation; the operation
	// fails loudly with ErrRangeViolation.
	Contract Tag = iota
	// Saturate clamps results to the representable minimum/maximum.
	Saturate
	// Modulo reduces results into the representable range (fully defined,
	// deterministic wrap-around).
	Modulo
	// Sticky saturates and stays saturated for all subsequent operations
	// on the value, regardless of later in-range inputs.
	Sticky
)

// String renders the tag name used in type descriptions.
func (t Tag) String() string {
	switch t {
	case Contract:
		return "contract"
	case Saturate:
		return "saturate"
	case Modulo:
		return "modulo"
	case Sticky:
		return "sticky"
	default:
		return "unknown"
	}
}
