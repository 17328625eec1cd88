// Package compose defines sentinel errors for the compose subpackage of
// github.com/katalvlaran/cnum.
package compose

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error tags every error escaping the compose package.
var Error = errs.Class("compose")

// Sentinel errors for operator resolution.
var (
	// ErrFamilyMismatch indicates distinct families at equal nesting depth.
	ErrFamilyMismatch = errors.New("compose: distinct families at equal nesting depth")
	// ErrUnsupportedOperand indicates an operand outside every known family.
	ErrUnsupportedOperand = errors.New("compose: operand type is not a known numeric family")
	// ErrUnsupportedPromotion indicates an operand that cannot serve as a
	// wrapped representation of the deeper operand's family.
	ErrUnsupportedPromotion = errors.New("compose: operand cannot serve as a wrapped representation")
)

// op enumerates the resolved binary operators.
type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)
