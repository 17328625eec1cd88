// Package elastic defines core types, options, and sentinel errors for the
// elastic subpackage of github.com/katalvlaran/cnum.
package elastic

import (
	"errors"

	"github.com/katalvlaran/cnum/trait"
	"github.com/zeebo/errs"
)

// Error tags every error escaping the elastic package.
var Error = errs.Class("elastic")

// Sentinel errors for elastic operations.
var (
	// ErrNegativeDigits indicates a negative minimum digit count.
	ErrNegativeDigits = errors.New("elastic: minimum digit count must be non-negative")
	// ErrBadBase indicates a baseline width outside the bounded ladder.
	ErrBadBase = errors.New("elastic: narrowest baseline must be a bounded ladder width")
	// ErrSignMismatch indicates a negative value absorbed into an unsigned Int.
	ErrSignMismatch = errors.New("elastic: negative value in an unsigned elastic integer")
	// ErrDivideByZero indicates division by zero.
	ErrDivideByZero = errors.New("elastic: division by zero")
)

// DefaultBase is the narrowest baseline used when no option overrides it.
const DefaultBase = trait.W8

// Option customizes Make without changing its signature.
type Option func(*config)

// config carries construction parameters for Make.
type config struct {
	base   trait.Width
	signed bool
}

// WithBase sets the narrowest baseline width the Int widens from.
func WithBase(w trait.Width) Option {
	return func(c *config) { c.base = w }
}

// WithUnsigned makes the Int unsigned (the default is signed).
func WithUnsigned() Option {
	return func(c *config) { c.signed = false }
}
