// SPDX-License-Identifier: MIT
// Package jet: sentinel error set.
//
// All errors are precondition failures detected synchronously at the
// violating call; nothing is retried internally. Truncation above the
// environment's order and a lowered AccurateWeight are NOT errors.
//
// ERROR PRIORITY (checked in this order by binary operations):
// nil/released operand -> environment identity -> operation-specific.

package jet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
)

var (
	// ErrInvalidEnvironment is env.ErrInvalidEnvironment: a nil or closed
	// environment was supplied to a constructor.
	ErrInvalidEnvironment = env.ErrInvalidEnvironment

	// ErrDimensionMismatch is monomial.ErrDimensionMismatch: an exponent
	// vector or point has the wrong number of variables.
	ErrDimensionMismatch = monomial.ErrDimensionMismatch

	// ErrEnvironmentMismatch indicates operands built over different environments.
	ErrEnvironmentMismatch = errors.New("jet: environment mismatch")

	// ErrArityMismatch indicates a substitution vector whose length differs
	// from the variable count of the series being composed.
	ErrArityMismatch = errors.New("jet: arity mismatch")

	// ErrIndexOutOfRange indicates a variable index ≥ NumVars (or negative).
	ErrIndexOutOfRange = errors.New("jet: variable index out of range")

	// ErrDivisionByZeroSeries indicates inversion of a series whose standard part is 0.
	ErrDivisionByZeroSeries = errors.New("jet: division by series with zero standard part")

	// ErrDomain indicates an elementary function evaluated outside its domain
	// at the standard part (log or sqrt of zero, or of a negative real).
	ErrDomain = errors.New("jet: standard part outside function domain")

	// ErrNilJet indicates a nil *Jet operand.
	ErrNilJet = errors.New("jet: nil jet")

	// ErrNilPool indicates a nil pool, or a pool of the wrong coefficient ring.
	ErrNilPool = errors.New("jet: nil or mismatched pool")

	// ErrReleased indicates use of a jet after Release.
	ErrReleased = errors.New("jet: jet already released")

	// ErrFrozen indicates an attempt to mutate a frozen jet.
	ErrFrozen = errors.New("jet: jet is frozen")
)

// jetErrorf wraps err with the detecting operation's name.
func jetErrorf(op string, err error) error {
	return fmt.Errorf("jet.%s: %w", op, err)
}
