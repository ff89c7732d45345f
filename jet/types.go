// SPDX-License-Identifier: MIT

// Package jet - domain types shared by the representation and the algebra.
package jet

import (
	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
)

// Scalar is the coefficient ring of a jet: float64 (real) or complex128.
type Scalar = pool.Scalar

// Term is one (monomial, coefficient) pair as seen by callers. Terms are
// values; they never alias pool storage.
type Term[T Scalar] struct {
	Exp  monomial.Exponents
	Coef T
}

// Jet is a handle on a truncated power series over one Environment.
//   - env is retained for the lifetime of the handle.
//   - s is the term sequence, possibly shared with other handles
//     (copy-on-write; see own).
//   - accurate is the highest degree whose coefficients are trustworthy.
//   - frozen forbids mutation so the jet can be read from many goroutines.
//
// The zero value is not usable; build jets with Zero, Constant, Variable
// or FromTerms.
type Jet[T Scalar] struct {
	env      *env.Environment
	s        *series[T]
	accurate int
	frozen   bool
}

// Real is a jet with float64 coefficients.
type Real = Jet[float64]

// Complex is a jet with complex128 coefficients.
type Complex = Jet[complex128]
