// SPDX-License-Identifier: MIT

package env

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mxjet/monomial"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/combin"
)

// Environment is the immutable context shared by every jet built from it.
//   - numVars, maxOrder and ref never change after New.
//   - refs counts live references: one for the creator plus one per jet.
type Environment struct {
	numVars  int
	maxOrder int
	ref      []float64 // owned copy, len == numVars
	name     string
	log      *zap.Logger
	refs     atomic.Int32
}

// New creates an Environment with numVars variables, truncation order
// maxOrder and expansion point ref.
//
// Implementation:
//   - Stage 1: validate counts against monomial limits and ref length.
//   - Stage 2: reject NaN/±Inf coordinates.
//   - Stage 3: copy ref, resolve options, hand one reference to the caller.
//
// Errors: ErrInvalidEnvironment (wrapped with the violated condition).
// Complexity: O(numVars).
func New(numVars, maxOrder int, ref []float64, opts ...Option) (*Environment, error) {
	switch {
	case maxOrder < 0:
		return nil, envErrorf("New: negative max order", ErrInvalidEnvironment)
	case maxOrder > monomial.MaxDegree:
		return nil, envErrorf("New: max order beyond monomial.MaxDegree", ErrInvalidEnvironment)
	case numVars < 0:
		return nil, envErrorf("New: negative variable count", ErrInvalidEnvironment)
	case numVars > monomial.Capacity:
		return nil, envErrorf("New: variable count beyond monomial.Capacity", ErrInvalidEnvironment)
	case len(ref) != numVars:
		return nil, envErrorf("New: reference point length", ErrInvalidEnvironment)
	}
	for _, x := range ref {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, envErrorf("New: non-finite reference coordinate", ErrInvalidEnvironment)
		}
	}

	o := gatherOptions(opts)
	e := &Environment{
		numVars:  numVars,
		maxOrder: maxOrder,
		ref:      append([]float64(nil), ref...),
		name:     o.name,
		log:      o.logger,
	}
	e.refs.Store(1) // creator's reference
	e.log.Debug("environment created",
		zap.String("name", e.name),
		zap.Int("numVars", numVars),
		zap.Int("maxOrder", maxOrder),
		zap.Float64s("ref", e.ref),
	)

	return e, nil
}

// NumVars returns the number of variables.
func (e *Environment) NumVars() int { return e.numVars }

// MaxOrder returns the truncation order.
func (e *Environment) MaxOrder() int { return e.maxOrder }

// Name returns the label given by WithName.
func (e *Environment) Name() string { return e.name }

// ReferencePoint returns a copy of the expansion point.
func (e *Environment) ReferencePoint() []float64 {
	return append([]float64(nil), e.ref...)
}

// Reference returns coordinate i of the expansion point, or 0 when i is
// out of range.
func (e *Environment) Reference(i int) float64 {
	if i < 0 || i >= e.numVars {
		return 0
	}

	return e.ref[i]
}

// MonomialCount returns C(numVars+maxOrder, maxOrder), the number of
// monomials of degree ≤ maxOrder: the largest term count any jet over e
// can reach. Saturates at math.MaxInt for very large environments.
func (e *Environment) MonomialCount() int {
	v := combin.GeneralizedBinomial(float64(e.numVars+e.maxOrder), float64(e.maxOrder))
	if v >= math.MaxInt {
		return math.MaxInt
	}

	return int(math.Round(v))
}

// Retain registers one more reference to e.
// Errors: ErrClosed once the last reference has been released.
func (e *Environment) Retain() error {
	for {
		n := e.refs.Load()
		if n <= 0 {
			return envErrorf("Retain", ErrClosed)
		}
		if e.refs.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

// Release drops one reference. The environment closes when the count
// reaches zero.
// Errors: ErrClosed when called on an already closed environment.
func (e *Environment) Release() error {
	for {
		n := e.refs.Load()
		if n <= 0 {
			return envErrorf("Release", ErrClosed)
		}
		if !e.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 {
			e.log.Debug("environment closed", zap.String("name", e.name))
		}

		return nil
	}
}

// Refs returns the current reference count.
func (e *Environment) Refs() int { return int(e.refs.Load()) }

// Closed reports whether the last reference was released.
func (e *Environment) Closed() bool { return e.refs.Load() <= 0 }

// String implements fmt.Stringer.
func (e *Environment) String() string {
	return fmt.Sprintf("%s{vars=%d order=%d ref=%v}", e.name, e.numVars, e.maxOrder, e.ref)
}

// Compatible reports whether a and b are the same environment. Two
// environments built from equal arguments are not compatible.
func Compatible(a, b *Environment) bool {
	return a != nil && a == b
}
