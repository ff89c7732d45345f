// SPDX-License-Identifier: MIT

// Package jet - differentiation, integration, and point queries.
//
// Shifting one variable's exponent by ±1 in every term keeps the relative
// graded-lex order of the surviving terms, so results are written in a
// single pass without re-sorting.
package jet

import (
	"github.com/katalvlaran/mxjet/monomial"
)

// Differentiate returns ∂a/∂x_v. Terms constant in x_v vanish; the rest
// lose one power of x_v and are scaled by the power they had.
// AccurateWeight drops by one (−1 when a was accurate only through 0).
//
// Errors: ErrIndexOutOfRange; lifecycle errors.
// Complexity: O(len(a)).
func Differentiate[T Scalar](a *Jet[T], v int, opts ...Option) (*Jet[T], error) {
	if err := a.check("Differentiate"); err != nil {
		return nil, err
	}
	if v < 0 || v >= a.env.NumVars() {
		return nil, jetErrorf("Differentiate", ErrIndexOutOfRange)
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Differentiate", err)
	}
	out := newSeries(p, a.s.len())
	for i := 0; i < a.s.len(); i++ {
		r := a.s.rec(i)
		k := r.Exp.At(v)
		if k == 0 {
			continue
		}
		e, _ := r.Exp.Shift(v, -1)
		out.push(e, r.Coef*fromFloat[T](float64(k)))
	}

	return wrap(a.env, out, a.accurate-1), nil
}

// Integrate returns the antiderivative of a in x_v that vanishes on
// x_v = r_v. A term already at the environment's order cannot gain a power
// and is dropped: that is ordinary truncation.
// AccurateWeight becomes min(AccurateWeight(a)+1, MaxOrder).
//
// Errors: ErrIndexOutOfRange; lifecycle errors.
func Integrate[T Scalar](a *Jet[T], v int, opts ...Option) (*Jet[T], error) {
	if err := a.check("Integrate"); err != nil {
		return nil, err
	}
	if v < 0 || v >= a.env.NumVars() {
		return nil, jetErrorf("Integrate", ErrIndexOutOfRange)
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Integrate", err)
	}
	n := a.env.MaxOrder()
	out := newSeries(p, a.s.len())
	for i := 0; i < a.s.len(); i++ {
		r := a.s.rec(i)
		if r.Exp.Degree() >= n {
			break
		}
		e, _ := r.Exp.Shift(v, 1)
		out.push(e, r.Coef/fromFloat[T](float64(e.At(v))))
	}

	return wrap(a.env, out, min(a.accurate+1, n)), nil
}

// Derivative returns the partial derivative ∂^|m| a / ∂x^m at the
// reference point: the coefficient at m times Π m_i!.
// Errors: ErrDimensionMismatch if m.Len() ≠ NumVars; lifecycle errors.
func Derivative[T Scalar](a *Jet[T], m monomial.Exponents) (T, error) {
	if err := a.check("Derivative"); err != nil {
		return 0, err
	}
	if m.Len() != a.env.NumVars() {
		return 0, jetErrorf("Derivative", ErrDimensionMismatch)
	}
	c := a.Coefficient(m)
	if c == 0 {
		return 0, nil
	}
	f := 1.0
	for i := 0; i < m.Len(); i++ {
		for k := 2; k <= m.At(i); k++ {
			f *= float64(k)
		}
	}

	return c * fromFloat[T](f), nil
}

// Evaluate returns the polynomial value Σ c·Π (x_i − r_i)^{e_i} at point,
// where r is the environment's reference point.
// Errors: ErrDimensionMismatch if len(point) ≠ NumVars; lifecycle errors.
// Complexity: O(n·MaxOrder + len(a)·n).
func Evaluate[T Scalar](a *Jet[T], point []T) (T, error) {
	if err := a.check("Evaluate"); err != nil {
		return 0, err
	}
	n := a.env.NumVars()
	if len(point) != n {
		return 0, jetErrorf("Evaluate", ErrDimensionMismatch)
	}
	order := a.env.MaxOrder()
	// pw[i][k] = (x_i − r_i)^k
	pw := make([][]T, n)
	for i := range pw {
		d := point[i] - fromFloat[T](a.env.Reference(i))
		pw[i] = make([]T, order+1)
		pw[i][0] = 1
		for k := 1; k <= order; k++ {
			pw[i][k] = pw[i][k-1] * d
		}
	}

	var sum T
	for e, c := range a.All() {
		t := c
		for i := 0; i < n; i++ {
			if k := e.At(i); k > 0 {
				t *= pw[i][k]
			}
		}
		sum += t
	}

	return sum, nil
}
