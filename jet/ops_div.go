// SPDX-License-Identifier: MIT

// Package jet - multiplicative inverse and division.
//
// Algorithm:
//
//	Newton's iteration for 1/a around the standard part a₀:
//
//	    v₀ = 1/a₀,   v_{k+1} = v_k · (2 − a·v_k).
//
//	If v_k agrees with 1/a through degree m, then 1 − a·v_k starts at
//	degree m+1 and v_{k+1} agrees through degree 2m+1. Starting from
//	m = 0 the result is exact through degree 2^k − 1 after k steps, so
//
//	    AccurateWeight(1/a) = min(AccurateWeight(a), 2^k − 1, MaxOrder).
//
//	Iteration stops as soon as 2^k − 1 ≥ MaxOrder, or after the number of
//	steps allowed by WithMaxIterations.
package jet

import (
	"github.com/katalvlaran/mxjet/pool"
)

// inverse runs the Newton iteration and returns the series, its accurate
// weight, and ErrDivisionByZeroSeries when a₀ = 0.
func inverse[T Scalar](a *Jet[T], maxIter int, p *pool.Pool[T]) (*series[T], int, error) {
	a0 := a.StandardPart()
	if a0 == 0 {
		return nil, 0, ErrDivisionByZeroSeries
	}
	n := a.env.MaxOrder()
	zero := zeroExp(a.env)

	v := newSeries(p, 1)
	v.push(zero, 1/a0)
	exact := 0
	for k := 0; exact < n && k < maxIter; k++ {
		av := product(a.s, v, n, p)
		// 2 − a·v
		residual := newSeries(p, av.len()+1)
		residual.push(zero, 2-av.constant())
		for i := 0; i < av.len(); i++ {
			if e := av.exp(i); !e.IsZero() {
				residual.push(e, -av.coef(i))
			}
		}
		av.drop()
		next := product(v, residual, n, p)
		residual.drop()
		v.drop()
		v = next
		exact = 2*exact + 1
	}

	return v, min(a.accurate, exact, n), nil
}

// Inverse returns 1/a.
// Errors: ErrDivisionByZeroSeries if StandardPart(a) = 0; lifecycle errors.
// Complexity: O(log MaxOrder) truncated products.
func Inverse[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	if err := a.check("Inverse"); err != nil {
		return nil, err
	}
	c := gatherOptions(opts)
	p, err := resultPool(c, a.s.pool)
	if err != nil {
		return nil, jetErrorf("Inverse", err)
	}
	s, acc, err := inverse(a, c.maxIter, p)
	if err != nil {
		return nil, jetErrorf("Inverse", err)
	}

	return wrap(a.env, s, acc), nil
}

// Div returns a/b = a · (1/b). AccurateWeight combines a's with that of
// the inverse of b by the rule of Mul.
// Errors: ErrEnvironmentMismatch, ErrDivisionByZeroSeries; lifecycle errors.
func Div[T Scalar](a, b *Jet[T], opts ...Option) (*Jet[T], error) {
	if err := checkPair("Div", a, b); err != nil {
		return nil, err
	}
	c := gatherOptions(opts)
	p, err := resultPool(c, a.s.pool)
	if err != nil {
		return nil, jetErrorf("Div", err)
	}
	inv, acc, err := inverse(b, c.maxIter, p)
	if err != nil {
		return nil, jetErrorf("Div", err)
	}
	defer inv.drop()
	accurate := productAccuracy(a.s, a.accurate, inv, acc, a.env.MaxOrder())

	return wrap(a.env, product(a.s, inv, accurate, p), accurate), nil
}
