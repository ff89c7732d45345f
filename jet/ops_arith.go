// SPDX-License-Identifier: MIT

// Package jet - ring arithmetic.
//
// Determinism & Policy:
//   - Operands are never mutated; every result is a fresh handle.
//   - Results draw records from the left operand's pool unless WithPool is given.
//   - AccurateWeight of a result is the minimum over the operands.
//   - Monomials above the environment's order are dropped: this is the
//     defining truncation of the algebra, not an error.
package jet

import (
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
)

// ---------- kernels (series level, no validation) ----------

// merge returns a + sign·b by a two-pointer walk over both canonical
// sequences. Terms cancelling to exactly zero vanish.
// Complexity: O(len(a) + len(b)).
func merge[T Scalar](a, b *series[T], sign T, p *pool.Pool[T]) *series[T] {
	out := newSeries(p, a.len()+b.len())
	i, k := 0, 0
	for i < a.len() && k < b.len() {
		ra, rb := a.rec(i), b.rec(k)
		switch {
		case ra.Exp == rb.Exp:
			out.push(ra.Exp, ra.Coef+sign*rb.Coef)
			i++
			k++
		case monomial.Less(ra.Exp, rb.Exp):
			out.push(ra.Exp, ra.Coef)
			i++
		default:
			out.push(rb.Exp, sign*rb.Coef)
			k++
		}
	}
	for ; i < a.len(); i++ {
		out.push(a.exp(i), a.coef(i))
	}
	for ; k < b.len(); k++ {
		out.push(b.exp(k), sign*b.coef(k))
	}

	return out
}

// product returns the truncated product a·b.
//
// Implementation:
//   - Stage 1: for each term of a, walk b in graded order and stop as soon
//     as the degree sum exceeds maxOrder (every later term of b is heavier).
//   - Stage 2: accumulate partial products by exponent in a B-tree.
//   - Stage 3: flush surviving terms in canonical order.
//
// Complexity: O(|a|·|b|·log|a·b|) in the worst case.
func product[T Scalar](a, b *series[T], maxOrder int, p *pool.Pool[T]) *series[T] {
	if a.len() == 0 || b.len() == 0 {
		return newSeries(p, 0)
	}
	acc := newAccumulator[T]()
	for i := 0; i < a.len(); i++ {
		ra := a.rec(i)
		budget := maxOrder - ra.Exp.Degree()
		if budget < 0 {
			break // a is graded too
		}
		for k := 0; k < b.len(); k++ {
			rb := b.rec(k)
			if rb.Exp.Degree() > budget {
				break
			}
			acc.add(monomial.Add(ra.Exp, rb.Exp), ra.Coef*rb.Coef)
		}
	}

	return acc.flush(p)
}

// scaled returns c·a.
func scaled[T Scalar](a *series[T], c T, p *pool.Pool[T]) *series[T] {
	out := newSeries(p, a.len())
	if c == 0 {
		return out
	}
	for i := 0; i < a.len(); i++ {
		out.push(a.exp(i), c*a.coef(i))
	}

	return out
}

// shifted returns a + c (c added to the standard part).
func shifted[T Scalar](a *series[T], c T, zero monomial.Exponents, p *pool.Pool[T]) *series[T] {
	out := newSeries(p, a.len()+1)
	start := 0
	if a.len() > 0 && a.exp(0).IsZero() {
		out.push(zero, a.coef(0)+c)
		start = 1
	} else {
		out.push(zero, c)
	}
	for i := start; i < a.len(); i++ {
		out.push(a.exp(i), a.coef(i))
	}

	return out
}

// band returns the terms of a with lo ≤ degree ≤ hi.
func band[T Scalar](a *series[T], lo, hi int, p *pool.Pool[T]) *series[T] {
	out := newSeries(p, a.len())
	for i := 0; i < a.len(); i++ {
		d := a.exp(i).Degree()
		if d > hi {
			break
		}
		if d >= lo {
			out.push(a.exp(i), a.coef(i))
		}
	}

	return out
}

// ---------- public algebra ----------

// Add returns a + b.
// Errors: ErrNilJet, ErrReleased, ErrEnvironmentMismatch, ErrNilPool.
// Complexity: O(len(a) + len(b)).
func Add[T Scalar](a, b *Jet[T], opts ...Option) (*Jet[T], error) {
	if err := checkPair("Add", a, b); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Add", err)
	}

	return wrap(a.env, merge(a.s, b.s, 1, p), min(a.accurate, b.accurate)), nil
}

// Sub returns a − b.
func Sub[T Scalar](a, b *Jet[T], opts ...Option) (*Jet[T], error) {
	if err := checkPair("Sub", a, b); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Sub", err)
	}

	return wrap(a.env, merge(a.s, b.s, -1, p), min(a.accurate, b.accurate)), nil
}

// lowDegree returns the degree of the lowest term of s, or maxOrder+1 when
// s is empty.
func lowDegree[T Scalar](s *series[T], maxOrder int) int {
	if s.len() == 0 {
		return maxOrder + 1
	}

	return s.exp(0).Degree()
}

// productAccuracy returns the accurate weight of a·b. An error of degree
// acc(a)+1 in a is multiplied by b, whose lowest term has degree low(b),
// so it first shows at acc(a)+1+low(b); likewise for b.
func productAccuracy[T Scalar](a *series[T], accA int, b *series[T], accB, maxOrder int) int {
	return min(accA+lowDegree(b, maxOrder), accB+lowDegree(a, maxOrder), maxOrder)
}

// Mul returns the product a·b.
//
//   - AccurateWeight is min(acc(a)+low(b), acc(b)+low(a), MaxOrder), where
//     low is the degree of the lowest non-zero term: a nilpotent factor
//     raises the accuracy of the other operand.
//   - The product is truncated at that weight: a pair of terms contributes
//     only when their degrees sum to at most AccurateWeight.
func Mul[T Scalar](a, b *Jet[T], opts ...Option) (*Jet[T], error) {
	if err := checkPair("Mul", a, b); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Mul", err)
	}
	accurate := productAccuracy(a.s, a.accurate, b.s, b.accurate, a.env.MaxOrder())

	return wrap(a.env, product(a.s, b.s, accurate, p), accurate), nil
}

// Neg returns −a.
func Neg[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return Scaled(a, -1, opts...)
}

// Scaled returns c·a.
func Scaled[T Scalar](a *Jet[T], c T, opts ...Option) (*Jet[T], error) {
	if err := a.check("Scaled"); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Scaled", err)
	}

	return wrap(a.env, scaled(a.s, c, p), a.accurate), nil
}

// AddScalar returns a + c.
func AddScalar[T Scalar](a *Jet[T], c T, opts ...Option) (*Jet[T], error) {
	if err := a.check("AddScalar"); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("AddScalar", err)
	}

	return wrap(a.env, shifted(a.s, c, zeroExp(a.env), p), a.accurate), nil
}

// Filter returns the terms of a whose degree lies in [lo, hi].
// AccurateWeight becomes min(AccurateWeight(a), hi).
func Filter[T Scalar](a *Jet[T], lo, hi int, opts ...Option) (*Jet[T], error) {
	if err := a.check("Filter"); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf("Filter", err)
	}

	return wrap(a.env, band(a.s, lo, hi, p), min(a.accurate, max(hi, -1))), nil
}

// Truncate returns the terms of a up to degree order.
func Truncate[T Scalar](a *Jet[T], order int, opts ...Option) (*Jet[T], error) {
	return Filter(a, 0, order, opts...)
}

// Pow returns aⁿ by binary exponentiation. A negative n inverts a first
// (see Inverse for errors and accuracy). For n ≥ 1 the accuracy follows
// Mul: acc(a) + (n−1)·low(a), capped at MaxOrder, and the result is
// truncated there.
func Pow[T Scalar](a *Jet[T], n int, opts ...Option) (*Jet[T], error) {
	if err := a.check("Pow"); err != nil {
		return nil, err
	}
	c := gatherOptions(opts)
	p, err := resultPool(c, a.s.pool)
	if err != nil {
		return nil, jetErrorf("Pow", err)
	}
	base, accurate := a.s, a.accurate
	if n < 0 {
		inv, acc, err := inverse(a, c.maxIter, p)
		if err != nil {
			return nil, jetErrorf("Pow", err)
		}
		defer inv.drop()
		base, accurate, n = inv, acc, -n
	}
	limit := a.env.MaxOrder()
	if n > 0 {
		if low := lowDegree(base, limit); low > limit {
			accurate = limit // 0ⁿ
		} else {
			accurate = min(accurate+(n-1)*low, limit)
		}
		limit = accurate
	}

	return wrap(a.env, power(base, n, limit, zeroExp(a.env), p), accurate), nil
}

// power computes bⁿ for n ≥ 0, freeing every intermediate.
func power[T Scalar](b *series[T], n, maxOrder int, zero monomial.Exponents, p *pool.Pool[T]) *series[T] {
	result := newSeries(p, 1)
	result.push(zero, 1)
	sq := b.clone(p)
	for n > 0 {
		if n&1 == 1 {
			next := product(result, sq, maxOrder, p)
			result.drop()
			result = next
		}
		n >>= 1
		if n > 0 {
			next := product(sq, sq, maxOrder, p)
			sq.drop()
			sq = next
		}
	}
	sq.drop()

	return result
}
