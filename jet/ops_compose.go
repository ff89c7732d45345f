// SPDX-License-Identifier: MIT

// Package jet - composition of series.
//
// Algorithm:
//
//	f lives over E1 and is expanded around E1's reference point r, so
//	substituting g means evaluating f at u_i = g_i − r_i. Each term
//	c·Π x_i^{e_i} of f contributes c·Π u_i^{e_i}; powers of u_i are cached
//	in a table built on demand up to the highest exponent f uses, and
//	the partial products are truncated at E2's order and accumulated in a
//	B-tree keyed by exponent.
//
// Accuracy:
//
//	Only f's terms through AccurateWeight(f) are substituted. When every
//	u_i has zero standard part (g maps the reference point of f onto
//	itself), the dropped terms of f contribute only above degree
//	AccurateWeight(f), so the result is accurate through
//	min(AccurateWeight(g_i), AccurateWeight(f)). Otherwise the dropped
//	terms feed every degree and the result is accurate only through 0.
package jet

import (
	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
)

// powerTable caches u^k per variable.
type powerTable[T Scalar] struct {
	maxOrder int
	pool     *pool.Pool[T]
	u        []*series[T]
	pows     [][]*series[T] // pows[i][k] = u_i^(k+1)
}

// get returns u_i^k for k ≥ 1, extending the table as needed. The table
// keeps ownership of the result.
func (t *powerTable[T]) get(i, k int) *series[T] {
	for len(t.pows[i]) < k {
		if len(t.pows[i]) == 0 {
			t.pows[i] = append(t.pows[i], t.u[i])
			continue
		}
		last := t.pows[i][len(t.pows[i])-1]
		t.pows[i] = append(t.pows[i], product(last, t.u[i], t.maxOrder, t.pool))
	}

	return t.pows[i][k-1]
}

// free drops every cached power and substitution.
func (t *powerTable[T]) free() {
	for i := range t.pows {
		for k, s := range t.pows[i] {
			if k > 0 {
				s.drop() // k = 0 aliases u[i]
			}
		}
	}
	for _, s := range t.u {
		s.drop()
	}
}

// Compose substitutes g into f: the result is f(g₀, …, g_{n−1}) over g's
// environment, truncated at its order.
//
// Errors:
//   - ErrArityMismatch if g.Len() ≠ f.Env().NumVars().
//   - ErrEnvironmentMismatch if a component of g is not over g's environment.
//   - lifecycle errors for f or any component.
//
// Complexity: one truncated product per cached power plus one per
// (term, extra variable) pair of f; grows combinatorially with the order.
func Compose[T Scalar](f *Jet[T], g *Vector[T], opts ...Option) (*Jet[T], error) {
	if err := f.check("Compose"); err != nil {
		return nil, err
	}
	if err := g.check("Compose"); err != nil {
		return nil, err
	}
	n := f.env.NumVars()
	if g.Len() != n {
		return nil, jetErrorf("Compose", ErrArityMismatch)
	}
	for _, c := range g.comps {
		if !env.Compatible(c.env, g.env) {
			return nil, jetErrorf("Compose", ErrEnvironmentMismatch)
		}
	}
	p, err := resultPool(gatherOptions(opts), f.s.pool)
	if err != nil {
		return nil, jetErrorf("Compose", err)
	}

	target := g.env
	zero := zeroExp(target)
	tbl := &powerTable[T]{
		maxOrder: target.MaxOrder(),
		pool:     p,
		u:        make([]*series[T], n),
		pows:     make([][]*series[T], n),
	}
	defer tbl.free()

	accurate, nilpotent := target.MaxOrder(), true
	for i, c := range g.comps {
		tbl.u[i] = shifted(c.s, -fromFloat[T](f.env.Reference(i)), zero, p)
		if tbl.u[i].constant() != 0 {
			nilpotent = false
		}
		accurate = min(accurate, c.accurate)
	}
	if nilpotent {
		accurate = min(accurate, f.accurate)
	} else {
		accurate = 0
	}

	acc := newAccumulator[T]()
	for i := 0; i < f.s.len(); i++ {
		r := f.s.rec(i)
		if r.Exp.Degree() > f.accurate {
			break
		}
		term := substitute(tbl, r.Exp)
		if term == nil {
			acc.add(zero, r.Coef)
			continue
		}
		acc.addSeries(term.s, r.Coef)
		if term.owned {
			term.s.drop()
		}
	}

	return wrap(target, acc.flush(p), accurate), nil
}

// partial is a substituted monomial; owned tells whether the caller must
// drop it or it belongs to the power table.
type partial[T Scalar] struct {
	s     *series[T]
	owned bool
}

// substitute returns Π u_i^{e_i}, or nil for the constant monomial.
func substitute[T Scalar](tbl *powerTable[T], e monomial.Exponents) *partial[T] {
	var cur *partial[T]
	for i := 0; i < e.Len(); i++ {
		k := e.At(i)
		if k == 0 {
			continue
		}
		pw := tbl.get(i, k)
		if cur == nil {
			cur = &partial[T]{s: pw}
			continue
		}
		next := product(cur.s, pw, tbl.maxOrder, tbl.pool)
		if cur.owned {
			cur.s.drop()
		}
		cur = &partial[T]{s: next, owned: true}
	}

	return cur
}
