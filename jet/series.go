// SPDX-License-Identifier: MIT

package jet

import (
	"sort"

	"github.com/google/btree"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
	"go.uber.org/atomic"
)

// series is the shared term sequence behind one or more Jet handles.
//   - hs lists pool handles in canonical (graded-lex) order.
//   - no stored coefficient is zero and no exponent repeats.
//   - shares counts the handles pointing at this sequence; records go back
//     to the pool when it drops to zero.
type series[T Scalar] struct {
	pool   *pool.Pool[T]
	hs     []pool.Handle
	shares atomic.Int32
}

func newSeries[T Scalar](p *pool.Pool[T], capHint int) *series[T] {
	s := &series[T]{pool: p, hs: make([]pool.Handle, 0, capHint)}
	s.shares.Store(1)

	return s
}

func (s *series[T]) len() int { return len(s.hs) }

func (s *series[T]) rec(i int) *pool.Record[T] { return s.pool.Slot(s.hs[i]) }

func (s *series[T]) exp(i int) monomial.Exponents { return s.rec(i).Exp }

func (s *series[T]) coef(i int) T { return s.rec(i).Coef }

// constant returns the standard part, or 0 when absent.
func (s *series[T]) constant() T {
	if len(s.hs) > 0 && s.exp(0).IsZero() {
		return s.coef(0)
	}

	return 0
}

// push appends a term known to follow every stored term. Zero
// coefficients are skipped so callers need not filter.
func (s *series[T]) push(e monomial.Exponents, c T) {
	if c == 0 {
		return
	}
	h := s.pool.Acquire()
	r := s.pool.Slot(h)
	r.Exp, r.Coef = e, c
	s.hs = append(s.hs, h)
}

// search returns the position of e, or where it would be inserted.
// Complexity: O(log n).
func (s *series[T]) search(e monomial.Exponents) (int, bool) {
	i := sort.Search(len(s.hs), func(k int) bool { return !monomial.Less(s.exp(k), e) })

	return i, i < len(s.hs) && s.exp(i) == e
}

// insertAt places a new non-zero term at position i.
func (s *series[T]) insertAt(i int, e monomial.Exponents, c T) {
	h := s.pool.Acquire()
	r := s.pool.Slot(h)
	r.Exp, r.Coef = e, c
	s.hs = append(s.hs, 0)
	copy(s.hs[i+1:], s.hs[i:])
	s.hs[i] = h
}

// removeAt drops the term at position i and recycles its record.
func (s *series[T]) removeAt(i int) {
	s.release(s.hs[i])
	s.hs = append(s.hs[:i], s.hs[i+1:]...)
}

// truncate keeps the first n terms.
func (s *series[T]) truncate(n int) {
	for _, h := range s.hs[n:] {
		s.release(h)
	}
	s.hs = s.hs[:n]
}

// clone copies every record into fresh slots of p.
// Complexity: O(n).
func (s *series[T]) clone(p *pool.Pool[T]) *series[T] {
	out := newSeries(p, len(s.hs))
	for i := range s.hs {
		r := s.rec(i)
		out.push(r.Exp, r.Coef)
	}

	return out
}

// drop releases one share; the last share returns all records.
func (s *series[T]) drop() {
	if s.shares.Dec() > 0 {
		return
	}
	for _, h := range s.hs {
		s.release(h)
	}
	s.hs = nil
}

// release returns h to the pool. Handles stored in a series always come
// from Acquire on the same pool, so a failure means corrupted bookkeeping.
func (s *series[T]) release(h pool.Handle) {
	if err := s.pool.Release(h); err != nil {
		panic(err)
	}
}

// terms copies the sequence out as values.
func (s *series[T]) terms() []Term[T] {
	out := make([]Term[T], len(s.hs))
	for i := range s.hs {
		r := s.rec(i)
		out[i] = Term[T]{Exp: r.Exp, Coef: r.Coef}
	}

	return out
}

// accumulator collects out-of-order contributions keyed by exponent and
// emits them in canonical order. Products and compositions feed it, since
// their partial terms arrive unsorted and collide on shared exponents.
type accumulator[T Scalar] struct {
	tree *btree.BTreeG[Term[T]]
}

// accDegree is the B-tree node degree; small nodes suit the short keys.
const accDegree = 16

func newAccumulator[T Scalar]() *accumulator[T] {
	return &accumulator[T]{
		tree: btree.NewG[Term[T]](accDegree, func(a, b Term[T]) bool { return monomial.Less(a.Exp, b.Exp) }),
	}
}

// add accumulates c at e.
// Complexity: O(log n).
func (a *accumulator[T]) add(e monomial.Exponents, c T) {
	if c == 0 {
		return
	}
	if t, ok := a.tree.Get(Term[T]{Exp: e}); ok {
		t.Coef += c
		a.tree.ReplaceOrInsert(t)

		return
	}
	a.tree.ReplaceOrInsert(Term[T]{Exp: e, Coef: c})
}

// addSeries accumulates c·s.
func (a *accumulator[T]) addSeries(s *series[T], c T) {
	for i := 0; i < s.len(); i++ {
		r := s.rec(i)
		a.add(r.Exp, c*r.Coef)
	}
}

// flush writes the surviving (non-zero) terms into a new series of p.
func (a *accumulator[T]) flush(p *pool.Pool[T]) *series[T] {
	out := newSeries(p, a.tree.Len())
	a.tree.Ascend(func(t Term[T]) bool {
		out.push(t.Exp, t.Coef)
		return true
	})

	return out
}
