// SPDX-License-Identifier: MIT

// Package jet - core representation: construction, inspection, in-place
// mutation under copy-on-write, and lifecycle.
package jet

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
)

// ---------- construction ----------

// newJet validates (e, p), retains e and returns an empty jet.
func newJet[T Scalar](op string, e *env.Environment, p *pool.Pool[T], capHint int) (*Jet[T], error) {
	if e == nil {
		return nil, jetErrorf(op, ErrInvalidEnvironment)
	}
	if p == nil {
		return nil, jetErrorf(op, ErrNilPool)
	}
	if err := e.Retain(); err != nil {
		return nil, fmt.Errorf("jet.%s: %w: %w", op, ErrInvalidEnvironment, err)
	}

	return &Jet[T]{env: e, s: newSeries(p, capHint), accurate: e.MaxOrder()}, nil
}

// wrap builds a handle over a freshly computed series. The environment is
// already held by an operand, so retaining cannot fail.
func wrap[T Scalar](e *env.Environment, s *series[T], accurate int) *Jet[T] {
	if err := e.Retain(); err != nil {
		panic(err)
	}

	return &Jet[T]{env: e, s: s, accurate: accurate}
}

// Zero returns the zero series over e, with records drawn from p.
// Errors: ErrInvalidEnvironment (nil or closed e), ErrNilPool.
func Zero[T Scalar](e *env.Environment, p *pool.Pool[T]) (*Jet[T], error) {
	return newJet("Zero", e, p, 0)
}

// Constant returns the series with standard part v and no other term.
func Constant[T Scalar](e *env.Environment, p *pool.Pool[T], v T) (*Jet[T], error) {
	j, err := newJet("Constant", e, p, 1)
	if err != nil {
		return nil, err
	}
	j.s.push(zeroExp(e), v)

	return j, nil
}

// Variable returns coordinate i as a series: its standard part is the
// reference coordinate ref[i] and its only other term is the linear
// monomial x_i with coefficient 1.
//
// Errors: ErrIndexOutOfRange if i < 0 or i ≥ e.NumVars(); constructor errors.
func Variable[T Scalar](e *env.Environment, p *pool.Pool[T], i int) (*Jet[T], error) {
	if e != nil && (i < 0 || i >= e.NumVars()) {
		return nil, jetErrorf("Variable", ErrIndexOutOfRange)
	}
	j, err := newJet("Variable", e, p, 2)
	if err != nil {
		return nil, err
	}
	j.s.push(zeroExp(e), fromFloat[T](e.Reference(i)))
	if e.MaxOrder() >= 1 {
		u, _ := monomial.Unit(e.NumVars(), i)
		j.s.push(u, 1)
	}

	return j, nil
}

// FromTerms builds a jet by adding each term in turn (AddTerm semantics:
// accumulation, zero removal, silent truncation above the order).
func FromTerms[T Scalar](e *env.Environment, p *pool.Pool[T], terms ...Term[T]) (*Jet[T], error) {
	j, err := newJet("FromTerms", e, p, len(terms))
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		if err = j.AddTerm(t.Exp, t.Coef); err != nil {
			j.Release()
			return nil, err
		}
	}

	return j, nil
}

// zeroExp is the constant monomial of e.
func zeroExp(e *env.Environment) monomial.Exponents {
	x, _ := monomial.New(e.NumVars())
	return x
}

// ---------- validation ----------

// check rejects nil and released handles.
func (j *Jet[T]) check(op string) error {
	if j == nil {
		return jetErrorf(op, ErrNilJet)
	}
	if j.s == nil {
		return jetErrorf(op, ErrReleased)
	}

	return nil
}

// checkPair validates two operands and their environment identity.
func checkPair[T Scalar](op string, a, b *Jet[T]) error {
	if err := a.check(op); err != nil {
		return err
	}
	if err := b.check(op); err != nil {
		return err
	}
	if !env.Compatible(a.env, b.env) {
		return jetErrorf(op, ErrEnvironmentMismatch)
	}

	return nil
}

// ---------- inspection ----------

// Env returns the environment of j (nil once released).
func (j *Jet[T]) Env() *env.Environment { return j.env }

// Pool returns the pool holding j's records (nil once released).
func (j *Jet[T]) Pool() *pool.Pool[T] {
	if j.s == nil {
		return nil
	}

	return j.s.pool
}

// Len returns the number of stored (non-zero) terms.
func (j *Jet[T]) Len() int {
	if j == nil || j.s == nil {
		return 0
	}

	return j.s.len()
}

// All returns a lazy iterator over the terms in canonical order. The
// sequence is finite and restartable; it must not be consumed while j is
// being mutated. A released jet yields nothing.
func (j *Jet[T]) All() iter.Seq2[monomial.Exponents, T] {
	return func(yield func(monomial.Exponents, T) bool) {
		if j == nil || j.s == nil {
			return
		}
		s := j.s
		for i := 0; i < s.len(); i++ {
			r := s.rec(i)
			if !yield(r.Exp, r.Coef) {
				return
			}
		}
	}
}

// Terms returns a copy of the terms in canonical order.
func (j *Jet[T]) Terms() []Term[T] {
	if j == nil || j.s == nil {
		return nil
	}

	return j.s.terms()
}

// StandardPart returns the constant coefficient, or 0 when absent.
func (j *Jet[T]) StandardPart() T {
	if j.Len() == 0 {
		return 0
	}

	return j.s.constant()
}

// Coefficient returns the coefficient stored at e, or 0.
func (j *Jet[T]) Coefficient(e monomial.Exponents) T {
	if j.Len() == 0 {
		return 0
	}
	if i, ok := j.s.search(e); ok {
		return j.s.coef(i)
	}

	return 0
}

// Weight returns the highest degree present, or -1 for the zero series.
// Complexity: O(1): the last term in graded order has the highest degree.
func (j *Jet[T]) Weight() int {
	n := j.Len()
	if n == 0 {
		return -1
	}

	return j.s.exp(n - 1).Degree()
}

// AccurateWeight returns the highest degree whose coefficients are
// trustworthy. Terms above it are kept but must not be relied upon.
func (j *Jet[T]) AccurateWeight() int { return j.accurate }

// IsZero reports whether j has no terms.
func (j *Jet[T]) IsZero() bool { return j.Len() == 0 }

// String renders j as a sum of "c·(e0,e1,...)" terms.
func (j *Jet[T]) String() string {
	if j.Len() == 0 {
		return "0"
	}
	var sb strings.Builder
	for e, c := range j.All() {
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%v·%s", c, e)
	}

	return sb.String()
}

// ---------- copy-on-write mutation ----------

// own makes j the unique holder of its term sequence, copying the records
// when the sequence is shared. Every mutator calls it first.
func (j *Jet[T]) own(op string) error {
	if err := j.check(op); err != nil {
		return err
	}
	if j.frozen {
		return jetErrorf(op, ErrFrozen)
	}
	if j.s.shares.Load() > 1 {
		priv := j.s.clone(j.s.pool)
		j.s.drop()
		j.s = priv
	}

	return nil
}

// AddTerm accumulates c at monomial e.
//   - A slot whose coefficient becomes exactly zero is removed.
//   - A monomial above the environment's order is silently discarded.
//
// Errors: ErrDimensionMismatch if e.Len() ≠ NumVars; lifecycle errors.
// Complexity: O(log n) search + O(n) slice shift on insert/remove.
func (j *Jet[T]) AddTerm(e monomial.Exponents, c T) error {
	if err := j.check("AddTerm"); err != nil {
		return err
	}
	if j.frozen {
		return jetErrorf("AddTerm", ErrFrozen)
	}
	if e.Len() != j.env.NumVars() {
		return jetErrorf("AddTerm", ErrDimensionMismatch)
	}
	if e.Degree() > j.env.MaxOrder() || c == 0 {
		return nil
	}
	if err := j.own("AddTerm"); err != nil {
		return err
	}
	i, found := j.s.search(e)
	if !found {
		j.s.insertAt(i, e, c)
		return nil
	}
	r := j.s.rec(i)
	r.Coef += c
	if r.Coef == 0 {
		j.s.removeAt(i)
	}

	return nil
}

// SetStandardPart overwrites the constant coefficient.
func (j *Jet[T]) SetStandardPart(v T) error {
	if err := j.own("SetStandardPart"); err != nil {
		return err
	}
	z := zeroExp(j.env)
	i, found := j.s.search(z)
	switch {
	case found && v == 0:
		j.s.removeAt(i)
	case found:
		j.s.rec(i).Coef = v
	case v != 0:
		j.s.insertAt(i, z, v)
	}

	return nil
}

// Scale multiplies every coefficient by c in place.
func (j *Jet[T]) Scale(c T) error {
	if err := j.own("Scale"); err != nil {
		return err
	}
	if c == 0 {
		j.s.truncate(0)
		return nil
	}
	for i := 0; i < j.s.len(); i++ {
		r := j.s.rec(i)
		r.Coef *= c
	}
	// underflow
	for i := j.s.len() - 1; i >= 0; i-- {
		if j.s.coef(i) == 0 {
			j.s.removeAt(i)
		}
	}

	return nil
}

// Negate flips the sign of every coefficient in place.
func (j *Jet[T]) Negate() error {
	if err := j.own("Negate"); err != nil {
		return err
	}
	for i := 0; i < j.s.len(); i++ {
		r := j.s.rec(i)
		r.Coef = -r.Coef
	}

	return nil
}

// TruncateInPlace drops every term above degree order. AccurateWeight is
// lowered to order when it was higher.
func (j *Jet[T]) TruncateInPlace(order int) error {
	if err := j.own("TruncateInPlace"); err != nil {
		return err
	}
	if order < 0 {
		order = -1
	}
	n := j.s.len()
	for n > 0 && j.s.exp(n-1).Degree() > order {
		n--
	}
	j.s.truncate(n)
	j.accurate = min(j.accurate, order)

	return nil
}

// ---------- lifecycle ----------

// Clone returns a new handle sharing j's terms. The first mutation on
// either handle privatises its copy. The clone is never frozen.
// Complexity: O(1).
func (j *Jet[T]) Clone() (*Jet[T], error) {
	if err := j.check("Clone"); err != nil {
		return nil, err
	}
	if err := j.env.Retain(); err != nil {
		return nil, jetErrorf("Clone", err)
	}
	j.s.shares.Inc()

	return &Jet[T]{env: j.env, s: j.s, accurate: j.accurate}, nil
}

// Release drops the handle. Records return to the pool when the last
// sharing handle is released, and the environment loses one reference.
// Releasing twice is a no-op.
func (j *Jet[T]) Release() {
	if j == nil || j.s == nil {
		return
	}
	j.s.drop()
	_ = j.env.Release() // j held a reference, so this cannot report ErrClosed
	j.s = nil
	j.env = nil
}

// Freeze marks j read-only. A frozen jet may be read concurrently by
// many goroutines through the non-mutating algebra, each writing results
// to its own pool (WithPool). Mutators return ErrFrozen.
func (j *Jet[T]) Freeze() { j.frozen = true }

// Frozen reports whether Freeze was called.
func (j *Jet[T]) Frozen() bool { return j.frozen }
