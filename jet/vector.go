// SPDX-License-Identifier: MIT

package jet

import (
	"fmt"

	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"
)

// Vector is a tuple of jets over one shared Environment, used as a
// multi-dimensional map (e.g. the substitution argument of Compose).
// The vector owns its components: it holds its own frozen handle on each
// one and on the environment, and Release drops all of them.
type Vector[T Scalar] struct {
	env   *env.Environment
	comps []*Jet[T]
}

// NewVector builds a vector over e from comps. Every component is checked
// and all violations are reported together; on success each component is
// cloned (O(1), copy-on-write) and the clone frozen, so the caller keeps
// its own mutable handles.
//
// Errors: ErrInvalidEnvironment (nil or closed e), ErrNilJet, ErrReleased,
// ErrEnvironmentMismatch (component over another environment).
func NewVector[T Scalar](e *env.Environment, comps ...*Jet[T]) (*Vector[T], error) {
	if e == nil || e.Closed() {
		return nil, jetErrorf("NewVector", ErrInvalidEnvironment)
	}
	var errs error
	for i, c := range comps {
		if err := c.check("NewVector"); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("component %d: %w", i, err))
			continue
		}
		if !env.Compatible(c.env, e) {
			errs = multierr.Append(errs, fmt.Errorf("component %d: %w", i, jetErrorf("NewVector", ErrEnvironmentMismatch)))
		}
	}
	if errs != nil {
		return nil, errs
	}
	if err := e.Retain(); err != nil {
		return nil, jetErrorf("NewVector", err)
	}
	v := &Vector[T]{env: e, comps: make([]*Jet[T], 0, len(comps))}
	for _, c := range comps {
		cl, err := c.Clone()
		if err != nil {
			v.Release()
			return nil, err
		}
		cl.Freeze()
		v.comps = append(v.comps, cl)
	}

	return v, nil
}

// Identity returns the vector (x₀, …, x_{n−1}) of the environment's own
// variables. Composing any f with it reproduces f.
func Identity[T Scalar](e *env.Environment, p *pool.Pool[T]) (*Vector[T], error) {
	if e == nil || e.Closed() {
		return nil, jetErrorf("Identity", ErrInvalidEnvironment)
	}
	if err := e.Retain(); err != nil {
		return nil, jetErrorf("Identity", err)
	}
	v := &Vector[T]{env: e, comps: make([]*Jet[T], 0, e.NumVars())}
	for i := 0; i < e.NumVars(); i++ {
		x, err := Variable(e, p, i)
		if err != nil {
			v.Release()
			return nil, err
		}
		x.Freeze()
		v.comps = append(v.comps, x)
	}

	return v, nil
}

// Len returns the number of components.
func (v *Vector[T]) Len() int { return len(v.comps) }

// At returns component i. The handle stays owned by v and is frozen, so
// mutators on it return ErrFrozen; do not Release it. Clone it for a
// mutable copy that outlives v.
func (v *Vector[T]) At(i int) *Jet[T] { return v.comps[i] }

// Env returns the shared environment (nil once released).
func (v *Vector[T]) Env() *env.Environment { return v.env }

// StandardParts returns the standard part of every component: the image
// of the reference point under the map.
func (v *Vector[T]) StandardParts() []T {
	out := make([]T, len(v.comps))
	for i, c := range v.comps {
		out[i] = c.StandardPart()
	}

	return out
}

// Release drops every component and the environment. Releasing twice is
// a no-op.
func (v *Vector[T]) Release() {
	if v == nil || v.env == nil {
		return
	}
	for _, c := range v.comps {
		c.Release()
	}
	v.comps = nil
	_ = v.env.Release()
	v.env = nil
}

// check rejects a nil or released vector and released components.
func (v *Vector[T]) check(op string) error {
	if v == nil || v.env == nil {
		return jetErrorf(op, ErrNilJet)
	}
	for _, c := range v.comps {
		if err := c.check(op); err != nil {
			return err
		}
	}

	return nil
}

// ComposeVector returns the vector (f₀∘g, …, f_{m−1}∘g): the map f
// applied after the map g.
// Errors: as Compose, for the first failing component.
func ComposeVector[T Scalar](f, g *Vector[T], opts ...Option) (*Vector[T], error) {
	if err := f.check("ComposeVector"); err != nil {
		return nil, err
	}
	if err := g.check("ComposeVector"); err != nil {
		return nil, err
	}
	if err := g.env.Retain(); err != nil {
		return nil, jetErrorf("ComposeVector", err)
	}
	out := &Vector[T]{env: g.env, comps: make([]*Jet[T], 0, f.Len())}
	for _, fi := range f.comps {
		h, err := Compose(fi, g, opts...)
		if err != nil {
			out.Release()
			return nil, err
		}
		h.Freeze()
		out.comps = append(out.comps, h)
	}

	return out, nil
}

// Jacobian returns the matrix of first-order coefficients:
// J[i][j] = ∂v_i/∂x_j at the reference point, a Len × NumVars dense
// matrix for the linear-algebra layer.
// Errors: ErrDimensionMismatch for an empty vector or an environment
// without variables.
func Jacobian(v *Vector[float64]) (*mat.Dense, error) {
	if err := v.check("Jacobian"); err != nil {
		return nil, err
	}
	rows, cols := v.Len(), v.env.NumVars()
	if rows == 0 || cols == 0 {
		return nil, jetErrorf("Jacobian", ErrDimensionMismatch)
	}
	units := make([]monomial.Exponents, cols)
	for j := range units {
		units[j], _ = monomial.Unit(cols, j)
	}
	jac := mat.NewDense(rows, cols, nil)
	for i, c := range v.comps {
		for j, u := range units {
			jac.Set(i, j, c.Coefficient(u))
		}
	}

	return jac, nil
}
