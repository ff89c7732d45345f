// SPDX-License-Identifier: MIT

package jet

import (
	"cmp"

	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/monomial"
	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether a and b are over the same environment and store
// exactly the same terms. AccurateWeight is not compared. Nil or released
// jets are equal to nothing.
func Equal[T Scalar](a, b *Jet[T]) bool {
	if a.check("Equal") != nil || b.check("Equal") != nil {
		return false
	}
	if !env.Compatible(a.env, b.env) || a.s.len() != b.s.len() {
		return false
	}
	if a.s == b.s {
		return true
	}
	for i := 0; i < a.s.len(); i++ {
		ra, rb := a.s.rec(i), b.s.rec(i)
		if ra.Exp != rb.Exp || ra.Coef != rb.Coef {
			return false
		}
	}

	return true
}

// EqualWithin reports whether a and b agree termwise within tol, absolute
// or relative (gonum's EqualWithinAbsOrRel on real and imaginary parts).
// A term present on one side only is compared against zero.
func EqualWithin[T Scalar](a, b *Jet[T], tol float64) bool {
	if a.check("EqualWithin") != nil || b.check("EqualWithin") != nil {
		return false
	}
	if !env.Compatible(a.env, b.env) {
		return false
	}
	near := func(x, y T) bool {
		xr, xi := parts(x)
		yr, yi := parts(y)
		return scalar.EqualWithinAbsOrRel(xr, yr, tol, tol) &&
			scalar.EqualWithinAbsOrRel(xi, yi, tol, tol)
	}
	i, k := 0, 0
	for i < a.s.len() || k < b.s.len() {
		switch {
		case k == b.s.len() || (i < a.s.len() && monomial.Less(a.s.exp(i), b.s.exp(k))):
			if !near(a.s.coef(i), 0) {
				return false
			}
			i++
		case i == a.s.len() || monomial.Less(b.s.exp(k), a.s.exp(i)):
			if !near(0, b.s.coef(k)) {
				return false
			}
			k++
		default:
			if !near(a.s.coef(i), b.s.coef(k)) {
				return false
			}
			i++
			k++
		}
	}

	return true
}

// Compare is a total order on term sequences for canonical storage
// (sorting, map keys). It is not a mathematical order on functions.
// Terms are compared in turn by exponent, then real part, then imaginary
// part; a proper prefix sorts first. Returns −1, 0 or +1.
func Compare[T Scalar](a, b *Jet[T]) int {
	ta, tb := a.Terms(), b.Terms()
	for i := 0; i < len(ta) && i < len(tb); i++ {
		x, y := ta[i], tb[i]
		switch {
		case monomial.Less(x.Exp, y.Exp):
			return -1
		case monomial.Less(y.Exp, x.Exp):
			return 1
		}
		xr, xi := parts(x.Coef)
		yr, yi := parts(y.Coef)
		if c := cmp.Compare(xr, yr); c != 0 {
			return c
		}
		if c := cmp.Compare(xi, yi); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}

	return 0
}

// Norm returns the largest coefficient magnitude, 0 for the zero series.
func Norm[T Scalar](a *Jet[T]) float64 {
	var m float64
	for _, c := range a.All() {
		m = max(m, abs(c))
	}

	return m
}
