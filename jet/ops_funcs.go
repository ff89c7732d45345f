// SPDX-License-Identifier: MIT

// Package jet - elementary functions.
//
// Split a = a₀ + ε with ε the nilpotent part (no constant term). Since
// ε^{N+1} = 0 at order N, any analytic f expands exactly to
//
//	f(a) = Σ_{k=0..N} f^{(k)}(a₀)/k! · ε^k,
//
// evaluated by Horner's rule with truncated products. Each function below
// only supplies its Taylor coefficients at a₀. AccurateWeight is
// preserved.
package jet

import (
	"math"

	"github.com/katalvlaran/mxjet/pool"
)

// taylor returns Σ c[k]·ε^k where ε is a minus its standard part.
func taylor[T Scalar](a *Jet[T], c []T, p *pool.Pool[T]) *series[T] {
	n := a.env.MaxOrder()
	zero := zeroExp(a.env)
	eps := band(a.s, 1, n, p)
	defer eps.drop()

	r := newSeries(p, 1)
	r.push(zero, c[len(c)-1])
	for k := len(c) - 2; k >= 0; k-- {
		next := product(r, eps, n, p)
		r.drop()
		r = shifted(next, c[k], zero, p)
		next.drop()
	}

	return r
}

// elementary validates a, builds the coefficients and wraps the result.
func elementary[T Scalar](op string, a *Jet[T], coeffs func(a0 T, n int) ([]T, error), opts []Option) (*Jet[T], error) {
	if err := a.check(op); err != nil {
		return nil, err
	}
	p, err := resultPool(gatherOptions(opts), a.s.pool)
	if err != nil {
		return nil, jetErrorf(op, err)
	}
	c, err := coeffs(a.StandardPart(), a.env.MaxOrder())
	if err != nil {
		return nil, jetErrorf(op, err)
	}

	return wrap(a.env, taylor(a, c, p), a.accurate), nil
}

// Exp returns e^a.
func Exp[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Exp", a, func(a0 T, n int) ([]T, error) {
		c := make([]T, n+1)
		c[0] = expOf(a0)
		for k := 1; k <= n; k++ {
			c[k] = c[k-1] / fromFloat[T](float64(k))
		}

		return c, nil
	}, opts)
}

// Log returns the natural logarithm of a (principal branch for complex).
// Errors: ErrDomain if the standard part is 0, or negative for reals.
func Log[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Log", a, func(a0 T, n int) ([]T, error) {
		if outsideLogDomain(a0) {
			return nil, ErrDomain
		}
		c := make([]T, n+1)
		c[0] = logOf(a0)
		inv := 1 / a0
		pw := T(1) // (−1/a₀)^(k−1)
		for k := 1; k <= n; k++ {
			c[k] = pw * inv / fromFloat[T](float64(k))
			pw *= -inv
		}

		return c, nil
	}, opts)
}

// Sqrt returns the principal square root of a.
// Errors: ErrDomain if the standard part is 0, or negative for reals.
func Sqrt[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Sqrt", a, func(a0 T, n int) ([]T, error) {
		if outsideLogDomain(a0) {
			return nil, ErrDomain
		}
		c := make([]T, n+1)
		c[0] = sqrtOf(a0)
		for k := 1; k <= n; k++ {
			// binom(1/2, k) / a₀^k recurrence
			c[k] = c[k-1] * fromFloat[T](1.5-float64(k)) / (fromFloat[T](float64(k)) * a0)
		}

		return c, nil
	}, opts)
}

// Log10 returns the base-10 logarithm of a.
// Errors: as Log.
func Log10[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Log10", a, func(a0 T, n int) ([]T, error) {
		if outsideLogDomain(a0) {
			return nil, ErrDomain
		}
		c := make([]T, n+1)
		inv := 1 / a0
		pw := T(1)
		ln10 := fromFloat[T](math.Ln10)
		c[0] = logOf(a0) / ln10
		for k := 1; k <= n; k++ {
			c[k] = pw * inv / (fromFloat[T](float64(k)) * ln10)
			pw *= -inv
		}

		return c, nil
	}, opts)
}

// PowReal returns a^s for a real exponent s (principal branch for complex).
//   - An integral s is delegated to Pow, so a nilpotent a is allowed there.
//   - Otherwise the coefficients are binom(s, k)·a₀^(s−k).
//
// Errors: ErrDomain for a non-integral s when the standard part is 0, or
// negative for reals; as Inverse for a negative integral s.
func PowReal[T Scalar](a *Jet[T], s float64, opts ...Option) (*Jet[T], error) {
	if s == math.Trunc(s) && math.Abs(s) <= math.MaxInt32 {
		return Pow(a, int(s), opts...)
	}

	return elementary("PowReal", a, func(a0 T, n int) ([]T, error) {
		if outsideLogDomain(a0) {
			return nil, ErrDomain
		}
		c := make([]T, n+1)
		c[0] = powOf(a0, s)
		for k := 1; k <= n; k++ {
			c[k] = c[k-1] * fromFloat[T](s-float64(k-1)) / (fromFloat[T](float64(k)) * a0)
		}

		return c, nil
	}, opts)
}

// Sin returns sin(a).
func Sin[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Sin", a, func(a0 T, n int) ([]T, error) {
		return trig(sinOf(a0), cosOf(a0), n), nil
	}, opts)
}

// Cos returns cos(a).
func Cos[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Cos", a, func(a0 T, n int) ([]T, error) {
		return trig(cosOf(a0), -sinOf(a0), n), nil
	}, opts)
}

// trig builds f^{(k)}(a₀)/k! for f'' = −f, given f(a₀) and f'(a₀).
func trig[T Scalar](f0, f1 T, n int) []T {
	c := make([]T, n+1)
	d := [4]T{f0, f1, -f0, -f1}
	fact := 1.0
	for k := 0; k <= n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		c[k] = d[k%4] / fromFloat[T](fact)
	}

	return c
}

// Sinh returns sinh(a).
func Sinh[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Sinh", a, func(a0 T, n int) ([]T, error) {
		return hyperbolic(sinhOf(a0), coshOf(a0), n), nil
	}, opts)
}

// Cosh returns cosh(a).
func Cosh[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Cosh", a, func(a0 T, n int) ([]T, error) {
		return hyperbolic(coshOf(a0), sinhOf(a0), n), nil
	}, opts)
}

// hyperbolic builds f^{(k)}(a₀)/k! for f'' = f, given f(a₀) and f'(a₀).
func hyperbolic[T Scalar](f0, f1 T, n int) []T {
	c := make([]T, n+1)
	d := [2]T{f0, f1}
	fact := 1.0
	for k := 0; k <= n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		c[k] = d[k%2] / fromFloat[T](fact)
	}

	return c
}

// Tan returns sin(a)/cos(a). AccurateWeight follows Div.
// Errors: ErrDivisionByZeroSeries where cos vanishes at the standard part.
func Tan[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return quotient("Tan", a, Sin[T], Cos[T], opts)
}

// Tanh returns sinh(a)/cosh(a). AccurateWeight follows Div.
func Tanh[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return quotient("Tanh", a, Sinh[T], Cosh[T], opts)
}

// quotient returns num(a)/den(a), releasing both intermediates.
func quotient[T Scalar](op string, a *Jet[T], num, den func(*Jet[T], ...Option) (*Jet[T], error), opts []Option) (*Jet[T], error) {
	if err := a.check(op); err != nil {
		return nil, err
	}
	n, err := num(a, opts...)
	if err != nil {
		return nil, err
	}
	defer n.Release()
	d, err := den(a, opts...)
	if err != nil {
		return nil, err
	}
	defer d.Release()
	q, err := Div(n, d, opts...)
	if err != nil {
		return nil, jetErrorf(op, err)
	}

	return q, nil
}

// Atan returns the principal arctangent of a.
// Errors: ErrDomain at a standard part of ±i (complex only).
func Atan[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Atan", a, func(a0 T, n int) ([]T, error) {
		// atan' = (1 + x²)^{−1}, expanded around a₀
		w := []T{1 + a0*a0, 2 * a0, 1}
		if w[0] == 0 {
			return nil, ErrDomain
		}
		return antiderivative(atanOf(a0), polyPow(w, -1, 1/w[0], n-1), n), nil
	}, opts)
}

// Asin returns the principal arcsine of a.
// Errors: ErrDomain if the standard part has |a₀| ≥ 1 (reals) or is ±1.
func Asin[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Asin", a, func(a0 T, n int) ([]T, error) {
		if outsideUnitInterval(a0) {
			return nil, ErrDomain
		}
		return antiderivative(asinOf(a0), arcsineSlope(a0, n-1), n), nil
	}, opts)
}

// Acos returns the principal arccosine of a.
// Errors: as Asin.
func Acos[T Scalar](a *Jet[T], opts ...Option) (*Jet[T], error) {
	return elementary("Acos", a, func(a0 T, n int) ([]T, error) {
		if outsideUnitInterval(a0) {
			return nil, ErrDomain
		}
		g := arcsineSlope(a0, n-1)
		for k := range g {
			g[k] = -g[k]
		}
		return antiderivative(acosOf(a0), g, n), nil
	}, opts)
}

// arcsineSlope expands asin' = (1 − x²)^{−1/2} around a₀ up to t^m.
func arcsineSlope[T Scalar](a0 T, m int) []T {
	w := []T{1 - a0*a0, -2 * a0, -1}

	return polyPow(w, -0.5, powOf(w[0], -0.5), m)
}

// Erf returns the error function of a real jet.
func Erf(a *Real, opts ...Option) (*Real, error) {
	return elementary("Erf", a, func(a0 float64, n int) ([]float64, error) {
		// erf' = 2/√π · exp(−x²); around a₀ the exponent is −a₀² − 2a₀t − t²
		e := polyExp([]float64{0, -2 * a0, -1}, math.Exp(-a0*a0), n-1)
		for k := range e {
			e[k] *= 2 / math.SqrtPi
		}
		return antiderivative(math.Erf(a0), e, n), nil
	}, opts)
}

// Univariate helpers on coefficient slices: w[k] is the coefficient of
// t^k, and every result is cut at t^m.

// polyPow returns w^α given h0 = w[0]^α (Miller's recurrence):
//
//	h_k = Σ_{j=1..k} ((α+1)·j − k)·w_j·h_{k−j} / (k·w_0).
func polyPow[T Scalar](w []T, alpha float64, h0 T, m int) []T {
	if m < 0 {
		return nil
	}
	h := make([]T, m+1)
	h[0] = h0
	for k := 1; k <= m; k++ {
		var sum T
		for j := 1; j <= k && j < len(w); j++ {
			sum += fromFloat[T]((alpha+1)*float64(j)-float64(k)) * w[j] * h[k-j]
		}
		h[k] = sum / (fromFloat[T](float64(k)) * w[0])
	}

	return h
}

// polyExp returns e^u given e0 = e^{u[0]}: k·E_k = Σ_{j=1..k} j·u_j·E_{k−j}.
func polyExp[T Scalar](u []T, e0 T, m int) []T {
	if m < 0 {
		return nil
	}
	e := make([]T, m+1)
	e[0] = e0
	for k := 1; k <= m; k++ {
		var sum T
		for j := 1; j <= k && j < len(u); j++ {
			sum += fromFloat[T](float64(j)) * u[j] * e[k-j]
		}
		e[k] = sum / fromFloat[T](float64(k))
	}

	return e
}

// antiderivative returns c0 + ∫ g dt cut at t^n.
func antiderivative[T Scalar](c0 T, g []T, n int) []T {
	c := make([]T, n+1)
	c[0] = c0
	for k := 1; k <= n && k-1 < len(g); k++ {
		c[k] = g[k-1] / fromFloat[T](float64(k))
	}

	return c
}
