// SPDX-License-Identifier: MIT

package jet

import "github.com/katalvlaran/mxjet/pool"

// Ring conversions. Real and complex jets never mix implicitly: each
// conversion is a named call writing into a pool of the target ring, and
// AccurateWeight carries over unchanged.

// ToComplex lifts a real jet into the complex ring. Always exact.
func ToComplex(a *Real, p *pool.Pool[complex128]) (*Complex, error) {
	return convert("ToComplex", a, p, func(c float64) complex128 { return complex(c, 0) })
}

// ToReal keeps the real part of every coefficient and discards the
// imaginary parts.
func ToReal(z *Complex, p *pool.Pool[float64]) (*Real, error) {
	return convert("ToReal", z, p, func(c complex128) float64 { return real(c) })
}

// ImagPart returns the real jet of imaginary parts.
func ImagPart(z *Complex, p *pool.Pool[float64]) (*Real, error) {
	return convert("ImagPart", z, p, func(c complex128) float64 { return imag(c) })
}

func convert[S, T Scalar](op string, a *Jet[S], p *pool.Pool[T], f func(S) T) (*Jet[T], error) {
	if err := a.check(op); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, jetErrorf(op, ErrNilPool)
	}
	out := newSeries(p, a.s.len())
	for i := 0; i < a.s.len(); i++ {
		r := a.s.rec(i)
		out.push(r.Exp, f(r.Coef))
	}

	return wrap(a.env, out, a.accurate), nil
}
