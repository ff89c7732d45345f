// SPDX-License-Identifier: MIT
// Package jet_test contains shared fixtures for the jet tests.
//
// Purpose:
//   - Build environments, pools and jets in one line per test.
//   - Draw reproducible random jets with gofuzz (fixed seeds).
//   - Never touch *testing.T inside goroutines.

package jet_test

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/jet"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
	"github.com/stretchr/testify/require"
)

// Tolerances for floating-point laws.
const (
	tolTight = 1e-12
	tolLoose = 1e-9
)

// Seeds keep the random jets identical across runs.
const (
	seedA int64 = 11
	seedB int64 = 23
	seedC int64 = 47
)

// fixture bundles one environment with a real and a complex pool.
type fixture struct {
	env  *env.Environment
	real *pool.Pool[float64]
	cplx *pool.Pool[complex128]
}

func newFixture(t *testing.T, numVars, maxOrder int, ref ...float64) fixture {
	t.Helper()
	if ref == nil {
		ref = make([]float64, numVars)
	}
	e, err := env.New(numVars, maxOrder, ref)
	require.NoError(t, err)

	return fixture{
		env:  e,
		real: pool.New[float64](pool.WithBlockSize(32)),
		cplx: pool.New[complex128](pool.WithBlockSize(32)),
	}
}

func (f fixture) variable(t *testing.T, i int) *jet.Real {
	t.Helper()
	x, err := jet.Variable(f.env, f.real, i)
	require.NoError(t, err)

	return x
}

func (f fixture) constant(t *testing.T, v float64) *jet.Real {
	t.Helper()
	c, err := jet.Constant(f.env, f.real, v)
	require.NoError(t, err)

	return c
}

// poly builds a real jet from (coefficient, exponents...) rows.
func (f fixture) poly(t *testing.T, rows ...[]float64) *jet.Real {
	t.Helper()
	terms := make([]jet.Term[float64], 0, len(rows))
	for _, r := range rows {
		e := make([]int, len(r)-1)
		for i, x := range r[1:] {
			e[i] = int(x)
		}
		terms = append(terms, jet.Term[float64]{Exp: monomial.MustOf(e...), Coef: r[0]})
	}
	j, err := jet.FromTerms(f.env, f.real, terms...)
	require.NoError(t, err)

	return j
}

// random fills every monomial of the environment with a coefficient in
// [-1, 1) and sets the standard part to std.
func (f fixture) random(t *testing.T, seed int64, std float64) *jet.Real {
	t.Helper()
	fz := fuzz.New().RandSource(rand.NewSource(seed)).Funcs(
		func(c *float64, cont fuzz.Continue) { *c = 2*cont.Float64() - 1 },
	)
	exps := allExponents(f.env.NumVars(), f.env.MaxOrder())
	coefs := make([]float64, len(exps))
	for i := range coefs {
		fz.Fuzz(&coefs[i])
	}
	j, err := jet.Zero(f.env, f.real)
	require.NoError(t, err)
	for i, e := range exps {
		require.NoError(t, j.AddTerm(e, coefs[i]))
	}
	require.NoError(t, j.SetStandardPart(std))

	return j
}

// allExponents enumerates every monomial in n variables of degree ≤ order.
func allExponents(n, order int) []monomial.Exponents {
	var out []monomial.Exponents
	cur := make([]int, n)
	var walk func(i, left int)
	walk = func(i, left int) {
		if i == n {
			out = append(out, monomial.MustOf(cur...))
			return
		}
		for k := 0; k <= left; k++ {
			cur[i] = k
			walk(i+1, left-k)
		}
		cur[i] = 0
	}
	walk(0, order)

	return out
}

// must unwraps an algebra result whose inputs are known to be valid.
func must[T jet.Scalar](j *jet.Jet[T], err error) *jet.Jet[T] {
	if err != nil {
		panic(err)
	}

	return j
}

// coef reads the coefficient of the monomial with the given exponents.
func coef[T jet.Scalar](j *jet.Jet[T], e ...int) T {
	return j.Coefficient(monomial.MustOf(e...))
}
