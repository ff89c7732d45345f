// Package jet_test provides benchmarks for the hot algebra paths.
package jet_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mxjet/env"
	"github.com/katalvlaran/mxjet/jet"
	"github.com/katalvlaran/mxjet/pool"
)

// benchJet fills every monomial of e with a random coefficient.
func benchJet(b *testing.B, e *env.Environment, p *pool.Pool[float64], seed int64) *jet.Real {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	j, err := jet.Zero(e, p)
	if err != nil {
		b.Fatal(err)
	}
	for _, x := range allExponents(e.NumVars(), e.MaxOrder()) {
		if err = j.AddTerm(x, r.Float64()+0.5); err != nil {
			b.Fatal(err)
		}
	}

	return j
}

func benchEnv(b *testing.B, numVars, order int) *env.Environment {
	b.Helper()
	e, err := env.New(numVars, order, make([]float64, numVars))
	if err != nil {
		b.Fatal(err)
	}

	return e
}

// BenchmarkMul_6x5 multiplies two dense jets in six variables at order 5,
// the usual size of a phase-space map.
func BenchmarkMul_6x5(b *testing.B) {
	e := benchEnv(b, 6, 5)
	p := pool.New[float64]()
	x, y := benchJet(b, e, p, 1), benchJet(b, e, p, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := jet.Mul(x, y)
		if err != nil {
			b.Fatal(err)
		}
		r.Release()
	}
}

// BenchmarkInverse_4x6 runs the Newton inverse on a dense jet.
func BenchmarkInverse_4x6(b *testing.B) {
	e := benchEnv(b, 4, 6)
	p := pool.New[float64]()
	x := benchJet(b, e, p, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := jet.Inverse(x)
		if err != nil {
			b.Fatal(err)
		}
		r.Release()
	}
}

// BenchmarkCompose_4x4 substitutes a dense nilpotent map into a dense jet.
func BenchmarkCompose_4x4(b *testing.B) {
	e := benchEnv(b, 4, 4)
	p := pool.New[float64]()
	f := benchJet(b, e, p, 4)
	comps := make([]*jet.Real, e.NumVars())
	for i := range comps {
		comps[i] = benchJet(b, e, p, int64(10+i))
		if err := comps[i].SetStandardPart(0); err != nil {
			b.Fatal(err)
		}
	}
	g, err := jet.NewVector(e, comps...)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := jet.Compose(f, g)
		if err != nil {
			b.Fatal(err)
		}
		r.Release()
	}
}

// BenchmarkAddTerm_Random inserts terms in random order.
func BenchmarkAddTerm_Random(b *testing.B) {
	e := benchEnv(b, 3, 8)
	p := pool.New[float64]()
	exps := allExponents(3, 8)
	rand.New(rand.NewSource(5)).Shuffle(len(exps), func(i, k int) { exps[i], exps[k] = exps[k], exps[i] })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j, _ := jet.Zero(e, p)
		for _, x := range exps {
			_ = j.AddTerm(x, 1)
		}
		j.Release()
	}
}
