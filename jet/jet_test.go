// SPDX-License-Identifier: MIT
package jet_test

import (
	"testing"

	"github.com/katalvlaran/mxjet/jet"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/katalvlaran/mxjet/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Basic(t *testing.T) {
	f := newFixture(t, 2, 3, 0.5, -2)

	z, err := jet.Zero(f.env, f.real)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, -1, z.Weight())
	assert.Equal(t, 3, z.AccurateWeight())

	c := f.constant(t, 4)
	assert.Equal(t, 4.0, c.StandardPart())
	assert.Equal(t, 0, c.Weight())

	y := f.variable(t, 1)
	assert.Equal(t, -2.0, y.StandardPart())
	assert.Equal(t, 1.0, coef(y, 0, 1))
	assert.Equal(t, 2, y.Len())
	assert.Equal(t, 1, y.Weight())
	assert.Equal(t, 4, f.env.Refs()) // creator + three jets
}

func TestVariable_ZeroOrderHasNoLinearTerm(t *testing.T) {
	f := newFixture(t, 1, 0, 3)
	x := f.variable(t, 0)
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, 3.0, x.StandardPart())
}

func TestConstructors_Errors(t *testing.T) {
	f := newFixture(t, 2, 3)

	_, err := jet.Variable(f.env, f.real, 2)
	assert.ErrorIs(t, err, jet.ErrIndexOutOfRange)
	_, err = jet.Variable(f.env, f.real, -1)
	assert.ErrorIs(t, err, jet.ErrIndexOutOfRange)

	_, err = jet.Zero[float64](nil, f.real)
	assert.ErrorIs(t, err, jet.ErrInvalidEnvironment)
	_, err = jet.Constant[float64](f.env, nil, 1)
	assert.ErrorIs(t, err, jet.ErrNilPool)

	require.NoError(t, f.env.Release()) // closes: no jet holds it
	_, err = jet.Constant(f.env, f.real, 1)
	assert.ErrorIs(t, err, jet.ErrInvalidEnvironment)
}

func TestAddTerm_Semantics(t *testing.T) {
	f := newFixture(t, 2, 2)
	j, err := jet.Zero(f.env, f.real)
	require.NoError(t, err)

	require.NoError(t, j.AddTerm(monomial.MustOf(0, 2), 1))
	require.NoError(t, j.AddTerm(monomial.MustOf(1, 0), 2))
	require.NoError(t, j.AddTerm(monomial.MustOf(0, 0), 3))
	require.NoError(t, j.AddTerm(monomial.MustOf(1, 1), 4))

	var got []string
	for e := range j.All() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"(0,0)", "(1,0)", "(1,1)", "(0,2)"}, got)

	// accumulate, cancel to zero
	require.NoError(t, j.AddTerm(monomial.MustOf(1, 0), -2))
	assert.Equal(t, 3, j.Len())
	assert.Equal(t, 0.0, coef(j, 1, 0))

	// above the order: silently discarded
	require.NoError(t, j.AddTerm(monomial.MustOf(2, 1), 9))
	assert.Equal(t, 3, j.Len())
	assert.Equal(t, 2, j.Weight())

	// zero coefficient: no-op
	require.NoError(t, j.AddTerm(monomial.MustOf(2, 0), 0))
	assert.Equal(t, 3, j.Len())

	err = j.AddTerm(monomial.MustOf(1), 1)
	assert.ErrorIs(t, err, jet.ErrDimensionMismatch)
}

func TestAll_StopsEarly(t *testing.T) {
	f := newFixture(t, 1, 4)
	j := f.poly(t, []float64{1, 0}, []float64{2, 1}, []float64{3, 2})
	n := 0
	for range j.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Equal(t, []jet.Term[float64]{
		{Exp: monomial.MustOf(0), Coef: 1},
		{Exp: monomial.MustOf(1), Coef: 2},
		{Exp: monomial.MustOf(2), Coef: 3},
	}, j.Terms())
}

func TestMutators_InPlace(t *testing.T) {
	f := newFixture(t, 1, 3)
	j := f.poly(t, []float64{1, 0}, []float64{2, 1}, []float64{3, 3})

	require.NoError(t, j.SetStandardPart(5))
	assert.Equal(t, 5.0, j.StandardPart())
	require.NoError(t, j.SetStandardPart(0))
	assert.Equal(t, 2, j.Len())
	require.NoError(t, j.SetStandardPart(7))
	assert.Equal(t, 7.0, j.StandardPart())

	require.NoError(t, j.Scale(2))
	assert.Equal(t, 4.0, coef(j, 1))
	require.NoError(t, j.Negate())
	assert.Equal(t, -6.0, coef(j, 3))

	require.NoError(t, j.TruncateInPlace(1))
	assert.Equal(t, 1, j.Weight())
	assert.Equal(t, 1, j.AccurateWeight())

	require.NoError(t, j.Scale(0))
	assert.True(t, j.IsZero())
}

func TestClone_CopyOnWrite(t *testing.T) {
	f := newFixture(t, 1, 3)
	a := f.poly(t, []float64{1, 0}, []float64{2, 1})
	live := f.real.Live()

	b, err := a.Clone()
	require.NoError(t, err)
	assert.Equal(t, live, f.real.Live(), "clone shares records")
	assert.True(t, jet.Equal(a, b))

	require.NoError(t, b.AddTerm(monomial.MustOf(2), 5))
	assert.Equal(t, 0.0, coef(a, 2), "a untouched")
	assert.Equal(t, 5.0, coef(b, 2))
	assert.Equal(t, live+3, f.real.Live(), "b privatised its copy")

	require.NoError(t, a.Scale(10))
	assert.Equal(t, 20.0, coef(a, 1))
	assert.Equal(t, 2.0, coef(b, 1))
}

func TestRelease_ReturnsRecordsAndReferences(t *testing.T) {
	f := newFixture(t, 2, 4)
	a := f.random(t, seedA, 1)
	b, err := a.Clone()
	require.NoError(t, err)
	c := must(jet.Mul(a, b))
	assert.Positive(t, f.real.Live())

	a.Release()
	a.Release() // idempotent
	assert.Positive(t, f.real.Live(), "b still shares the records")
	b.Release()
	c.Release()
	assert.Equal(t, 0, f.real.Live())
	assert.Equal(t, 1, f.env.Refs())

	_, err = jet.Add(a, c)
	assert.ErrorIs(t, err, jet.ErrReleased)
	assert.Nil(t, a.Env())
	assert.Nil(t, a.Pool())
	assert.Equal(t, 0, a.Len())
}

func TestFreeze_RefusesMutation(t *testing.T) {
	f := newFixture(t, 1, 2)
	a := f.variable(t, 0)
	a.Freeze()
	assert.True(t, a.Frozen())
	assert.ErrorIs(t, a.AddTerm(monomial.MustOf(2), 1), jet.ErrFrozen)
	assert.ErrorIs(t, a.Scale(2), jet.ErrFrozen)
	// calls that would otherwise be silent no-ops are refused too
	assert.ErrorIs(t, a.AddTerm(monomial.MustOf(5), 1), jet.ErrFrozen)
	assert.ErrorIs(t, a.AddTerm(monomial.MustOf(1), 0), jet.ErrFrozen)
	assert.Equal(t, 2, a.Len())

	b, err := a.Clone()
	require.NoError(t, err)
	assert.False(t, b.Frozen())
	require.NoError(t, b.AddTerm(monomial.MustOf(2), 1))
	assert.Equal(t, 2, a.Len())
}

func TestFreeze_ConcurrentReads(t *testing.T) {
	f := newFixture(t, 2, 5)
	a := f.random(t, seedB, 0.5)
	a.Freeze()
	want := must(jet.Mul(a, a))
	liveBefore := f.real.Live()

	const workers = 8
	norms := make([]float64, workers)
	equal := make([]bool, workers)
	done := make(chan int, workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			p := pool.New[float64]()
			sq, err := jet.Mul(a, a, jet.WithPool(p))
			if err == nil {
				norms[w] = jet.Norm(sq)
				equal[w] = jet.Equal(sq, want)
				sq.Release()
				equal[w] = equal[w] && p.Live() == 0
			}
			done <- w
		}(w)
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	for w := 0; w < workers; w++ {
		assert.True(t, equal[w], "worker %d", w)
		assert.Equal(t, jet.Norm(want), norms[w])
	}
	assert.Equal(t, liveBefore, f.real.Live(), "shared pool untouched")
}

func TestString(t *testing.T) {
	f := newFixture(t, 1, 2)
	z, err := jet.Zero(f.env, f.real)
	require.NoError(t, err)
	assert.Equal(t, "0", z.String())
	x := f.variable(t, 0)
	assert.Equal(t, "1·(1)", x.String())
	c := f.poly(t, []float64{2, 0}, []float64{-1, 2})
	assert.Equal(t, "2·(0) + -1·(2)", c.String())
}
