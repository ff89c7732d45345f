// SPDX-License-Identifier: MIT
package jet_test

import (
	"testing"

	"github.com/katalvlaran/mxjet/jet"
	"github.com/katalvlaran/mxjet/monomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"
)

func TestCompose_Identity(t *testing.T) {
	for _, ref := range [][]float64{{0, 0}, {0.5, -1}} {
		f := newFixture(t, 2, 5, ref...)
		a := f.random(t, seedA, 0.7)
		id, err := jet.Identity(f.env, f.real)
		require.NoError(t, err)

		got := must(jet.Compose(a, id))
		assert.True(t, jet.Equal(got, a), "ref %v", ref)
		assert.Equal(t, a.AccurateWeight(), got.AccurateWeight())
		id.Release()
	}
}

// (1 + y)² over a second environment: the substitution has a non-zero
// standard part, so nothing above degree 0 is guaranteed.
func TestCompose_AcrossEnvironments(t *testing.T) {
	src := newFixture(t, 1, 3)
	dst := newFixture(t, 1, 3)

	x := src.variable(t, 0)
	sq := must(jet.Mul(x, x)) // x²
	g := must(jet.AddScalar(dst.variable(t, 0), 1))
	vec, err := jet.NewVector(dst.env, g)
	require.NoError(t, err)

	h := must(jet.Compose(sq, vec))
	assert.Same(t, dst.env, h.Env())
	assert.Equal(t, []float64{1, 2, 1}, []float64{coef(h, 0), coef(h, 1), coef(h, 2)})
	assert.Equal(t, 0, h.AccurateWeight())
	vec.Release()
}

// f is expanded around its reference point, so g is shifted by it first.
func TestCompose_ShiftsByReferencePoint(t *testing.T) {
	src := newFixture(t, 1, 3, 1) // x around 1
	dst := newFixture(t, 1, 3)

	x := src.variable(t, 0)
	cube := must(jet.Pow(x, 3)) // (1 + ξ)³
	g := must(jet.AddScalar(dst.variable(t, 0), 1))
	vec, err := jet.NewVector(dst.env, g)
	require.NoError(t, err)

	h := must(jet.Compose(cube, vec))
	want := must(jet.Pow(g, 3))
	assert.True(t, jet.EqualWithin(h, want, tolTight))
	assert.Equal(t, 3, h.AccurateWeight())
	vec.Release()
}

func TestCompose_UsesOnlyAccurateTerms(t *testing.T) {
	f := newFixture(t, 1, 4)
	a := f.random(t, seedB, 1)
	inv := must(jet.Inverse(a, jet.WithMaxIterations(1))) // accurate through 1
	id, err := jet.Identity(f.env, f.real)
	require.NoError(t, err)

	h := must(jet.Compose(inv, id))
	assert.Equal(t, 1, h.Weight())
	assert.Equal(t, 1, h.AccurateWeight())
}

func TestCompose_Errors(t *testing.T) {
	f := newFixture(t, 2, 3)
	a := f.random(t, seedA, 1)
	one := newFixture(t, 1, 3)
	short, err := jet.Identity(one.env, one.real)
	require.NoError(t, err)

	_, err = jet.Compose(a, short)
	assert.ErrorIs(t, err, jet.ErrArityMismatch)

	_, err = jet.Compose(a, nil)
	assert.ErrorIs(t, err, jet.ErrNilJet)
}

func TestNewVector_AggregatesErrors(t *testing.T) {
	f := newFixture(t, 1, 3)
	other := newFixture(t, 1, 3)
	x := f.variable(t, 0)
	stranger := other.variable(t, 0)
	gone := f.variable(t, 0)
	gone.Release()

	_, err := jet.NewVector(f.env, x, nil, stranger, gone)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorIs(t, err, jet.ErrNilJet)
	assert.ErrorIs(t, err, jet.ErrEnvironmentMismatch)
	assert.ErrorIs(t, err, jet.ErrReleased)

	_, err = jet.NewVector[float64](nil)
	assert.ErrorIs(t, err, jet.ErrInvalidEnvironment)
}

func TestVector_OwnsComponents(t *testing.T) {
	f := newFixture(t, 2, 2, 3, 4)
	x := f.variable(t, 0)
	y := f.variable(t, 1)
	v, err := jet.NewVector(f.env, x, y)
	require.NoError(t, err)

	x.Release()
	y.Release()
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []float64{3, 4}, v.StandardParts())
	assert.Same(t, f.env, v.Env())
	assert.Equal(t, 1.0, coef(v.At(1), 0, 1))

	// components are read-only through the vector
	assert.True(t, v.At(0).Frozen())
	assert.ErrorIs(t, v.At(0).AddTerm(monomial.MustOf(1, 1), 5), jet.ErrFrozen)
	assert.ErrorIs(t, v.At(1).Scale(2), jet.ErrFrozen)
	assert.Equal(t, 0.0, coef(v.At(0), 1, 1))
	c, err := v.At(0).Clone()
	require.NoError(t, err)
	require.NoError(t, c.AddTerm(monomial.MustOf(1, 1), 5))
	assert.Equal(t, 0.0, coef(v.At(0), 1, 1))
	c.Release()

	v.Release()
	v.Release()
	assert.Equal(t, 0, f.real.Live())
	assert.Equal(t, 1, f.env.Refs())
}

func TestComposeVector_Rotation(t *testing.T) {
	f := newFixture(t, 2, 3)
	x := f.variable(t, 0)
	y := f.variable(t, 1)
	// quarter turn: (x, y) → (−y, x)
	rot, err := jet.NewVector(f.env, must(jet.Neg(y)), x)
	require.NoError(t, err)

	half := must2(jet.ComposeVector(rot, rot))
	full := must2(jet.ComposeVector(half, half))
	id, err := jet.Identity(f.env, f.real)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.True(t, jet.Equal(full.At(i), id.At(i)), "component %d", i)
	}
	assert.True(t, jet.Equal(half.At(0), must(jet.Neg(x))))
}

func TestJacobian_LinearMap(t *testing.T) {
	f := newFixture(t, 2, 2)
	v0 := f.poly(t, []float64{2, 1, 0}, []float64{3, 0, 1}, []float64{7, 2, 0})
	v1 := f.poly(t, []float64{-1, 1, 0}, []float64{4, 0, 1}, []float64{5, 0, 0})
	v, err := jet.NewVector(f.env, v0, v1)
	require.NoError(t, err)

	jac, err := jet.Jacobian(v)
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{2, 3, -1, 4})
	assert.True(t, mat.Equal(want, jac), "got %v", mat.Formatted(jac))

	empty, err := jet.NewVector[float64](f.env)
	require.NoError(t, err)
	_, err = jet.Jacobian(empty)
	assert.ErrorIs(t, err, jet.ErrDimensionMismatch)
}

func must2[T jet.Scalar](v *jet.Vector[T], err error) *jet.Vector[T] {
	if err != nil {
		panic(err)
	}

	return v
}
