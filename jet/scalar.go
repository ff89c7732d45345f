// SPDX-License-Identifier: MIT

package jet

import (
	"math"
	"math/cmplx"
)

// Per-ring helpers. Go's arithmetic operators work on both rings through
// the type parameter; anything that needs math vs math/cmplx, or a
// conversion from float64, goes through these switches.

// fromFloat converts a real number into the ring T.
func fromFloat[T Scalar](x float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return z
}

// abs returns |v|.
func abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// parts splits v into real and imaginary parts (imag is 0 for reals).
func parts[T Scalar](v T) (re, im float64) {
	switch x := any(v).(type) {
	case float64:
		return x, 0
	case complex128:
		return real(x), imag(x)
	}

	return 0, 0
}

// outsideLogDomain reports whether log/sqrt are undefined at v within the
// ring: zero for both rings, negative values for reals.
func outsideLogDomain[T Scalar](v T) bool {
	if v == 0 {
		return true
	}
	if x, ok := any(v).(float64); ok {
		return x < 0
	}

	return false
}

// unary applies the real or complex flavour of an elementary function.
func unary[T Scalar](v T, fr func(float64) float64, fc func(complex128) complex128) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = fr(any(v).(float64))
	case *complex128:
		*p = fc(any(v).(complex128))
	}

	return z
}

func expOf[T Scalar](v T) T  { return unary(v, math.Exp, cmplx.Exp) }
func logOf[T Scalar](v T) T  { return unary(v, math.Log, cmplx.Log) }
func sqrtOf[T Scalar](v T) T { return unary(v, math.Sqrt, cmplx.Sqrt) }
func sinOf[T Scalar](v T) T  { return unary(v, math.Sin, cmplx.Sin) }
func cosOf[T Scalar](v T) T  { return unary(v, math.Cos, cmplx.Cos) }
func sinhOf[T Scalar](v T) T { return unary(v, math.Sinh, cmplx.Sinh) }
func coshOf[T Scalar](v T) T { return unary(v, math.Cosh, cmplx.Cosh) }
func atanOf[T Scalar](v T) T { return unary(v, math.Atan, cmplx.Atan) }
func asinOf[T Scalar](v T) T { return unary(v, math.Asin, cmplx.Asin) }
func acosOf[T Scalar](v T) T { return unary(v, math.Acos, cmplx.Acos) }

// powOf returns v^s on the principal branch.
func powOf[T Scalar](v T, s float64) T {
	return unary(v,
		func(x float64) float64 { return math.Pow(x, s) },
		func(z complex128) complex128 { return cmplx.Pow(z, complex(s, 0)) })
}

// outsideUnitInterval reports whether asin/acos have no real Taylor
// expansion at v: |v| ≥ 1 for reals, ±1 for complex.
func outsideUnitInterval[T Scalar](v T) bool {
	if x, ok := any(v).(float64); ok {
		return math.Abs(x) >= 1
	}

	return v*v == 1
}
