// SPDX-License-Identifier: MIT

package monomial

import (
	"strconv"
	"strings"
)

const (
	// Capacity is the maximum number of variables an exponent vector holds.
	Capacity = 32

	// MaxDegree is the largest total degree (and single exponent) representable.
	MaxDegree = 255
)

// Exponents is a fixed-capacity vector of per-variable exponents.
//   - n is the logical length (number of variables).
//   - deg caches the total degree, kept in sync by every constructor.
//   - e holds the exponents; entries at index ≥ n are always zero so that
//     the zero padding never influences == or map hashing.
type Exponents struct {
	n   uint8           // logical length, ≤ Capacity
	deg uint16          // cached sum of e[:n]
	e   [Capacity]uint8 // exponents, zero beyond n
}

// New returns the zero exponent vector (the constant monomial) of length n.
// Errors: ErrCapacity if n < 0 or n > Capacity.
// Complexity: O(1).
func New(n int) (Exponents, error) {
	if n < 0 || n > Capacity {
		return Exponents{}, monomialErrorf("New", ErrCapacity)
	}

	return Exponents{n: uint8(n)}, nil
}

// Of builds an exponent vector from explicit entries.
// Errors: ErrCapacity, ErrNegative, ErrDegree.
// Complexity: O(len(e)).
func Of(e ...int) (Exponents, error) {
	if len(e) > Capacity {
		return Exponents{}, monomialErrorf("Of", ErrCapacity)
	}
	var (
		x   = Exponents{n: uint8(len(e))}
		sum int
	)
	for i, v := range e {
		if v < 0 {
			return Exponents{}, monomialErrorf("Of", ErrNegative)
		}
		sum += v
		if sum > MaxDegree {
			return Exponents{}, monomialErrorf("Of", ErrDegree)
		}
		x.e[i] = uint8(v)
	}
	x.deg = uint16(sum)

	return x, nil
}

// MustOf is like Of but panics on error. Intended for literals in tests
// and examples.
func MustOf(e ...int) Exponents {
	x, err := Of(e...)
	if err != nil {
		panic(err)
	}

	return x
}

// Unit returns the exponent vector of the single variable i among n.
// Errors: ErrCapacity for a bad n, ErrIndexOutOfRange for a bad i.
func Unit(n, i int) (Exponents, error) {
	x, err := New(n)
	if err != nil {
		return Exponents{}, err
	}
	if i < 0 || i >= n {
		return Exponents{}, monomialErrorf("Unit", ErrIndexOutOfRange)
	}
	x.e[i] = 1
	x.deg = 1

	return x, nil
}

// Len returns the number of variables.
func (x Exponents) Len() int { return int(x.n) }

// Degree returns the total degree (sum of entries). O(1).
func (x Exponents) Degree() int { return int(x.deg) }

// At returns the exponent of variable i, or 0 when i is out of range.
func (x Exponents) At(i int) int {
	if i < 0 || i >= int(x.n) {
		return 0
	}

	return int(x.e[i])
}

// IsZero reports whether x is the constant monomial.
func (x Exponents) IsZero() bool { return x.deg == 0 }

// Slice returns the entries as a freshly allocated []int.
func (x Exponents) Slice() []int {
	out := make([]int, x.n)
	for i := range out {
		out[i] = int(x.e[i])
	}

	return out
}

// Shift returns x with the exponent of variable i changed by delta.
// Errors: ErrIndexOutOfRange, ErrNegative (result below zero), ErrDegree.
func (x Exponents) Shift(i, delta int) (Exponents, error) {
	if i < 0 || i >= int(x.n) {
		return Exponents{}, monomialErrorf("Shift", ErrIndexOutOfRange)
	}
	v := int(x.e[i]) + delta
	if v < 0 {
		return Exponents{}, monomialErrorf("Shift", ErrNegative)
	}
	d := int(x.deg) + delta
	if v > MaxDegree || d > MaxDegree {
		return Exponents{}, monomialErrorf("Shift", ErrDegree)
	}
	x.e[i] = uint8(v)
	x.deg = uint16(d)

	return x, nil
}

// Divides reports whether x divides y, i.e. x[i] ≤ y[i] for every i.
// Vectors of different lengths never divide each other.
func (x Exponents) Divides(y Exponents) bool {
	if x.n != y.n {
		return false
	}
	for i := 0; i < int(x.n); i++ {
		if x.e[i] > y.e[i] {
			return false
		}
	}

	return true
}

// String renders x as "(e0,e1,...)".
func (x Exponents) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < int(x.n); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(x.e[i])))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Degree returns the total degree of x.
func Degree(x Exponents) int { return x.Degree() }

// Sum returns the entrywise sum a+b, the exponent of the monomial product.
// Errors: ErrDimensionMismatch if lengths differ, ErrDegree on overflow.
// Complexity: O(n).
func Sum(a, b Exponents) (Exponents, error) {
	if a.n != b.n {
		return Exponents{}, monomialErrorf("Sum", ErrDimensionMismatch)
	}
	d := int(a.deg) + int(b.deg)
	if d > MaxDegree {
		return Exponents{}, monomialErrorf("Sum", ErrDegree)
	}

	return add(a, b), nil
}

// add is Sum without checks; the kernel calls it only after bounding the
// degree by the environment's maximum order.
func add(a, b Exponents) Exponents {
	out := Exponents{n: a.n, deg: a.deg + b.deg}
	for i := 0; i < int(a.n); i++ {
		out.e[i] = a.e[i] + b.e[i]
	}

	return out
}

// Add is the unchecked product exponent. Callers guarantee equal lengths
// and a total degree ≤ MaxDegree.
func Add(a, b Exponents) Exponents { return add(a, b) }

// Compare orders a and b canonically: -1 if a precedes b, +1 if b precedes
// a, 0 if equal.
// Errors: ErrDimensionMismatch if lengths differ.
func Compare(a, b Exponents) (int, error) {
	if a.n != b.n {
		return 0, monomialErrorf("Compare", ErrDimensionMismatch)
	}

	return cmp(a, b), nil
}

// Less reports whether a precedes b canonically. Lengths are assumed equal.
func Less(a, b Exponents) bool { return cmp(a, b) < 0 }

// cmp is graded lexicographic: degree first, then larger leading exponent first.
func cmp(a, b Exponents) int {
	if a.deg != b.deg {
		if a.deg < b.deg {
			return -1
		}

		return 1
	}
	for i := 0; i < int(a.n); i++ {
		if a.e[i] != b.e[i] {
			if a.e[i] > b.e[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}
