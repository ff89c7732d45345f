// SPDX-License-Identifier: MIT
// Package monomial: sentinel error set.
// Every message is prefixed with "monomial: ..." for grep-ability. Return
// sentinels wrapped with context via monomialErrorf; callers match them
// with errors.Is.

package monomial

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two exponent vectors of different lengths
	// were combined or compared, or an exponent length disagrees with the
	// variable count of its environment.
	ErrDimensionMismatch = errors.New("monomial: dimension mismatch")

	// ErrCapacity indicates a requested length outside [0, Capacity].
	ErrCapacity = errors.New("monomial: length exceeds capacity")

	// ErrNegative indicates a negative exponent was requested.
	ErrNegative = errors.New("monomial: negative exponent")

	// ErrDegree indicates a single exponent or the total degree would exceed MaxDegree.
	ErrDegree = errors.New("monomial: degree exceeds maximum")

	// ErrIndexOutOfRange indicates a variable index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("monomial: variable index out of range")
)

// monomialErrorf wraps err with the name of the detecting function.
func monomialErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
