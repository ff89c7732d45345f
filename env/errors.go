// SPDX-License-Identifier: MIT
// Package env: sentinel error set.

package env

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnvironment is returned by New for a negative order or
	// variable count, sizes beyond monomial limits, a reference point of
	// the wrong length, or non-finite reference coordinates.
	ErrInvalidEnvironment = errors.New("env: invalid environment")

	// ErrClosed indicates the environment's last reference was released.
	ErrClosed = errors.New("env: environment closed")
)

// envErrorf wraps err with a call-site tag.
func envErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
