// SPDX-License-Identifier: MIT
// Package pool: sentinel error set.

package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle indicates a handle that was never issued by this pool.
	ErrInvalidHandle = errors.New("pool: invalid handle")

	// ErrDoubleRelease indicates a handle whose slot is already on the free list.
	ErrDoubleRelease = errors.New("pool: slot already released")

	// ErrExhausted indicates that a new block would exceed the pool's
	// record limit.
	ErrExhausted = errors.New("pool: record limit reached")
)

// poolErrorf wraps err with the operation and handle involved.
func poolErrorf(op string, h Handle, err error) error {
	return fmt.Errorf("Pool.%s(%d): %w", op, h, err)
}
