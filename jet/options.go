// SPDX-License-Identifier: MIT

// Package jet: functional options for the algebra.
//
// Options are resolved per call; nothing is stored globally.
//   - WithPool routes the records of a result into a caller-chosen pool.
//     By default results draw from the left operand's pool. Goroutines that
//     read a shared frozen jet must pass their own pool here.
//   - WithMaxIterations bounds the Newton iteration used by Inverse/Div.
package jet

import "github.com/katalvlaran/mxjet/pool"

// DefaultMaxIterations caps the Newton steps of Inverse. 20 steps reach
// exactness through degree 2^20-1, far beyond any representable order, so
// the default never limits accuracy.
const DefaultMaxIterations = 20

const (
	panicMaxIterations = "jet: WithMaxIterations: k must be ≥ 0"
	panicNilPool       = "jet: WithPool: pool must be non-nil"
)

// Option configures a single algebra call.
type Option func(*config)

type config struct {
	maxIter int
	pool    any // *pool.Pool[T] for the ring of the call
}

// WithMaxIterations limits Inverse/Div to k Newton steps. The result is
// exact through degree 2^k-1; AccurateWeight reports the bound. Panics if
// k < 0.
func WithMaxIterations(k int) Option {
	if k < 0 {
		panic(panicMaxIterations)
	}

	return func(c *config) { c.maxIter = k }
}

// WithPool makes the call allocate result records from p. Panics on nil.
func WithPool[T Scalar](p *pool.Pool[T]) Option {
	if p == nil {
		panic(panicNilPool)
	}

	return func(c *config) { c.pool = p }
}

func gatherOptions(opts []Option) config {
	c := config{maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// resultPool picks the pool a result of ring T is written to.
func resultPool[T Scalar](c config, fallback *pool.Pool[T]) (*pool.Pool[T], error) {
	if c.pool == nil {
		return fallback, nil
	}
	p, ok := c.pool.(*pool.Pool[T])
	if !ok {
		return nil, ErrNilPool
	}

	return p, nil
}
