// SPDX-License-Identifier: MIT

package pool

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultBlockSize is the number of records carved per block.
	DefaultBlockSize = 256

	// MaxRecords is the largest number of records a pool can address:
	// handles are int32 indices.
	MaxRecords = math.MaxInt32
)

const (
	panicBlockSize  = "pool: WithBlockSize: size must be ≥ 1"
	panicMaxRecords = "pool: WithMaxRecords: limit must be in [1, MaxRecords]"
	panicNilLogger  = "pool: WithLogger: logger must be non-nil"
)

// Option configures a Pool.
type Option func(*options)

type options struct {
	blockSize  int
	maxRecords int
	logger     *zap.Logger
}

// WithBlockSize sets the number of records per block. Panics if n < 1.
func WithBlockSize(n int) Option {
	if n < 1 {
		panic(panicBlockSize)
	}

	return func(o *options) { o.blockSize = n }
}

// WithMaxRecords caps the pool's capacity at n records (default
// MaxRecords). Panics if n is outside [1, MaxRecords].
func WithMaxRecords(n int) Option {
	if n < 1 || n > MaxRecords {
		panic(panicMaxRecords)
	}

	return func(o *options) { o.maxRecords = n }
}

// WithLogger attaches a logger; block growth is reported at debug level.
// Panics on a nil logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{blockSize: DefaultBlockSize, maxRecords: MaxRecords, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
