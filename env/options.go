// SPDX-License-Identifier: MIT

package env

import "go.uber.org/zap"

// DefaultName labels environments created without WithName.
const DefaultName = "env"

const panicNilLogger = "env: WithLogger: logger must be non-nil"

// Option configures an Environment at construction time.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	name   string
	logger *zap.Logger
}

// WithName sets a label carried in log fields and String output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger attaches a structured logger. Lifecycle events (creation,
// close) are logged at debug level. Panics on a nil logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{name: DefaultName, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
