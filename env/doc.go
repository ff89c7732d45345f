// Package env defines the Environment: the shared, immutable context that
// makes two jets combinable.
//
// 🚀 What is an Environment?
//
//	An Environment fixes three things for every jet built from it:
//	  • the number of variables (phase-space coordinates and parameters),
//	  • the maximum truncation order ("weight") of every series,
//	  • the reference point around which series are expanded.
//
// ✨ Key properties:
//   - Immutable after New: accessors return copies, nothing is mutated later.
//   - Identity compatibility: two jets combine only when they share the
//     very same *Environment. Two value-equal environments created
//     separately are incompatible by construction, which keeps the
//     compatibility check to a single pointer comparison.
//   - Reference counted: New hands one reference to the caller, each jet
//     retains one more, and the environment closes when the last one is
//     released. A closed environment refuses new jets.
//   - Explicit: there is no default or cached environment anywhere in the
//     module; the host creates and passes the ones it needs.
//
// ⚙️ Usage:
//
//	e, err := env.New(6, 7, make([]float64, 6), env.WithName("ring"))
//	if err != nil { /* ErrInvalidEnvironment */ }
//	defer e.Release()
//
// Concurrency:
//
//	Accessors are safe for concurrent use. Retain/Release use atomics, so
//	goroutines owning separate jets over one published environment do not
//	race on its counter.
package env
