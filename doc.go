// Package mxjet is a differential-algebra kernel: truncated multivariate
// power series ("jets") for computing high-order Taylor maps, such as the
// transport map of a particle through a beamline element.
//
// 🚀 What is in mxjet?
//
//	Four small packages, leaf to root:
//		• monomial – exponent vectors, graded-lex order, monomial product
//		• env      – shared, immutable, reference-counted contexts
//		             (variable count, truncation order, reference point)
//		• pool     – typed slab allocator for (monomial, coefficient) records
//		• jet      – the series themselves and their algebra: + − × ÷,
//		             composition, ∂ and ∫, elementary functions, maps
//		             (Vector) and their Jacobian
//
// ✨ Why a truncated algebra?
//
//   - Exact arithmetic up to a chosen order: every monomial above the
//     environment's order is dropped, which is the defining rule, not an
//     error.
//   - Honest precision: AccurateWeight tells how far a result can be
//     trusted after division, composition or integration.
//   - No hidden state: environments and pools are explicit values owned
//     by the caller; there is no default environment anywhere.
//
// Quick example (order 3, one variable around 0):
//
//	x      = Variable(E, p, 0)
//	f      = x³ + x
//	f·f    = x²            // x⁴ and x⁶ exceed the order
//
// Runnable scenarios live in examples/:
//
//	go run ./examples --demo ring --order 4 --turns 8
package mxjet
