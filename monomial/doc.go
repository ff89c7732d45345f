// Package monomial provides the exponent vector that identifies one
// monomial of a truncated multivariate power series.
//
// What & Why:
//
//	An Exponents value is a fixed-capacity array of per-variable powers.
//	It is a plain comparable value: it can be copied freely, used as a map
//	key, and stored inline in pooled term records without any heap
//	allocation of its own. The product of two monomials is the entrywise
//	Sum of their exponents; the total degree is cached on construction.
//
// Ordering:
//
//	Compare and Less implement the canonical graded-lexicographic order
//	used for storage: lower total degree first, then, for equal degrees,
//	the larger power on the lower-index variable first. With two variables
//	(x, y) the order reads
//
//	    1, x, y, x², xy, y², x³, ...
//
//	so the constant term is always first and every degree band is
//	contiguous.
//
// Complexity:
//
//	Every operation is O(n) in the number of variables, n ≤ Capacity.
package monomial
