// Package jet implements truncated multivariate power series ("jets") and
// their algebra: the differential-algebra kernel used to compute high-order
// Taylor maps.
//
// A Jet[T] is a sparse, canonically ordered sequence of terms c·x^e over
// one env.Environment, with T = float64 (Real) or complex128 (Complex).
// Every term satisfies Degree(e) ≤ Environment.MaxOrder; products and
// compositions silently drop anything above it. That truncation defines
// the algebra and is never reported as an error.
//
// Data model:
//
//	Environment  shared, immutable, reference-counted context; jets mix
//	             only when built over the SAME instance (identity check).
//	Pool         typed slab allocator (package pool) holding the term
//	             records; jets never expose its handles.
//	series       term sequence shared copy-on-write between Clone handles;
//	             the first mutation privatises it.
//	accurate     AccurateWeight: highest degree still trustworthy after
//	             Div, Compose, Differentiate or Integrate.
//
// Operations:
//
//	// construction & inspection
//	Zero, Constant, Variable, FromTerms
//	All() iter.Seq2, Terms, StandardPart, Coefficient, Weight, AccurateWeight
//
//	// in-place mutation (copy-on-write, refused on frozen jets)
//	AddTerm, SetStandardPart, Scale, Negate, TruncateInPlace
//
//	// algebra (never mutates operands)
//	Add, Sub, Mul, Neg, Scaled, AddScalar, Pow, Inverse, Div
//	Compose, ComposeVector, Differentiate, Integrate, Derivative, Evaluate
//	Filter, Truncate, Exp, Log, Log10, Sqrt, PowReal
//	Sin, Cos, Tan, Sinh, Cosh, Tanh, Asin, Acos, Atan, Erf
//	ToComplex, ToReal, ImagPart
//	Equal, EqualWithin, Compare, Norm
//
//	// maps
//	NewVector, Identity, Jacobian
//
// Ownership:
//
//	Results of the algebra draw records from the left operand's pool unless
//	WithPool(p) says otherwise. Every jet and vector must be Released when
//	no longer needed; records then return to their pool and the environment
//	loses one reference.
//
// Concurrency:
//
//	The kernel is single-threaded: a Pool and the jets writing into it
//	belong to one goroutine. A jet marked with Freeze may be read by many
//	goroutines at once through the non-mutating algebra, provided each
//	passes WithPool with a pool of its own.
//
// Errors:
//
//	All failures are precondition errors reported at the violating call and
//	matched with errors.Is: ErrInvalidEnvironment, ErrEnvironmentMismatch,
//	ErrArityMismatch, ErrIndexOutOfRange, ErrDimensionMismatch,
//	ErrDivisionByZeroSeries, ErrDomain, ErrNilJet, ErrNilPool, ErrReleased,
//	ErrFrozen.
package jet
