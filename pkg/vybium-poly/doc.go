// Package vybiumpoly provides polynomial algebra over the complex numbers.
//
// A Polynomial is a dense vector of complex coefficients indexed by power of
// X. Its degree is the highest index holding a non-zero coefficient, -1 for
// the zero polynomial. Every operator allocates a fresh, normalized result and
// never mutates its operands.
//
// # Features
//
// - Construction of X, constants, monomials and coefficient vectors
// - Addition, subtraction, negation, scalar and polynomial multiplication
// - Powers, formal derivatives, antiderivatives and composition
// - Euclidean division with remainder, and GCD
// - Lagrange interpolation through a set of points
// - Human-readable rendering with a matching parser
// - CBOR encoding and a SHA3-256 fingerprint
//
// # Quick Start
//
// Dividing X² - 1 by X - 1:
//
//	ring := vybiumpoly.DefaultRing()
//
//	a, err := ring.Parse("-1 + X**2")
//	if err != nil {
//		log.Fatal(err)
//	}
//	b, err := ring.FromCoefficients(vybiumpoly.Real(-1), vybiumpoly.Real(1))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	q, rem, err := ring.Div(a, b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(q, rem) // 1 + X 0
//
// # Configuration
//
// A Ring carries a storage limit, the rendering symbols and a logger:
//
//	config := vybiumpoly.DefaultConfig().
//		WithMaxDegree(4096).
//		WithVariable("z").
//		WithLogLevel("debug")
//	ring, err := vybiumpoly.NewRing(config)
//
// Results whose degree would exceed the limit fail with ErrAllocation instead
// of exhausting memory.
//
// # Errors
//
// Every failure is an *Error carrying an ErrorCode:
//
//	_, _, err := ring.Div(a, vybiumpoly.Zero())
//	if vybiumpoly.CodeOf(err) == vybiumpoly.ErrDivisionByZeroPolynomial {
//		// ...
//	}
//
// # Numerics
//
// Coefficients are float64 pairs and are compared exactly: two polynomials are
// equal only if every coefficient is bit-for-bit equal up to the sign of zero.
// No tolerance is applied anywhere, so callers running iterative numeric
// algorithms on top of this package must do their own rounding.
//
// # Architecture
//
// - pkg/vybium-poly/: Public API (this package)
// - internal/vybium-poly/: Private implementation (not importable)
package vybiumpoly
