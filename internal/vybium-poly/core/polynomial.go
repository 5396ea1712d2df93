package core

import (
	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₙ⋅Xⁿ with complex coefficients.
//
// The degree is the highest index holding a non-zero coefficient, or -1 for the
// zero polynomial. Slots above the degree may still be allocated (so that
// SetCoefficient can grow the polynomial back) but are never read, until the
// degree collapses to -1 and the storage is dropped. The zero value is the
// zero polynomial.
type Polynomial struct {
	coefficients []field.Complex
	// size is degree+1: the number of coefficients up to and including the
	// leading one.
	size int
}

// Zero returns the zero polynomial. It owns no storage.
func Zero() *Polynomial {
	return &Polynomial{}
}

// Degree returns the degree of the polynomial, -1 for the zero polynomial
func (p *Polynomial) Degree() int {
	return p.size - 1
}

// IsZero reports whether p is the zero polynomial
func (p *Polynomial) IsZero() bool {
	return p.size == 0
}

// Capacity returns the number of allocated coefficient slots
func (p *Polynomial) Capacity() int {
	return len(p.coefficients)
}

// Coefficient returns the coefficient of the given degree, zero if out of range
func (p *Polynomial) Coefficient(degree int) field.Complex {
	if degree < 0 || degree >= p.size {
		return field.Zero
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the coefficient of the highest degree term,
// zero for the zero polynomial
func (p *Polynomial) LeadingCoefficient() field.Complex {
	return p.Coefficient(p.size - 1)
}

// Coefficients returns a copy of the coefficients up to the degree
func (p *Polynomial) Coefficients() []field.Complex {
	if p.size == 0 {
		return nil
	}
	coeffs := make([]field.Complex, p.size)
	copy(coeffs, p.coefficients[:p.size])
	return coeffs
}

// SetCoefficient writes c at index i and restores the degree invariant.
// i must address an allocated slot.
func (p *Polynomial) SetCoefficient(i int, c field.Complex) error {
	if i < 0 || i >= len(p.coefficients) {
		return newError(ErrIndexOutOfRange, nil,
			"index %d outside allocated storage [0, %d)", i, len(p.coefficients))
	}

	p.coefficients[i] = c
	if i >= p.size-1 && !c.IsZero() {
		p.size = i + 1
	} else {
		p.normalize()
	}
	return nil
}

// normalize trims trailing zero coefficients from the current top down. The
// zero polynomial owns no storage.
func (p *Polynomial) normalize() {
	for p.size > 0 && p.coefficients[p.size-1].IsZero() {
		p.size--
	}
	if p.size == 0 {
		p.coefficients = nil
	}
}

// finish normalizes a freshly computed result and drops the storage above its
// degree, so results hold exactly degree+1 slots and the zero polynomial none.
func (p *Polynomial) finish() *Polynomial {
	p.normalize()
	if p.size > 0 {
		p.coefficients = p.coefficients[:p.size:p.size]
	}
	return p
}

// Equal reports whether both polynomials have the same degree and exactly
// equal coefficients
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == other {
		return true
	}
	if p.size != other.size {
		return false
	}
	for i := 0; i < p.size; i++ {
		if !p.coefficients[i].Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates the polynomial at x.
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Eval(x field.Complex) field.Complex {
	result := field.Zero
	for i := p.size - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Clone creates a copy of the polynomial with storage trimmed to its degree
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{
		coefficients: p.Coefficients(),
		size:         p.size,
	}
}

// Release drops the coefficient storage, leaving the zero polynomial.
// Releasing an already empty polynomial is a no-op.
func (p *Polynomial) Release() {
	p.coefficients = nil
	p.size = 0
}

// String renders the polynomial with the default variable and imaginary unit
func (p *Polynomial) String() string {
	return format(p, DefaultVariable, field.DefaultUnit)
}
