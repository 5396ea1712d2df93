package core

import (
	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

// Add adds two polynomials
func (r *Ring) Add(a, b *Polynomial) (*Polynomial, error) {
	return r.combine(a, b, field.Complex.Add)
}

// Sub subtracts b from a
func (r *Ring) Sub(a, b *Polynomial) (*Polynomial, error) {
	return r.combine(a, b, field.Complex.Sub)
}

func (r *Ring) combine(a, b *Polynomial, op func(x, y field.Complex) field.Complex) (*Polynomial, error) {
	maxDegree := a.Degree()
	if b.Degree() > maxDegree {
		maxDegree = b.Degree()
	}

	result, err := r.alloc(maxDegree)
	if err != nil {
		return nil, err
	}

	for i := 0; i <= maxDegree; i++ {
		result.coefficients[i] = op(a.Coefficient(i), b.Coefficient(i))
	}
	result.size = maxDegree + 1

	// the leading terms cancel whenever both operands share degree and lead
	return result.finish(), nil
}

// Neg returns -a
func (r *Ring) Neg(a *Polynomial) (*Polynomial, error) {
	result, err := r.alloc(a.Degree())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		result.coefficients[i] = a.coefficients[i].Neg()
	}
	result.size = a.size
	return result.finish(), nil
}

// Mul multiplies two polynomials by naïve convolution, O(deg a ⋅ deg b)
func (r *Ring) Mul(a, b *Polynomial) (*Polynomial, error) {
	if a.IsZero() || b.IsZero() {
		return Zero(), nil
	}

	resultDegree, ok := addDegrees(a.Degree(), b.Degree())
	if !ok {
		return nil, newError(ErrAllocation, nil,
			"product degree of %d and %d overflows", a.Degree(), b.Degree())
	}
	result, err := r.alloc(resultDegree)
	if err != nil {
		return nil, err
	}

	for k := 0; k <= resultDegree; k++ {
		lo := k - b.Degree()
		if lo < 0 {
			lo = 0
		}
		hi := k
		if hi > a.Degree() {
			hi = a.Degree()
		}

		sum := field.Zero
		for j := lo; j <= hi; j++ {
			sum = sum.Add(a.coefficients[j].Mul(b.coefficients[k-j]))
		}
		result.coefficients[k] = sum
	}
	result.size = resultDegree + 1

	// the top coefficient may round to zero
	return result.finish(), nil
}

// MulScalar multiplies every coefficient of a by c
func (r *Ring) MulScalar(a *Polynomial, c field.Complex) (*Polynomial, error) {
	if c.IsZero() {
		return Zero(), nil
	}
	result, err := r.alloc(a.Degree())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		result.coefficients[i] = a.coefficients[i].Mul(c)
	}
	result.size = a.size
	return result.finish(), nil
}

// Pow raises a to the n-th power by repeated multiplication, or by squaring
// when a is a constant.
//
// a⁰ is the constant 1 for every a, the zero polynomial included.
func (r *Ring) Pow(a *Polynomial, n uint) (*Polynomial, error) {
	if n == 0 {
		return r.Constant(field.One)
	}
	if a.Degree() <= 0 {
		// constants do not grow; raise the scalar by squaring
		c := powScalar(a.LeadingCoefficient(), n)
		if !c.IsFinite() {
			return nil, newError(ErrDomain, nil, "power %d of %v is not representable", n, a.LeadingCoefficient())
		}
		return r.Constant(c)
	}

	if d := a.Degree(); uint(d) > uint(r.maxDegree)/n {
		return nil, newError(ErrAllocation, nil,
			"degree of power %d of a degree %d polynomial exceeds limit %d", n, d, r.maxDegree)
	}

	result := a.Clone()
	for i := uint(1); i < n; i++ {
		next, err := r.Mul(result, a)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

func powScalar(c field.Complex, n uint) field.Complex {
	result := field.One
	for {
		if n&1 == 1 {
			result = result.Mul(c)
		}
		n >>= 1
		if n == 0 {
			return result
		}
		c = c.Mul(c)
	}
}

// Derivative computes the formal derivative of a
func (r *Ring) Derivative(a *Polynomial) (*Polynomial, error) {
	if a.Degree() < 1 {
		// Derivative of a constant or of the zero polynomial is zero
		return Zero(), nil
	}

	result, err := r.alloc(a.Degree() - 1)
	if err != nil {
		return nil, err
	}
	for i := 1; i < a.size; i++ {
		// d/dx(a_i * x^i) = i * a_i * x^(i-1)
		result.coefficients[i-1] = a.coefficients[i].Scale(float64(i))
	}
	result.size = a.size - 1
	return result.finish(), nil
}

// Integrate computes the antiderivative of a with a zero constant term
func (r *Ring) Integrate(a *Polynomial) (*Polynomial, error) {
	if a.IsZero() {
		return Zero(), nil
	}

	result, err := r.alloc(a.Degree() + 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		// ∫(a_i * x^i) dx = (a_i / (i+1)) * x^(i+1)
		k := float64(i + 1)
		c := a.coefficients[i]
		result.coefficients[i+1] = field.New(c.Real/k, c.Imag/k)
	}
	result.size = a.size + 1

	// tiny coefficients may underflow to zero
	return result.finish(), nil
}

// Compose computes (a ∘ b)(X) = a(b(X)) by Horner's method over polynomials
func (r *Ring) Compose(a, b *Polynomial) (*Polynomial, error) {
	result := Zero()
	for i := a.Degree(); i >= 0; i-- {
		product, err := r.Mul(result, b)
		if err != nil {
			return nil, err
		}

		constant, err := r.Constant(a.coefficients[i])
		if err != nil {
			return nil, err
		}

		result, err = r.Add(product, constant)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
