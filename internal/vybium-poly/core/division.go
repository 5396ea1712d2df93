package core

import (
	"github.com/sirupsen/logrus"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

// cancellationTolerance bounds the residue, relative to the removed leading
// coefficient, that a division step may leave behind through rounding.
const cancellationTolerance = 1e-12

// Div performs the Euclidean division of a by b, returning q and rem such that
// a = b⋅q + rem with deg rem < deg b.
func (r *Ring) Div(a, b *Polynomial) (q, rem *Polynomial, err error) {
	return r.divide(a, b, true)
}

// Rem returns the remainder of the Euclidean division of a by b without
// accumulating the quotient
func (r *Ring) Rem(a, b *Polynomial) (*Polynomial, error) {
	_, rem, err := r.divide(a, b, false)
	return rem, err
}

// divide is iterative long division. Every step removes the leading term of
// the running remainder, so its degree strictly decreases until it drops below
// the degree of b.
func (r *Ring) divide(a, b *Polynomial, withQuotient bool) (*Polynomial, *Polynomial, error) {
	if b.IsZero() {
		return nil, nil, newError(ErrDivisionByZeroPolynomial, nil,
			"cannot divide a degree %d polynomial by zero", a.Degree())
	}

	leadingB := b.LeadingCoefficient()
	rem := a.Clone()
	var quotient *Polynomial
	if withQuotient {
		quotient = Zero()
	}

	steps := 0
	for rem.Degree() >= b.Degree() {
		top := rem.Degree()

		lead := rem.LeadingCoefficient()
		c, err := lead.Div(leadingB)
		if err != nil {
			return nil, nil, newError(ErrDomain, err, "leading coefficient of divisor")
		}
		if c.IsZero() || !c.IsFinite() {
			return nil, nil, newError(ErrDomain, nil,
				"quotient term %v / %v is not representable", lead, leadingB)
		}
		term, err := r.Monomial(c, top-b.Degree())
		if err != nil {
			return nil, nil, err
		}

		if withQuotient {
			quotient, err = r.Add(quotient, term)
			if err != nil {
				return nil, nil, err
			}
		}

		scaled, err := r.Mul(term, b)
		if err != nil {
			return nil, nil, err
		}
		rem, err = r.Sub(rem, scaled)
		if err != nil {
			return nil, nil, err
		}

		if rem.Degree() == top {
			// (lead(rem)/lead(b))⋅lead(b) rounded away from lead(rem); the
			// exact difference is zero.
			residue := rem.LeadingCoefficient()
			if !residue.IsFinite() || residue.Abs() > cancellationTolerance*lead.Abs() {
				return nil, nil, newError(ErrDomain, nil,
					"division step left residue %v of leading term %v", residue, lead)
			}
			if err := rem.SetCoefficient(top, field.Zero); err != nil {
				return nil, nil, err
			}
		}
		steps++
	}

	r.log.WithFields(logrus.Fields{
		"dividend_degree":  a.Degree(),
		"divisor_degree":   b.Degree(),
		"remainder_degree": rem.Degree(),
		"steps":            steps,
	}).Debug("euclidean division")

	return quotient, rem.finish(), nil
}

// GCD returns the monic greatest common divisor of a and b computed with the
// Euclidean algorithm. GCD of two zero polynomials is zero.
//
// Coefficients are compared exactly, so for inputs with rounded coefficients
// the result is usually the constant 1.
func (r *Ring) GCD(a, b *Polynomial) (*Polynomial, error) {
	x, y := a, b
	for !y.IsZero() {
		rem, err := r.Rem(x, y)
		if err != nil {
			return nil, err
		}
		x, y = y, rem
	}

	if x.IsZero() {
		return Zero(), nil
	}
	inv, err := field.One.Div(x.LeadingCoefficient())
	if err != nil {
		return nil, newError(ErrDomain, err, "leading coefficient of gcd")
	}
	monic, err := r.MulScalar(x, inv)
	if err != nil {
		return nil, err
	}
	if err := monic.SetCoefficient(monic.Degree(), field.One); err != nil {
		return nil, err
	}
	return monic, nil
}
