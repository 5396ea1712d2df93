package core

import (
	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

// Point represents a sample (X, Y) for polynomial interpolation
type Point struct {
	X field.Complex
	Y field.Complex
}

// NewPoint creates a new point
func NewPoint(x, y field.Complex) Point {
	return Point{X: x, Y: y}
}

// Interpolate returns the polynomial of degree at most len(points)-1 passing
// through every point, using the Lagrange basis
//
//	L_i(X) = ∏_{j≠i} (X - x_j) / (x_i - x_j)
func (r *Ring) Interpolate(points []Point) (*Polynomial, error) {
	if len(points) == 0 {
		return nil, newError(ErrInvalidInput, nil, "need at least one point for interpolation")
	}

	result := Zero()
	for i, point := range points {
		basis, err := r.Constant(field.One)
		if err != nil {
			return nil, err
		}

		for j, other := range points {
			if i == j {
				continue
			}

			denominator := point.X.Sub(other.X)
			invDenominator, err := field.One.Div(denominator)
			if err != nil {
				return nil, newError(ErrDomain, err, "duplicate x-coordinate %v at points %d and %d", point.X, i, j)
			}

			// (X - x_j) / (x_i - x_j)
			factor, err := r.FromCoefficients(other.X.Neg().Mul(invDenominator), invDenominator)
			if err != nil {
				return nil, err
			}

			basis, err = r.Mul(basis, factor)
			if err != nil {
				return nil, err
			}
		}

		term, err := r.MulScalar(basis, point.Y)
		if err != nil {
			return nil, err
		}

		result, err = r.Add(result, term)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
