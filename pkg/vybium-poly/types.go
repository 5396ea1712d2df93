package vybiumpoly

import (
	"github.com/vybium/vybium-poly/internal/vybium-poly/core"
	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
	"github.com/vybium/vybium-poly/internal/vybium-poly/utils"
)

// Complex is a complex coefficient
type Complex = field.Complex

// Polynomial is a polynomial with complex coefficients.
// The zero value is the zero polynomial.
type Polynomial = core.Polynomial

// Ring creates and combines polynomials under a configuration
type Ring = core.Ring

// Point is an interpolation sample
type Point = core.Point

// Config configures a Ring
type Config = utils.Config

// Common coefficients
var (
	ComplexZero = field.Zero
	ComplexOne  = field.One
	ComplexI    = field.I
)

// NewComplex returns re + im⋅i
func NewComplex(re, im float64) Complex {
	return field.New(re, im)
}

// Real returns the real coefficient re
func Real(re float64) Complex {
	return field.FromReal(re)
}

// ParseComplex reads a complex literal such as "1.5", "-2j" or "(1-3j)"
func ParseComplex(s, unit string) (Complex, error) {
	c, err := field.Parse(s, unit)
	if err != nil {
		return Complex{}, &Error{Code: ErrInvalidInput, Message: "cannot parse complex value", Cause: err}
	}
	return c, nil
}

// NewPoint creates an interpolation sample
func NewPoint(x, y Complex) Point {
	return core.NewPoint(x, y)
}
