package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultUnit is the suffix marking the imaginary part of a complex literal.
const DefaultUnit = "j"

// ErrDivisionByZero is returned by Div when the divisor is the zero value.
var ErrDivisionByZero = errors.New("division by zero complex value")

// Complex is an element of the field of complex numbers with float64 components.
//
// Values are compared exactly, component by component. No tolerance is applied
// anywhere in this package, so results of iterative numeric algorithms built on
// top of it should be compared by the caller with an explicit epsilon.
type Complex struct {
	Real float64
	Imag float64
}

var (
	// Zero is the additive identity
	Zero = Complex{}
	// One is the multiplicative identity
	One = Complex{Real: 1}
	// I is the imaginary unit
	I = Complex{Imag: 1}
)

// New creates a complex value from its components
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// FromReal creates a complex value with a zero imaginary part
func FromReal(re float64) Complex {
	return Complex{Real: re}
}

// FromComplex128 converts a builtin complex128
func FromComplex128(c complex128) Complex {
	return Complex{Real: real(c), Imag: imag(c)}
}

// Complex128 converts the value to the builtin complex128
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}

// Add performs field addition
func (c Complex) Add(other Complex) Complex {
	return Complex{Real: c.Real + other.Real, Imag: c.Imag + other.Imag}
}

// Sub performs field subtraction
func (c Complex) Sub(other Complex) Complex {
	return Complex{Real: c.Real - other.Real, Imag: c.Imag - other.Imag}
}

// Neg returns the additive inverse
func (c Complex) Neg() Complex {
	return Complex{Real: -c.Real, Imag: -c.Imag}
}

// Mul performs field multiplication
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		Real: c.Real*other.Real - c.Imag*other.Imag,
		Imag: c.Real*other.Imag + c.Imag*other.Real,
	}
}

// Scale multiplies both components by a real factor
func (c Complex) Scale(k float64) Complex {
	return Complex{Real: c.Real * k, Imag: c.Imag * k}
}

// Div performs field division with Smith's algorithm. Scaling by the ratio of
// the denominator's components instead of forming c²+d² keeps quotients
// finite and non-zero for divisors far outside [1e-154, 1e154].
// See https://doi.org/10.1145/368637.368661
func (c Complex) Div(other Complex) (Complex, error) {
	if other.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	if math.Abs(other.Real) >= math.Abs(other.Imag) {
		// (a+bi)/(c+di) = ((a+br) + (b-ar)i) / (c+dr), r = d/c
		ratio := other.Imag / other.Real
		denom := other.Real + other.Imag*ratio
		return Complex{
			Real: (c.Real + c.Imag*ratio) / denom,
			Imag: (c.Imag - c.Real*ratio) / denom,
		}, nil
	}
	// (a+bi)/(c+di) = ((ar+b) + (br-a)i) / (cr+d), r = c/d
	ratio := other.Real / other.Imag
	denom := other.Real*ratio + other.Imag
	return Complex{
		Real: (c.Real*ratio + c.Imag) / denom,
		Imag: (c.Imag*ratio - c.Real) / denom,
	}, nil
}

// Abs returns the modulus |c|
func (c Complex) Abs() float64 {
	return math.Hypot(c.Real, c.Imag)
}

// IsZero checks if the value is exactly (0, 0)
func (c Complex) IsZero() bool {
	return c.Real == 0 && c.Imag == 0
}

// IsOne checks if the value is exactly (1, 0)
func (c Complex) IsOne() bool {
	return c.Real == 1 && c.Imag == 0
}

// IsFinite reports whether neither component is infinite or NaN
func (c Complex) IsFinite() bool {
	return !math.IsInf(c.Real, 0) && !math.IsNaN(c.Real) &&
		!math.IsInf(c.Imag, 0) && !math.IsNaN(c.Imag)
}

// IsReal reports whether the imaginary part is zero
func (c Complex) IsReal() bool {
	return c.Imag == 0
}

// Equal compares both components exactly
func (c Complex) Equal(other Complex) bool {
	return c.Real == other.Real && c.Imag == other.Imag
}

// String renders the value with the default imaginary unit
func (c Complex) String() string {
	return c.Format(DefaultUnit)
}

// Format renders the value as a literal accepted by Parse:
// "re" for real values, "imj" for purely imaginary ones and "re±imj" otherwise.
func (c Complex) Format(unit string) string {
	switch {
	case c.Imag == 0:
		return FormatFloat(c.Real)
	case c.Real == 0:
		return formatImag(c.Imag, unit)
	}
	im := FormatFloat(c.Imag)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return FormatFloat(c.Real) + im + unit
}

func formatImag(im float64, unit string) string {
	switch im {
	case 1:
		return unit
	case -1:
		return "-" + unit
	}
	return FormatFloat(im) + unit
}

// FormatFloat renders f with the shortest representation that parses back to
// exactly the same float64.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse reads a complex literal written with the given imaginary unit.
// Accepted forms are "re", "imj", "j", "-j", "re±imj" and any of them wrapped
// in parentheses.
func Parse(s, unit string) (Complex, error) {
	if unit == "" {
		unit = DefaultUnit
	}
	orig := s
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return Complex{}, fmt.Errorf("invalid complex literal %q", orig)
	}

	switch s {
	case unit, "+" + unit:
		return I, nil
	case "-" + unit:
		return I.Neg(), nil
	}

	imaginary := strings.HasSuffix(s, unit)
	s = strings.TrimSuffix(s, unit)
	if unit != "i" && strings.Contains(s, "i") {
		// strconv accepts its own "i" suffix; only the configured unit may mark
		// the imaginary part
		return Complex{}, fmt.Errorf("invalid complex literal %q: imaginary unit is %q", orig, unit)
	}
	if imaginary {
		if strings.HasSuffix(s, "+") || strings.HasSuffix(s, "-") {
			s += "1"
		}
		s += "i"
	}
	v, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return Complex{}, fmt.Errorf("invalid complex literal %q: %w", orig, err)
	}
	c := FromComplex128(v)
	if !c.IsFinite() {
		return Complex{}, fmt.Errorf("invalid complex literal %q: components must be finite", orig)
	}
	return c, nil
}
