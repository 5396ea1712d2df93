package core

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
	"github.com/vybium/vybium-poly/internal/vybium-poly/utils"
)

// DefaultVariable is the symbol of the indeterminate used by Polynomial.String
const DefaultVariable = "X"

// maxSlots keeps make() away from its length overflow panic; a field.Complex
// takes 16 bytes.
const maxSlots = math.MaxInt / 16

// Ring is the polynomial ring ℂ[X] under a given configuration.
//
// It owns the storage limit applied to every result, the symbols used for
// rendering and parsing, and the logger. A Ring is immutable and safe for
// concurrent use; the polynomials it returns are not synchronized.
type Ring struct {
	maxDegree int
	variable  string
	unit      string
	log       logrus.FieldLogger
}

var defaultRing = mustRing(utils.DefaultConfig())

// DefaultRing returns the ring built from utils.DefaultConfig
func DefaultRing() *Ring {
	return defaultRing
}

// NewRing creates a ring from the given configuration
func NewRing(config *utils.Config) (*Ring, error) {
	if config == nil {
		config = utils.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, newError(ErrInvalidConfig, err, "cannot create ring")
	}

	logger := logrus.New()
	logger.SetLevel(config.Level())

	maxDegree := config.MaxDegree
	if maxDegree > maxSlots-1 {
		maxDegree = maxSlots - 1
	}

	return &Ring{
		maxDegree: maxDegree,
		variable:  config.Variable,
		unit:      config.ImaginaryUnit,
		log:       logger.WithField("component", "ring"),
	}, nil
}

func mustRing(config *utils.Config) *Ring {
	r, err := NewRing(config)
	if err != nil {
		panic("failed to create ring: " + err.Error())
	}
	return r
}

// WithLogger returns a copy of the ring that logs to l
func (r *Ring) WithLogger(l logrus.FieldLogger) *Ring {
	clone := *r
	clone.log = l
	return &clone
}

// MaxDegree returns the highest degree a result may be allocated with
func (r *Ring) MaxDegree() int {
	return r.maxDegree
}

// Variable returns the symbol of the indeterminate
func (r *Ring) Variable() string {
	return r.variable
}

// ImaginaryUnit returns the suffix of imaginary literals
func (r *Ring) ImaginaryUnit() string {
	return r.unit
}

// alloc returns a polynomial with degree+1 zero slots. Its degree is -1 until
// coefficients are written.
func (r *Ring) alloc(degree int) (*Polynomial, error) {
	switch {
	case degree < -1:
		return nil, newError(ErrIndexOutOfRange, nil, "invalid degree %d", degree)
	case degree == -1:
		return Zero(), nil
	case degree > r.maxDegree:
		r.log.WithFields(logrus.Fields{
			"degree":     degree,
			"max_degree": r.maxDegree,
		}).Debug("refusing coefficient allocation")
		return nil, newError(ErrAllocation, nil, "degree %d exceeds limit %d", degree, r.maxDegree)
	}
	return &Polynomial{coefficients: make([]field.Complex, degree+1)}, nil
}

// New creates a polynomial with storage for coefficients of degree 0 through
// degree, all zero. degree -1 yields the zero polynomial without storage.
func (r *Ring) New(degree int) (*Polynomial, error) {
	return r.alloc(degree)
}

// X returns the monomial X
func (r *Ring) X() (*Polynomial, error) {
	return r.Monomial(field.One, 1)
}

// Constant returns the constant polynomial c, the zero polynomial if c is zero
func (r *Ring) Constant(c field.Complex) (*Polynomial, error) {
	return r.Monomial(c, 0)
}

// Monomial returns c⋅Xⁿ
func (r *Ring) Monomial(c field.Complex, n int) (*Polynomial, error) {
	if n < 0 {
		return nil, newError(ErrIndexOutOfRange, nil, "negative exponent %d", n)
	}
	if c.IsZero() {
		return Zero(), nil
	}
	p, err := r.alloc(n)
	if err != nil {
		return nil, err
	}
	if err := p.SetCoefficient(n, c); err != nil {
		return nil, err
	}
	return p, nil
}

// FromCoefficients creates a polynomial from coefficients in ascending degree
// order. Trailing zeros are removed.
func (r *Ring) FromCoefficients(coefficients ...field.Complex) (*Polynomial, error) {
	degree := len(coefficients) - 1
	for degree >= 0 && coefficients[degree].IsZero() {
		degree--
	}
	p, err := r.alloc(degree)
	if err != nil {
		return nil, err
	}
	copy(p.coefficients, coefficients)
	p.size = degree + 1
	return p.finish(), nil
}

// addDegrees returns a+b, or false if the sum overflows.
func addDegrees(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}
