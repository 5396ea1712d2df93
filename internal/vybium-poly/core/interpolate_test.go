package core

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
)

func TestInterpolate(t *testing.T) {
	r := DefaultRing()

	tests := []struct {
		name     string
		points   []Point
		expected *Polynomial
	}{
		{
			name:     "single point",
			points:   []Point{NewPoint(field.FromReal(3), field.FromReal(7))},
			expected: realPoly(t, 7),
		},
		{
			name: "line",
			points: []Point{
				NewPoint(field.Zero, field.One),
				NewPoint(field.One, field.FromReal(3)),
			},
			expected: realPoly(t, 1, 2),
		},
		{
			name: "parabola",
			points: []Point{
				NewPoint(field.FromReal(-1), field.Zero),
				NewPoint(field.Zero, field.FromReal(-1)),
				NewPoint(field.One, field.Zero),
			},
			expected: realPoly(t, -1, 0, 1),
		},
		{
			name: "all zero",
			points: []Point{
				NewPoint(field.Zero, field.Zero),
				NewPoint(field.One, field.Zero),
			},
			expected: Zero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Interpolate(tt.points)
			require.NoError(t, err)
			assertPolyInDelta(t, tt.expected, p, 1e-12)
		})
	}
}

func TestInterpolateRecoversPolynomial(t *testing.T) {
	r := DefaultRing()
	rng := rand.New(rand.NewSource(15))

	for i := 0; i < 20; i++ {
		p := randomPoly(t, rng, rng.Intn(6))

		// roots of unity keep the Lagrange basis well conditioned
		n := p.Degree() + 1 + rng.Intn(3)
		points := make([]Point, n)
		for k := range points {
			x := field.FromComplex128(cmplx.Rect(1, 2*math.Pi*float64(k)/float64(n)))
			points[k] = NewPoint(x, p.Eval(x))
		}

		q, err := r.Interpolate(points)
		require.NoError(t, err)
		for _, pt := range points {
			y := q.Eval(pt.X)
			assert.InDelta(t, pt.Y.Real, y.Real, 1e-9)
			assert.InDelta(t, pt.Y.Imag, y.Imag, 1e-9)
		}
		for k := 0; k <= p.Degree(); k++ {
			assert.InDelta(t, p.Coefficient(k).Real, q.Coefficient(k).Real, 1e-9)
			assert.InDelta(t, p.Coefficient(k).Imag, q.Coefficient(k).Imag, 1e-9)
		}
		for k := p.Degree() + 1; k <= q.Degree(); k++ {
			assert.InDelta(t, 0, q.Coefficient(k).Real, 1e-9)
			assert.InDelta(t, 0, q.Coefficient(k).Imag, 1e-9)
		}
	}
}

func TestInterpolateErrors(t *testing.T) {
	r := DefaultRing()

	_, err := r.Interpolate(nil)
	assert.Equal(t, ErrInvalidInput, CodeOf(err))

	_, err = r.Interpolate([]Point{
		NewPoint(field.One, field.One),
		NewPoint(field.I, field.Zero),
		NewPoint(field.One, field.FromReal(2)),
	})
	require.Error(t, err)
	assert.Equal(t, ErrDomain, CodeOf(err))
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}
