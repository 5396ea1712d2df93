package core

import (
	"math"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-poly/internal/vybium-poly/field"
	"github.com/vybium/vybium-poly/internal/vybium-poly/utils"
)

func TestNewRing(t *testing.T) {
	r, err := NewRing(nil)
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultMaxDegree, r.MaxDegree())
	assert.Equal(t, "X", r.Variable())
	assert.Equal(t, "j", r.ImaginaryUnit())

	r, err = NewRing(utils.DefaultConfig().WithMaxDegree(16).WithVariable("t").WithImaginaryUnit("i"))
	require.NoError(t, err)
	assert.Equal(t, 16, r.MaxDegree())
	assert.Equal(t, "t", r.Variable())
	assert.Equal(t, "i", r.ImaginaryUnit())
}

func TestNewRingInvalidConfig(t *testing.T) {
	configs := []*utils.Config{
		utils.DefaultConfig().WithMaxDegree(-1),
		utils.DefaultConfig().WithVariable(""),
		utils.DefaultConfig().WithVariable("e"),
		utils.DefaultConfig().WithImaginaryUnit("X"),
		utils.DefaultConfig().WithLogLevel("chatty"),
	}

	for _, config := range configs {
		_, err := NewRing(config)
		require.Error(t, err)
		assert.Equal(t, ErrInvalidConfig, CodeOf(err))
	}
}

func TestNewRingClampsMaxDegree(t *testing.T) {
	r, err := NewRing(utils.DefaultConfig().WithMaxDegree(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, maxSlots-1, r.MaxDegree())
}

func TestAllocationLimit(t *testing.T) {
	r, err := NewRing(utils.DefaultConfig().WithMaxDegree(8))
	require.NoError(t, err)

	x, err := r.X()
	require.NoError(t, err)
	x5, err := r.Pow(x, 5)
	require.NoError(t, err)

	_, err = r.New(9)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.Monomial(field.One, 9)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.FromCoefficients(make([]field.Complex, 9)...)
	assert.NoError(t, err, "trailing zeros are trimmed before allocation")

	_, err = r.Mul(x5, x5)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.Pow(x, 9)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.Pow(x5, math.MaxUint32)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.Integrate(monomial8(t, r))
	assert.Equal(t, ErrAllocation, CodeOf(err))

	p, err := r.Pow(x, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Degree())

	// the zero polynomial never needs storage
	z, err := r.Pow(Zero(), 1000)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

// monomial8 returns X⁸ in r.
func monomial8(t *testing.T, r *Ring) *Polynomial {
	t.Helper()
	p, err := r.Monomial(field.One, 8)
	require.NoError(t, err)
	return p
}

func TestMulDegreeOverflow(t *testing.T) {
	r := DefaultRing()
	huge := &Polynomial{size: math.MaxInt}
	one := realPoly(t, 0, 1)

	_, err := r.Mul(huge, huge)
	assert.Equal(t, ErrAllocation, CodeOf(err))

	_, err = r.Mul(huge, one)
	assert.Equal(t, ErrAllocation, CodeOf(err))
}

func TestDivisionLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := DefaultRing().WithLogger(logger.WithField("component", "ring"))

	_, _, err := r.Div(realPoly(t, -1, 0, 1), realPoly(t, -1, 1))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "euclidean division", entry.Message)
	assert.Equal(t, "ring", entry.Data["component"])
	assert.Equal(t, 2, entry.Data["dividend_degree"])
	assert.Equal(t, 1, entry.Data["divisor_degree"])
	assert.Equal(t, -1, entry.Data["remainder_degree"])
	assert.Equal(t, 2, entry.Data["steps"])
}

func TestAllocationLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r, err := NewRing(utils.DefaultConfig().WithMaxDegree(2))
	require.NoError(t, err)
	r = r.WithLogger(logger)

	_, err = r.New(3)
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "refusing coefficient allocation", entry.Message)
	assert.Equal(t, 3, entry.Data["degree"])
	assert.Equal(t, 2, entry.Data["max_degree"])
}

func TestWithLoggerLeavesOriginal(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	base := DefaultRing()
	_ = base.WithLogger(logger)

	_, _, err := base.Div(realPoly(t, 0, 1), realPoly(t, 1))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestRingConcurrentUse(t *testing.T) {
	r := DefaultRing()
	a := realPoly(t, -1, 0, 1)
	b := realPoly(t, -1, 1)
	expected := realPoly(t, 1, 1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q, rem, err := r.Div(a, b)
				assert.NoError(t, err)
				assert.True(t, expected.Equal(q))
				assert.True(t, rem.IsZero())
			}
		}()
	}
	wg.Wait()
}
