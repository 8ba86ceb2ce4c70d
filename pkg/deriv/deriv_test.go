package deriv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mathkit/pkg/deriv"
)

func quadratic(x float64) float64 {
	return 3*x*x - x + 16
}

func TestDerivative(t *testing.T) {
	t.Parallel()

	t.Run("quadratic at 4", func(t *testing.T) {
		// Exact value is 6x - 1 = 23; forward difference adds 3h.
		got := deriv.Derivative(quadratic, 4.0)
		assert.InDelta(t, 23.0, got, 1e-3)
		assert.Greater(t, got, 23.0)
	})

	t.Run("linear function is exact up to rounding", func(t *testing.T) {
		f := func(x float64) float64 { return 2*x + 1 }
		assert.InDelta(t, 2.0, deriv.Derivative(f, -10), 1e-8)
	})

	t.Run("constant function", func(t *testing.T) {
		f := func(float64) float64 { return 42 }
		assert.Equal(t, 0.0, deriv.Derivative(f, 1))
	})

	t.Run("library function", func(t *testing.T) {
		assert.InDelta(t, 1.0, deriv.Derivative(math.Sin, 0), 1e-6)
		assert.InDelta(t, 1.0, deriv.Derivative(math.Exp, 0), 1e-4)
	})

	t.Run("does not call f more than twice", func(t *testing.T) {
		calls := 0
		f := func(x float64) float64 {
			calls++
			return x
		}
		_ = deriv.Derivative(f, 0)
		assert.Equal(t, 2, calls)
	})

	t.Run("NaN input propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(deriv.Derivative(quadratic, math.NaN())))
	})
}

func TestDerive(t *testing.T) {
	t.Parallel()

	t.Run("first derivative as function", func(t *testing.T) {
		df := deriv.Derive(quadratic)
		assert.Equal(t, deriv.Derivative(quadratic, 4), df(4))
		assert.InDelta(t, -1.0, df(0), 1e-3)
	})

	t.Run("second derivative by composition", func(t *testing.T) {
		// Error compounds: cancellation in the outer difference is amplified by 1/h.
		d2f := deriv.Derive(deriv.Derive(quadratic))
		assert.InDelta(t, 6.0, d2f(4), 1e-2)
	})

	t.Run("DeriveN matches composition", func(t *testing.T) {
		assert.Equal(t, deriv.Derive(deriv.Derive(quadratic))(4), deriv.DeriveN(quadratic, 2)(4))
	})

	t.Run("DeriveN with zero order returns f", func(t *testing.T) {
		assert.Equal(t, quadratic(3), deriv.DeriveN(quadratic, 0)(3))
		assert.Equal(t, quadratic(3), deriv.DeriveN(quadratic, -1)(3))
	})
}
