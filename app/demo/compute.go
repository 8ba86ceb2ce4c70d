package demo

import (
	"github.com/dmitrymomot/mathkit/pkg/deriv"
	"github.com/dmitrymomot/mathkit/pkg/vector"
)

// Scale is the scalar used to demonstrate that the dot product is linear.
const Scale = 3.0

// Polynomial is f(x) = 3x² - x + 16. Its derivatives are 6x - 1 and 6.
func Polynomial(x float64) float64 {
	return 3*x*x - x + 16
}

// Result holds every value the demo computes.
type Result struct {
	V, W      vector.Vec2
	Dot       float64
	DotSwap   float64
	ScaledDot float64
	NormV     float64
	NormW     float64
	Order     vector.Ordering

	X      float64
	First  float64
	Second float64
}

// Compute evaluates the vector identities for v = (2, 3), w = (4, 5) and the
// derivatives of Polynomial at x.
func Compute(x float64) Result {
	v := vector.NewVec2(2, 3)
	w := vector.NewVec2(4, 5)

	return Result{
		V:         v,
		W:         w,
		Dot:       v.Dot(w),
		DotSwap:   w.Dot(v),
		ScaledDot: v.Scale(Scale).Dot(w),
		NormV:     v.Norm(),
		NormW:     w.Norm(),
		Order:     v.Compare(w),
		X:         x,
		First:     deriv.Derivative(Polynomial, x),
		Second:    deriv.Derive(deriv.Derive(Polynomial))(x),
	}
}
