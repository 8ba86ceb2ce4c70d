package deriv

// Step is the fixed step used by the package-level functions.
const Step = 1e-5

// Func is a real scalar function.
type Func func(x float64) float64

// Derivative approximates f'(x) with a forward difference of step Step.
func Derivative(f Func, x float64) float64 {
	return (f(x+Step) - f(x)) / Step
}

// Derive returns the function x -> Derivative(f, x).
func Derive(f Func) Func {
	return func(x float64) float64 {
		return Derivative(f, x)
	}
}

// DeriveN returns the n-th derivative approximation of f, built by applying
// Derive n times. For n <= 0 it returns f.
// The cost of one evaluation grows as 2^n calls to f.
func DeriveN(f Func, n int) Func {
	for range n {
		f = Derive(f)
	}
	return f
}
