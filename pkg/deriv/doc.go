// Package deriv approximates derivatives of real scalar functions with finite
// differences.
//
// The package-level functions use the forward difference
//
//	f'(x) ≈ (f(x+h) - f(x)) / h
//
// with the fixed step h = Step. They compose: Derive returns a Func, so
// applying it twice approximates the second derivative.
//
//	f := func(x float64) float64 { return 3*x*x - x + 16 }
//
//	deriv.Derivative(f, 4)          // ≈ 23
//	deriv.Derive(deriv.Derive(f))(4) // ≈ 6
//
// # Accuracy
//
// The result carries truncation error proportional to h and cancellation
// error proportional to ε·|f|/h. Both compound under composition, so a second
// derivative is far less accurate than a first one. This is a property of the
// method and is not corrected for.
//
// Callers that need a different trade-off build a Differentiator once with
// the step and scheme they want:
//
//	d, err := deriv.New(deriv.WithStep(1e-4), deriv.WithScheme(deriv.Central))
//	if err != nil {
//		return err
//	}
//	slope := d.Derivative(math.Sin, 0) // ≈ 1
//
// The step is fixed at construction; there is no per-call step argument.
//
// All functions are pure. f must be free of side effects for the result to be
// meaningful; it is called two or more times per evaluation.
package deriv
