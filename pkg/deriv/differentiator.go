package deriv

import (
	"fmt"
	"math"
)

// Scheme selects the finite-difference formula.
type Scheme int

const (
	// Forward uses (f(x+h) - f(x)) / h. Error is O(h).
	Forward Scheme = iota
	// Backward uses (f(x) - f(x-h)) / h. Error is O(h).
	Backward
	// Central uses (f(x+h) - f(x-h)) / 2h. Error is O(h²).
	Central
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Central:
		return "central"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Differentiator approximates derivatives with a step and scheme chosen at
// construction. It is immutable and safe for concurrent use.
type Differentiator struct {
	step   float64
	scheme Scheme
}

// Option is a functional option for configuring a Differentiator.
type Option func(*Differentiator)

// WithStep sets the step h.
func WithStep(h float64) Option {
	return func(d *Differentiator) {
		d.step = h
	}
}

// WithScheme sets the finite-difference scheme.
func WithScheme(s Scheme) Option {
	return func(d *Differentiator) {
		d.scheme = s
	}
}

// New creates a Differentiator. Without options it behaves exactly like the
// package-level functions: forward difference with step Step.
func New(opts ...Option) (*Differentiator, error) {
	d := &Differentiator{
		step:   Step,
		scheme: Forward,
	}

	for _, opt := range opts {
		opt(d)
	}

	if math.IsNaN(d.step) || math.IsInf(d.step, 0) || d.step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, d.step)
	}
	switch d.scheme {
	case Forward, Backward, Central:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, d.scheme)
	}

	return d, nil
}

// Step returns the configured step.
func (d *Differentiator) Step() float64 {
	return d.step
}

// Scheme returns the configured scheme.
func (d *Differentiator) Scheme() Scheme {
	return d.scheme
}

// Derivative approximates f'(x).
func (d *Differentiator) Derivative(f Func, x float64) float64 {
	h := d.step
	switch d.scheme {
	case Backward:
		return (f(x) - f(x-h)) / h
	case Central:
		return (f(x+h) - f(x-h)) / (2 * h)
	default:
		return (f(x+h) - f(x)) / h
	}
}

// Derive returns the function x -> d.Derivative(f, x).
func (d *Differentiator) Derive(f Func) Func {
	return func(x float64) float64 {
		return d.Derivative(f, x)
	}
}

// DeriveN applies Derive n times. For n <= 0 it returns f.
func (d *Differentiator) DeriveN(f Func, n int) Func {
	for range n {
		f = d.Derive(f)
	}
	return f
}
