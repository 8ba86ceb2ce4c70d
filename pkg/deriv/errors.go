package deriv

import "errors"

var (
	// ErrInvalidStep indicates a step that is not a finite positive number.
	ErrInvalidStep = errors.New("invalid step")

	// ErrUnknownScheme indicates a finite-difference scheme the package does not implement.
	ErrUnknownScheme = errors.New("unknown difference scheme")
)
