package demo

import "errors"

var (
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrNilOutput     = errors.New("output cannot be nil")
	ErrInvalidLocale = errors.New("invalid locale")
	ErrOpenLogFile   = errors.New("failed to open log file")
)
