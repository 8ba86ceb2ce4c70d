package logger

import "errors"

// ErrUnknownEnvironment indicates an environment name with no logger preset.
var ErrUnknownEnvironment = errors.New("unknown environment")
