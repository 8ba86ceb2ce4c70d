package config

import "errors"

// ErrParsingConfig indicates the environment could not be parsed into the target struct.
var ErrParsingConfig = errors.New("failed to parse config")
