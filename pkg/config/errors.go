package config

import "errors"

var (
	// ErrNilPointer indicates Load was called with a nil destination.
	ErrNilPointer = errors.New("config: nil pointer passed to Load")
	// ErrParsingConfig indicates the environment could not be parsed into
	// the destination struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
