package core

import "errors"

var (
	// ErrShape indicates a malformed or mismatched grid shape: empty input,
	// rows of unequal length, or two grids of different dimensions.
	ErrShape = errors.New("core: grid shape error")
	// ErrConfig indicates an out-of-range configuration value.
	ErrConfig = errors.New("core: invalid configuration")
)
