package pricing

import "errors"

var (
	ErrUnknownClass    = errors.New("unknown vehicle class")
	ErrInvalidDistance = errors.New("distance must be positive")
)
