package dispatch

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidKind           = errors.New("invalid job kind")
	ErrInvalidPricingModel   = errors.New("invalid pricing model")
	ErrInvalidPlace          = errors.New("invalid coordinates")
	ErrNoAvailableProviders  = errors.New("no available providers nearby")
)
