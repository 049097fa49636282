package restaurant

import "errors"

var (
	ErrMissingRequiredFields = errors.New("order id and status are required")
	ErrUndefinedStatus       = errors.New("undefined restaurant order status")
)
