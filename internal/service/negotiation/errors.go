package negotiation

import "errors"

var (
	ErrOfferNotFound   = errors.New("offer not found")
	ErrJobNotOpen      = errors.New("job is not open for offers")
	ErrDuplicateBidder = errors.New("bidder already has a live offer on this job")
	ErrAlreadyAssigned = errors.New("job already assigned")
	ErrOfferResolved   = errors.New("offer already resolved")
	ErrOfferExpired    = errors.New("offer expired")
	ErrForbiddenRole   = errors.New("actor role cannot bid on this job")
	ErrNotJobOwner     = errors.New("only the job owner may accept offers")
	ErrInvalidAmount   = errors.New("offer amount must be positive")
)
