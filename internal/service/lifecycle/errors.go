package lifecycle

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("job status changed concurrently")
	ErrForbiddenActor    = errors.New("actor is not allowed to perform this transition")
	ErrOTPMismatch       = errors.New("pickup code mismatch")
	ErrCancelNotAllowed  = errors.New("cancellation not allowed for this actor at this stage")
)
