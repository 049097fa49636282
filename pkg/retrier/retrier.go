package retrier

import "time"

// Config describes an exponential backoff policy. ShouldRetry == nil retries
// every error.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	ShouldRetry     func(error) bool
}
