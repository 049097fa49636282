package offer

import "time"

type OfferDB struct {
	ID         string
	JobID      string
	BidderID   string
	Amount     float64
	Message    *string
	EtaMinutes int
	Status     string
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}
