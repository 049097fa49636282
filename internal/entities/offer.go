package entities

import "time"

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
	OfferExpired  OfferStatus = "expired"
)

func (s OfferStatus) String() string {
	return string(s)
}

// Offer is a counter-party's proposed price for a job. At most one live offer
// per (job, bidder) pair; at most one accepted offer per job.
type Offer struct {
	ID         string
	JobID      string
	BidderID   string
	Amount     float64
	Message    string
	EtaMinutes int
	Status     OfferStatus
	CreatedAt  time.Time
	ExpiresAt  time.Time // zero value: no forced expiry
}

func (o *Offer) Live() bool {
	return o.Status == OfferPending
}

// ExpiredAt reports whether the offer's validity window has passed at now.
func (o *Offer) ExpiredAt(now time.Time) bool {
	if o.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(o.ExpiresAt)
}
