package offer_deadline

import (
	"time"

	"marketplace/internal/entities"
)

const deliveryBidTTL = 5 * time.Minute

type OfferDeadlineFactory struct{}

func New() *OfferDeadlineFactory {
	return &OfferDeadlineFactory{}
}

// CalculateDeadline returns when an offer stops being acceptable. Delivery
// bids go stale quickly because couriers move on; trip offers have no forced
// deadline and the zero time means "never expires".
func (d *OfferDeadlineFactory) CalculateDeadline(kind entities.JobKind, baseTime time.Time) time.Time {
	switch kind {
	case entities.KindDelivery:
		return baseTime.Add(deliveryBidTTL)
	default:
		return time.Time{}
	}
}
