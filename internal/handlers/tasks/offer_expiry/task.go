package offer_expiry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// OfferExpiry periodically expires stale offers and closes out delivery jobs
// whose bidding window passed with no live bids.
type OfferExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferExpiry(log logger.Logger, service Service, interval time.Duration) *OfferExpiry {
	return &OfferExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OfferExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	swept, err := o.service.SweepExpired(ctxWithTimeout)

	if swept > 0 {
		o.log.With(
			logger.NewField("expired_offers", swept),
		).Info("offer expiry sweep")
	}

	return err
}

func (o *OfferExpiry) Info() string {
	return "offer expiry sweep"
}
