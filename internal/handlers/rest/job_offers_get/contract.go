//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_offers_get_test
package job_offers_get

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListOffers(ctx context.Context, jobID string, actor entities.Actor) ([]entities.Offer, error)
}

type OfferDTO struct {
	ID         string     `json:"id"`
	JobID      string     `json:"job_id"`
	BidderID   string     `json:"bidder_id"`
	Amount     float64    `json:"amount"`
	Message    string     `json:"message,omitempty"`
	EtaMinutes int        `json:"eta_minutes,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type OffersResponse struct {
	Offers []OfferDTO `json:"offers"`
}
