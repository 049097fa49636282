//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_post_test
package offer_post

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
	SubmitOffer(ctx context.Context, jobID string, bidder entities.Actor, amount float64, message string, etaMinutes int) (*entities.Offer, error)
}

type OfferCreateRequest struct {
	Amount     float64 `json:"amount"`
	Message    string  `json:"message,omitempty"`
	EtaMinutes int     `json:"eta_minutes,omitempty"`
}

type OfferCreateResponse struct {
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
