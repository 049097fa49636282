//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_accept_post_test
package offer_accept_post

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
	AcceptOffer(ctx context.Context, jobID, offerID string, owner entities.Actor) (*entities.Assignment, error)
}

type AssignmentResponse struct {
	OfferID    string    `json:"offer_id"`
	ProviderID string    `json:"provider_id"`
	Amount     float64   `json:"amount"`
	AcceptedAt time.Time `json:"accepted_at"`
}
