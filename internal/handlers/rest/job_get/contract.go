//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_get_test
package job_get

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
	GetJob(ctx context.Context, jobID string) (*entities.Job, error)
}

type PlaceDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type AssignmentDTO struct {
	OfferID    string    `json:"offer_id"`
	ProviderID string    `json:"provider_id"`
	Amount     float64   `json:"amount"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type TimelineEntryDTO struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note,omitempty"`
}

type JobResponse struct {
	ID              string             `json:"id"`
	Kind            string             `json:"kind"`
	OwnerID         string             `json:"owner_id"`
	RestaurantID    string             `json:"restaurant_id,omitempty"`
	Origin          PlaceDTO           `json:"origin"`
	Destination     PlaceDTO           `json:"destination"`
	DistanceKm      float64            `json:"distance_km"`
	VehicleClass    string             `json:"vehicle_class"`
	Status          string             `json:"status"`
	PricingModel    string             `json:"pricing_model"`
	ProposedPrice   float64            `json:"proposed_price,omitempty"`
	SuggestedMin    float64            `json:"suggested_min"`
	SuggestedMax    float64            `json:"suggested_max"`
	FinalPrice      float64            `json:"final_price,omitempty"`
	Surge           float64            `json:"surge"`
	Assignment      *AssignmentDTO     `json:"assignment,omitempty"`
	BiddingClosesAt *time.Time         `json:"bidding_closes_at,omitempty"`
	CancelReason    string             `json:"cancel_reason,omitempty"`
	Timeline        []TimelineEntryDTO `json:"timeline"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
