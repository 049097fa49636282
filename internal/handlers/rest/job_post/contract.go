//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_post_test
package job_post

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/dispatch"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateJob(ctx context.Context, spec dispatch.JobSpec, owner entities.Actor) (*entities.Job, error)
}

type PlaceDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type JobCreateRequest struct {
	Kind          string   `json:"kind"`
	PricingModel  string   `json:"pricing_model"`
	VehicleClass  string   `json:"vehicle_class"`
	Origin        PlaceDTO `json:"origin"`
	Destination   PlaceDTO `json:"destination"`
	DistanceKm    float64  `json:"distance_km,omitempty"`
	ProposedPrice float64  `json:"proposed_price,omitempty"`
	RestaurantID  string   `json:"restaurant_id,omitempty"`
}

type JobCreateResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	DistanceKm   float64   `json:"distance_km"`
	FinalPrice   float64   `json:"final_price,omitempty"`
	SuggestedMin float64   `json:"suggested_min"`
	SuggestedMax float64   `json:"suggested_max"`
	Surge        float64   `json:"surge"`
	CreatedAt    time.Time `json:"created_at"`
	ProviderID   string    `json:"provider_id,omitempty"`
	OTP          string    `json:"otp,omitempty"`
}
