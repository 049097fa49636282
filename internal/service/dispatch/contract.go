//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/pricing"
)

type JobRepository interface {
	Create(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	AppendTimeline(ctx context.Context, jobID string, entry entities.TimelineEntry) error
	SetBiddingWindow(ctx context.Context, jobID string, closesAt time.Time) error
	CountActiveByKind(ctx context.Context, kind entities.JobKind) (int, error)
	ListBiddingExpired(ctx context.Context, now time.Time) ([]entities.Job, error)
}

type OfferRepository interface {
	CountPendingByJob(ctx context.Context, jobID string) (int, error)
}

type SupplyRepository interface {
	UpsertProvider(ctx context.Context, loc entities.ProviderLocation) error
	Nearest(ctx context.Context, role entities.Role, lat, lng float64, limit int) ([]entities.ProviderLocation, error)
	AvailableProviders(ctx context.Context, role entities.Role) (int, error)
}

type RoutingGateway interface {
	DistanceKm(ctx context.Context, origin, dest entities.Place) (float64, error)
}

type PricingService interface {
	Estimate(distanceKm float64, class string, in pricing.SurgeInputs) (*pricing.Estimate, error)
}

type NegotiationService interface {
	Submit(ctx context.Context, jobID string, bidder entities.Actor, amount float64, message string, etaMinutes int) (*entities.Offer, error)
	Accept(ctx context.Context, jobID, offerID string, owner entities.Actor) (*entities.Assignment, error)
	AutoAssign(ctx context.Context, jobID, providerID string, amount float64) (*entities.Assignment, error)
	ListByJob(ctx context.Context, jobID string, actor entities.Actor) ([]entities.Offer, error)
	Expire(ctx context.Context, now time.Time) ([]entities.Offer, error)
}

type LifecycleService interface {
	Advance(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, proof string) (*entities.Job, error)
	Cancel(ctx context.Context, jobID string, actor entities.Actor, reason string) (*entities.Job, error)
}

type EventSink interface {
	Publish(event entities.Event)
}
