package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/negotiation"
	"marketplace/internal/service/pricing"
	"marketplace/pkg/logger"
)

const (
	biddingWindow  = 15 * time.Minute
	autoMatchLimit = 5
)

// JobSpec is the customer's request to create a job.
type JobSpec struct {
	Kind          entities.JobKind
	PricingModel  entities.PricingModel
	VehicleClass  string
	Origin        entities.Place
	Destination   entities.Place
	DistanceKm    float64 // 0: resolve through the routing gateway
	ProposedPrice float64
	RestaurantID  string // delivery only
}

// Dispatch is the single entry point for job mutations. It composes pricing,
// negotiation and lifecycle, and publishes one event per committed change,
// always after the state is durable.
type Dispatch struct {
	log         logger.Logger
	jobs        JobRepository
	offers      OfferRepository
	supply      SupplyRepository
	routing     RoutingGateway
	pricing     PricingService
	negotiation NegotiationService
	lifecycle   LifecycleService
	sink        EventSink
}

func New(
	log logger.Logger,
	jobs JobRepository,
	offers OfferRepository,
	supply SupplyRepository,
	routing RoutingGateway,
	pricingService PricingService,
	negotiationService NegotiationService,
	lifecycleService LifecycleService,
	sink EventSink,
) *Dispatch {
	return &Dispatch{
		log:         log,
		jobs:        jobs,
		offers:      offers,
		supply:      supply,
		routing:     routing,
		pricing:     pricingService,
		negotiation: negotiationService,
		lifecycle:   lifecycleService,
		sink:        sink,
	}
}

func (d *Dispatch) CreateJob(ctx context.Context, spec JobSpec, owner entities.Actor) (*entities.Job, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	distance := spec.DistanceKm
	if distance <= 0 {
		var err error
		distance, err = d.routing.DistanceKm(ctx, spec.Origin, spec.Destination)
		if err != nil {
			return nil, fmt.Errorf("resolve distance: %w", err)
		}
	}

	providerRole := entities.ProviderRoleFor(spec.Kind)

	activeJobs, err := d.jobs.CountActiveByKind(ctx, spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("count active jobs: %w", err)
	}
	availableProviders, err := d.supply.AvailableProviders(ctx, providerRole)
	if err != nil {
		return nil, fmt.Errorf("count available providers: %w", err)
	}

	now := time.Now().UTC()
	estimate, err := d.pricing.Estimate(distance, spec.VehicleClass, pricing.SurgeInputs{
		ActiveJobs:         activeJobs,
		AvailableProviders: availableProviders,
		At:                 now,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate fare: %w", err)
	}
	suggestedMin, suggestedMax := pricing.SuggestedRange(estimate.Fare)

	id, err := entities.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate job id: %w", err)
	}

	initialStatus := entities.InitialStatus(spec.Kind, spec.PricingModel)

	job := &entities.Job{
		ID:           id,
		Kind:         spec.Kind,
		OwnerID:      owner.ID,
		RestaurantID: spec.RestaurantID,
		Origin:       spec.Origin,
		Destination:  spec.Destination,
		DistanceKm:   distance,
		VehicleClass: spec.VehicleClass,
		Status:       initialStatus,
		PricingModel: spec.PricingModel,

		ProposedPrice: spec.ProposedPrice,
		SuggestedMin:  suggestedMin,
		SuggestedMax:  suggestedMax,
		Surge:         estimate.Surge,

		Timeline:  []entities.TimelineEntry{{Status: initialStatus, At: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if spec.PricingModel == entities.PricingFixed {
		job.FinalPrice = estimate.Fare
	}

	if err := d.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	JobsCreatedTotal.WithLabelValues(string(job.Kind), string(job.PricingModel)).Inc()

	d.sink.Publish(entities.Event{
		JobID: job.ID,
		Kind:  entities.EventJobCreated,
		At:    now,
		Payload: map[string]interface{}{
			"status":        string(job.Status),
			"fare_estimate": estimate.Fare,
			"suggested_min": suggestedMin,
			"suggested_max": suggestedMax,
			"surge":         estimate.Surge,
		},
	})

	if job.Kind == entities.KindTrip && job.PricingModel == entities.PricingFixed {
		if err := d.autoMatch(ctx, job, estimate.Fare); err != nil {
			// the job stays searching; a later retry or manual offer resolves it
			d.log.With(
				logger.NewField("job_id", job.ID),
				logger.NewField("error", err),
			).Warn("auto-match failed")
			return d.jobs.GetByID(ctx, job.ID)
		}
	}

	return d.jobs.GetByID(ctx, job.ID)
}

func (d *Dispatch) GetJob(ctx context.Context, jobID string) (*entities.Job, error) {
	return d.jobs.GetByID(ctx, jobID)
}

func (d *Dispatch) SubmitOffer(ctx context.Context, jobID string, bidder entities.Actor, amount float64, message string, etaMinutes int) (*entities.Offer, error) {
	offer, err := d.negotiation.Submit(ctx, jobID, bidder, amount, message, etaMinutes)
	if err != nil {
		return nil, err
	}

	OffersSubmittedTotal.Inc()

	d.sink.Publish(entities.Event{
		JobID: jobID,
		Kind:  entities.EventOfferSubmitted,
		At:    offer.CreatedAt,
		Payload: map[string]interface{}{
			"offer_id":    offer.ID,
			"amount":      offer.Amount,
			"eta_minutes": offer.EtaMinutes,
		},
	})

	return offer, nil
}

func (d *Dispatch) AcceptOffer(ctx context.Context, jobID, offerID string, owner entities.Actor) (*entities.Assignment, error) {
	assignment, err := d.negotiation.Accept(ctx, jobID, offerID, owner)
	if err != nil {
		if errors.Is(err, negotiation.ErrAlreadyAssigned) {
			AcceptConflictsTotal.Inc()
		}
		return nil, err
	}

	d.sink.Publish(entities.Event{
		JobID: jobID,
		Kind:  entities.EventJobAssigned,
		At:    assignment.AcceptedAt,
		Payload: map[string]interface{}{
			"offer_id":    assignment.OfferID,
			"provider_id": assignment.ProviderID,
			"amount":      assignment.Amount,
		},
	})

	return assignment, nil
}

func (d *Dispatch) ListOffers(ctx context.Context, jobID string, actor entities.Actor) ([]entities.Offer, error) {
	return d.negotiation.ListByJob(ctx, jobID, actor)
}

func (d *Dispatch) AdvanceJob(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, proof string) (*entities.Job, error) {
	job, err := d.lifecycle.Advance(ctx, jobID, target, actor, proof)
	if err != nil {
		return nil, err
	}

	if target == entities.StatusBiddingOpen {
		closesAt := time.Now().UTC().Add(biddingWindow)
		if err := d.jobs.SetBiddingWindow(ctx, jobID, closesAt); err != nil {
			return nil, fmt.Errorf("set bidding window: %w", err)
		}
		job.BiddingClosesAt = &closesAt
	}

	if entities.IsTerminal(target) {
		JobsTerminalTotal.WithLabelValues(string(job.Kind), string(target)).Inc()
	}

	d.sink.Publish(entities.Event{
		JobID: jobID,
		Kind:  entities.EventStatusChanged,
		At:    time.Now().UTC(),
		Payload: map[string]interface{}{
			"status": string(target),
		},
	})

	return job, nil
}

func (d *Dispatch) CancelJob(ctx context.Context, jobID string, actor entities.Actor, reason string) (*entities.Job, error) {
	job, err := d.lifecycle.Cancel(ctx, jobID, actor, reason)
	if err != nil {
		return nil, err
	}

	JobsTerminalTotal.WithLabelValues(string(job.Kind), string(entities.StatusCancelled)).Inc()

	d.sink.Publish(entities.Event{
		JobID: jobID,
		Kind:  entities.EventJobCancelled,
		At:    time.Now().UTC(),
		Payload: map[string]interface{}{
			"reason": reason,
		},
	})

	return job, nil
}

// RecordLocation updates the supply index. No job locks are involved, a ping
// storm cannot slow down accepts.
func (d *Dispatch) RecordLocation(ctx context.Context, provider entities.Actor, lat, lng float64) error {
	loc := entities.ProviderLocation{
		ProviderID: provider.ID,
		Role:       provider.Role,
		Lat:        lat,
		Lng:        lng,
	}
	if err := d.supply.UpsertProvider(ctx, loc); err != nil {
		return fmt.Errorf("upsert provider location: %w", err)
	}

	d.sink.Publish(entities.Event{
		JobID: "", // provider events are not tied to a job stream
		Kind:  entities.EventProviderLocation,
		At:    time.Now().UTC(),
		Payload: map[string]interface{}{
			"provider_id": provider.ID,
			"lat":         lat,
			"lng":         lng,
		},
	})
	return nil
}

// SweepExpired expires stale offers and closes out delivery jobs whose
// bidding window passed with no live bids. Runs from the background task.
func (d *Dispatch) SweepExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()

	expired, err := d.negotiation.Expire(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire offers: %w", err)
	}

	for _, o := range expired {
		OffersExpiredTotal.Inc()
		d.sink.Publish(entities.Event{
			JobID: o.JobID,
			Kind:  entities.EventOfferExpired,
			At:    now,
			Payload: map[string]interface{}{
				"offer_id": o.ID,
			},
		})
	}

	swept := int64(len(expired))

	stale, err := d.jobs.ListBiddingExpired(ctx, now)
	if err != nil {
		return swept, fmt.Errorf("list expired bidding jobs: %w", err)
	}

	for _, job := range stale {
		pending, err := d.offers.CountPendingByJob(ctx, job.ID)
		if err != nil {
			return swept, fmt.Errorf("count pending offers: %w", err)
		}
		if pending > 0 {
			continue
		}

		if _, err := d.CancelJob(ctx, job.ID, entities.SystemActor, "bidding window closed with no offers"); err != nil {
			d.log.With(
				logger.NewField("job_id", job.ID),
				logger.NewField("error", err),
			).Warn("failed to cancel stale bidding job")
			continue
		}
		swept++
	}

	return swept, nil
}

func (d *Dispatch) autoMatch(ctx context.Context, job *entities.Job, fare float64) error {
	candidates, err := d.supply.Nearest(ctx, job.ProviderRole(), job.Origin.Lat, job.Origin.Lng, autoMatchLimit)
	if err != nil {
		return fmt.Errorf("find nearest providers: %w", err)
	}
	if len(candidates) == 0 {
		return ErrNoAvailableProviders
	}

	var lastErr error
	for _, c := range candidates {
		assignment, err := d.negotiation.AutoAssign(ctx, job.ID, c.ProviderID, fare)
		if err != nil {
			lastErr = err
			continue
		}

		d.sink.Publish(entities.Event{
			JobID: job.ID,
			Kind:  entities.EventJobAssigned,
			At:    assignment.AcceptedAt,
			Payload: map[string]interface{}{
				"offer_id":    assignment.OfferID,
				"provider_id": assignment.ProviderID,
				"amount":      assignment.Amount,
				"auto":        true,
			},
		})
		return nil
	}

	return fmt.Errorf("auto-match exhausted candidates: %w", lastErr)
}

func validateSpec(spec JobSpec) error {
	switch spec.Kind {
	case entities.KindTrip, entities.KindDelivery:
	default:
		return ErrInvalidKind
	}

	switch spec.PricingModel {
	case entities.PricingFixed, entities.PricingBidding:
	default:
		return ErrInvalidPricingModel
	}

	if spec.VehicleClass == "" {
		return fmt.Errorf("%w: vehicle class", ErrMissingRequiredFields)
	}
	if spec.Kind == entities.KindDelivery && spec.RestaurantID == "" {
		return fmt.Errorf("%w: restaurant id", ErrMissingRequiredFields)
	}

	for _, p := range []entities.Place{spec.Origin, spec.Destination} {
		if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			return ErrInvalidPlace
		}
	}
	if spec.Origin == spec.Destination {
		return fmt.Errorf("%w: origin equals destination", ErrInvalidPlace)
	}

	return nil
}
