package restaurant_handle

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/restaurant"
)

// Broker-side restaurant order statuses.
const (
	StatusAccepted       = "accepted"
	StatusPreparing      = "preparing"
	StatusReadyForPickup = "ready_for_pickup"
	StatusCancelled      = "cancelled"
)

type StatusHandlerFactory struct {
	dispatchService restaurant.DispatchService
}

func NewStatusHandlerFactory(dispatchService restaurant.DispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status string) (restaurant.ExecuteFn, error) {
	switch status {
	case StatusAccepted:
		return f.acceptedHandler, nil
	case StatusPreparing:
		return f.preparingHandler, nil
	case StatusReadyForPickup:
		return f.readyHandler, nil
	case StatusCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", restaurant.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, jobID string) error {
	_, err := f.dispatchService.AdvanceJob(ctx, jobID, entities.StatusRestaurantAccepted, entities.SystemActor, "")
	if err != nil {
		return fmt.Errorf("accept order %s: %w", jobID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) preparingHandler(ctx context.Context, jobID string) error {
	_, err := f.dispatchService.AdvanceJob(ctx, jobID, entities.StatusPreparing, entities.SystemActor, "")
	if err != nil {
		return fmt.Errorf("mark order %s preparing: %w", jobID, err)
	}
	return nil
}

// readyHandler moves the order to ready and opens bidding in one go: couriers
// can start bidding the moment food is waiting.
func (f *StatusHandlerFactory) readyHandler(ctx context.Context, jobID string) error {
	if _, err := f.dispatchService.AdvanceJob(ctx, jobID, entities.StatusReadyForPickup, entities.SystemActor, ""); err != nil {
		return fmt.Errorf("mark order %s ready: %w", jobID, err)
	}
	if _, err := f.dispatchService.AdvanceJob(ctx, jobID, entities.StatusBiddingOpen, entities.SystemActor, ""); err != nil {
		return fmt.Errorf("open bidding for order %s: %w", jobID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, jobID string) error {
	_, err := f.dispatchService.CancelJob(ctx, jobID, entities.SystemActor, "cancelled by restaurant")
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", jobID, err)
	}
	return nil
}
