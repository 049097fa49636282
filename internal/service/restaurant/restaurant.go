package restaurant

import (
	"context"
	"errors"
	"fmt"
)

// StatusChange is one restaurant-side order event from the broker.
type StatusChange struct {
	JobID  string
	Status string
}

// Service routes restaurant order events into delivery lifecycle transitions.
type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessStatusChange(ctx context.Context, change StatusChange) error {
	if change.JobID == "" || change.Status == "" {
		return ErrMissingRequiredFields
	}

	executeFn, err := s.statusFactory.GetHandler(change.Status)
	if err != nil {
		// statuses we do not act on are skipped, not errors
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, change.JobID); err != nil {
		return fmt.Errorf("handle status %q for job %s: %w", change.Status, change.JobID, err)
	}
	return nil
}
