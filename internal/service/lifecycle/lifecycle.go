package lifecycle

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

type Lifecycle struct {
	jobs      JobRepository
	txManager TxManager
}

func New(jobs JobRepository, txManager TxManager) *Lifecycle {
	return &Lifecycle{
		jobs:      jobs,
		txManager: txManager,
	}
}

// Advance moves a job one step along its kind's status graph. The transition
// is validated against the graph, the actor against the step's guard, and the
// status write is conditional on the status the decision was made from. Every
// committed transition appends exactly one timeline entry.
func (l *Lifecycle) Advance(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, proof string) (*entities.Job, error) {
	job, err := l.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if target == entities.StatusCancelled {
		return nil, fmt.Errorf("%w: cancellation has its own entry point", ErrInvalidTransition)
	}
	if isAssignmentStatus(target) {
		return nil, fmt.Errorf("%w: %s is only reachable through offer acceptance", ErrInvalidTransition, target)
	}
	if !entities.CanTransition(job.Kind, job.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, target)
	}

	if err := l.guardTransition(job, target, actor, proof); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		if err := l.jobs.UpdateStatus(ctx, jobID, job.Status, target); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		entry := entities.TimelineEntry{Status: target, At: now}
		if err := l.jobs.AppendTimeline(ctx, jobID, entry); err != nil {
			return fmt.Errorf("append timeline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.jobs.GetByID(ctx, jobID)
}

// Cancel applies the cancellation policy: customers and providers may cancel
// only before the point of no return (trip underway, order picked up),
// operators may cancel any non-terminal job. Terminal jobs never change.
func (l *Lifecycle) Cancel(ctx context.Context, jobID string, actor entities.Actor, reason string) (*entities.Job, error) {
	job, err := l.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if job.Terminal() {
		return nil, fmt.Errorf("%w: job is in terminal status %s", ErrInvalidTransition, job.Status)
	}

	if !entities.Cancellable(job.Kind, job.Status, actor.Role) {
		return nil, ErrCancelNotAllowed
	}
	if err := l.guardIdentity(job, actor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		if err := l.jobs.UpdateStatus(ctx, jobID, job.Status, entities.StatusCancelled); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if err := l.jobs.SetCancelReason(ctx, jobID, reason); err != nil {
			return fmt.Errorf("set cancel reason: %w", err)
		}

		entry := entities.TimelineEntry{Status: entities.StatusCancelled, At: now, Note: reason}
		if err := l.jobs.AppendTimeline(ctx, jobID, entry); err != nil {
			return fmt.Errorf("append timeline: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.jobs.GetByID(ctx, jobID)
}

func (l *Lifecycle) guardTransition(job *entities.Job, target entities.JobStatus, actor entities.Actor, proof string) error {
	if actor.Role == entities.RoleOperator || actor.Role == entities.RoleSystem {
		return nil
	}

	switch target {
	case entities.StatusInProgress:
		if !isAssignedProvider(job, actor) {
			return ErrForbiddenActor
		}
		if job.OTP != "" && proof != job.OTP {
			return ErrOTPMismatch
		}
	case entities.StatusArrived, entities.StatusCompleted,
		entities.StatusPickedUp, entities.StatusInTransit, entities.StatusDelivered:
		if !isAssignedProvider(job, actor) {
			return ErrForbiddenActor
		}
	case entities.StatusRestaurantAccepted, entities.StatusPreparing,
		entities.StatusReadyForPickup, entities.StatusBiddingOpen:
		if actor.Role != entities.RoleRestaurant || actor.ID != job.RestaurantID {
			return ErrForbiddenActor
		}
	case entities.StatusSearchingForProvider:
		if actor.ID != job.OwnerID {
			return ErrForbiddenActor
		}
	default:
		return ErrForbiddenActor
	}
	return nil
}

func (l *Lifecycle) guardIdentity(job *entities.Job, actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleOperator, entities.RoleSystem:
		return nil
	case entities.RoleCustomer:
		if actor.ID != job.OwnerID {
			return ErrForbiddenActor
		}
	case entities.RoleRestaurant:
		if actor.ID != job.RestaurantID {
			return ErrForbiddenActor
		}
	case entities.RoleDriver, entities.RoleCourier:
		if !isAssignedProvider(job, actor) {
			return ErrForbiddenActor
		}
	default:
		return ErrForbiddenActor
	}
	return nil
}

func isAssignedProvider(job *entities.Job, actor entities.Actor) bool {
	return job.Assignment != nil &&
		job.Assignment.ProviderID == actor.ID &&
		actor.Role == job.ProviderRole()
}

func isAssignmentStatus(s entities.JobStatus) bool {
	return s == entities.StatusAssigned || s == entities.StatusProviderAssigned
}
