package negotiation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/lifecycle"
)

type Negotiation struct {
	jobs            JobRepository
	offers          OfferRepository
	deadlineFactory DeadlineFactory
	txManager       TxManager
}

func New(
	jobs JobRepository,
	offers OfferRepository,
	deadlineFactory DeadlineFactory,
	txManager TxManager,
) *Negotiation {
	return &Negotiation{
		jobs:            jobs,
		offers:          offers,
		deadlineFactory: deadlineFactory,
		txManager:       txManager,
	}
}

// Submit records a bid against an open job. Only the counter-party role of
// the job kind may bid, and each bidder holds at most one live offer per job.
func (n *Negotiation) Submit(ctx context.Context, jobID string, bidder entities.Actor, amount float64, message string, etaMinutes int) (*entities.Offer, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	job, err := n.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if !entities.IsOpenForOffers(job.Status) {
		return nil, ErrJobNotOpen
	}

	if bidder.Role != job.ProviderRole() {
		return nil, ErrForbiddenRole
	}

	id, err := entities.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate offer id: %w", err)
	}

	now := time.Now().UTC()
	offer := entities.Offer{
		ID:         id,
		JobID:      jobID,
		BidderID:   bidder.ID,
		Amount:     amount,
		Message:    message,
		EtaMinutes: etaMinutes,
		Status:     entities.OfferPending,
		CreatedAt:  now,
		ExpiresAt:  n.deadlineFactory.CalculateDeadline(job.Kind, now),
	}

	if err := n.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return &offer, nil
}

// Accept resolves the negotiation in favor of one offer. The assignment
// write, the winner flip and the sibling rejections commit as a single
// transaction; when several owners race, exactly one Accept succeeds and the
// rest fail with ErrAlreadyAssigned.
func (n *Negotiation) Accept(ctx context.Context, jobID, offerID string, owner entities.Actor) (*entities.Assignment, error) {
	job, err := n.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if job.OwnerID != owner.ID && owner.Role != entities.RoleOperator {
		return nil, ErrNotJobOwner
	}

	if job.Assigned() {
		return nil, ErrAlreadyAssigned
	}
	if !entities.IsOpenForOffers(job.Status) {
		return nil, ErrJobNotOpen
	}

	offer, err := n.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if offer.JobID != jobID {
		return nil, ErrOfferNotFound
	}

	now := time.Now().UTC()
	switch {
	case offer.Status == entities.OfferExpired || (offer.Live() && offer.ExpiredAt(now)):
		return nil, ErrOfferExpired
	case !offer.Live():
		return nil, ErrOfferResolved
	}

	assignment := entities.Assignment{
		OfferID:    offer.ID,
		ProviderID: offer.BidderID,
		Amount:     offer.Amount,
		AcceptedAt: now,
	}

	otp := ""
	if job.Kind == entities.KindTrip {
		otp, err = entities.NewOTP()
		if err != nil {
			return nil, fmt.Errorf("generate pickup code: %w", err)
		}
	}

	assignedStatus := assignedStatusFor(job.Kind)

	err = n.txManager.Do(ctx, func(ctx context.Context) error {
		if err := n.jobs.WriteAssignment(ctx, jobID, job.Status, assignedStatus, assignment, otp); err != nil {
			return fmt.Errorf("write assignment: %w", err)
		}

		if err := n.offers.UpdateStatus(ctx, offer.ID, entities.OfferPending, entities.OfferAccepted); err != nil {
			return fmt.Errorf("accept offer: %w", err)
		}

		if _, err := n.offers.RejectPendingByJob(ctx, jobID, offer.ID); err != nil {
			return fmt.Errorf("reject sibling offers: %w", err)
		}

		entry := entities.TimelineEntry{
			Status: assignedStatus,
			At:     now,
			Note:   fmt.Sprintf("offer %s accepted at %.2f", offer.ID, offer.Amount),
		}
		if err := n.jobs.AppendTimeline(ctx, jobID, entry); err != nil {
			return fmt.Errorf("append timeline: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, lifecycle.ErrStatusConflict) {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}

	return &assignment, nil
}

// AutoAssign matches a fixed-price job to a chosen provider: a system offer
// at the fixed fare is recorded and accepted in one transaction. The same
// conditional assignment write applies, so a concurrent accept still yields
// a single winner.
func (n *Negotiation) AutoAssign(ctx context.Context, jobID, providerID string, amount float64) (*entities.Assignment, error) {
	job, err := n.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if job.Assigned() {
		return nil, ErrAlreadyAssigned
	}

	offerID, err := entities.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate offer id: %w", err)
	}

	now := time.Now().UTC()
	offer := entities.Offer{
		ID:        offerID,
		JobID:     jobID,
		BidderID:  providerID,
		Amount:    amount,
		Message:   "auto-matched",
		Status:    entities.OfferPending,
		CreatedAt: now,
	}

	assignment := entities.Assignment{
		OfferID:    offerID,
		ProviderID: providerID,
		Amount:     amount,
		AcceptedAt: now,
	}

	otp := ""
	if job.Kind == entities.KindTrip {
		otp, err = entities.NewOTP()
		if err != nil {
			return nil, fmt.Errorf("generate pickup code: %w", err)
		}
	}

	assignedStatus := assignedStatusFor(job.Kind)

	err = n.txManager.Do(ctx, func(ctx context.Context) error {
		if err := n.offers.Create(ctx, offer); err != nil {
			return fmt.Errorf("create system offer: %w", err)
		}

		if err := n.jobs.WriteAssignment(ctx, jobID, job.Status, assignedStatus, assignment, otp); err != nil {
			return fmt.Errorf("write assignment: %w", err)
		}

		if err := n.offers.UpdateStatus(ctx, offerID, entities.OfferPending, entities.OfferAccepted); err != nil {
			return fmt.Errorf("accept system offer: %w", err)
		}

		entry := entities.TimelineEntry{
			Status: assignedStatus,
			At:     now,
			Note:   fmt.Sprintf("auto-matched to provider %s at %.2f", providerID, amount),
		}
		if err := n.jobs.AppendTimeline(ctx, jobID, entry); err != nil {
			return fmt.Errorf("append timeline: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, lifecycle.ErrStatusConflict) {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}

	return &assignment, nil
}

// ListByJob returns all offers on a job, newest first per repository order.
// Only the owner and operators see other bidders' offers.
func (n *Negotiation) ListByJob(ctx context.Context, jobID string, actor entities.Actor) ([]entities.Offer, error) {
	job, err := n.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	offers, err := n.offers.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	if job.OwnerID == actor.ID || actor.Role == entities.RoleOperator {
		return offers, nil
	}

	own := offers[:0]
	for _, o := range offers {
		if o.BidderID == actor.ID {
			own = append(own, o)
		}
	}
	return own, nil
}

// Expire marks stale pending offers as expired. Idempotent: already-expired
// offers are not matched again.
func (n *Negotiation) Expire(ctx context.Context, now time.Time) ([]entities.Offer, error) {
	expired, err := n.offers.ExpireDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire due offers: %w", err)
	}
	return expired, nil
}

func assignedStatusFor(kind entities.JobKind) entities.JobStatus {
	if kind == entities.KindDelivery {
		return entities.StatusProviderAssigned
	}
	return entities.StatusAssigned
}
