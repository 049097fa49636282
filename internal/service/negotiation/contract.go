//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_test
package negotiation

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	// WriteAssignment flips the job into its assigned status and records the
	// winner, guarded by the current status and an empty assignment slot.
	// Returns lifecycle.ErrStatusConflict when another writer got there first.
	WriteAssignment(ctx context.Context, jobID string, from, to entities.JobStatus, a entities.Assignment, otp string) error
	AppendTimeline(ctx context.Context, jobID string, entry entities.TimelineEntry) error
}

type OfferRepository interface {
	Create(ctx context.Context, offer entities.Offer) error
	GetByID(ctx context.Context, id string) (*entities.Offer, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Offer, error)
	// UpdateStatus flips an offer from one status to another, failing when the
	// offer is no longer in the expected status.
	UpdateStatus(ctx context.Context, offerID string, from, to entities.OfferStatus) error
	RejectPendingByJob(ctx context.Context, jobID, exceptOfferID string) (int64, error)
	// ExpireDue marks pending offers past their deadline as expired and
	// returns the affected offers.
	ExpireDue(ctx context.Context, now time.Time) ([]entities.Offer, error)
}

type DeadlineFactory interface {
	CalculateDeadline(kind entities.JobKind, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
