//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"marketplace/internal/entities"
)

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	// UpdateStatus flips the job status guarded by the expected current
	// status. Returns ErrStatusConflict when the guard does not hold.
	UpdateStatus(ctx context.Context, jobID string, from, to entities.JobStatus) error
	AppendTimeline(ctx context.Context, jobID string, entry entities.TimelineEntry) error
	SetCancelReason(ctx context.Context, jobID, reason string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
