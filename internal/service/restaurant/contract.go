//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_test
package restaurant

import (
	"context"

	"marketplace/internal/entities"
)

type DispatchService interface {
	AdvanceJob(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, proof string) (*entities.Job, error)
	CancelJob(ctx context.Context, jobID string, actor entities.Actor, reason string) (*entities.Job, error)
}

type (
	ExecuteFn      func(ctx context.Context, jobID string) error
	HandlerFactory interface {
		GetHandler(status string) (ExecuteFn, error)
	}
)
