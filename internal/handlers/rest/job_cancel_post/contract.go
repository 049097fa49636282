//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_cancel_post_test
package job_cancel_post

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelJob(ctx context.Context, jobID string, actor entities.Actor, reason string) (*entities.Job, error)
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type CancelResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	CancelReason string    `json:"cancel_reason,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
