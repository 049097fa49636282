//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_status_post_test
package job_status_post

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
	AdvanceJob(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, proof string) (*entities.Job, error)
}

type StatusChangeRequest struct {
	Status string `json:"status"`
	OTP    string `json:"otp,omitempty"`
}

type StatusChangeResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
