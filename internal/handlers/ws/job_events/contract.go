//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_events_test
package job_events

import (
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Subscriber hands out a live event channel for one job. The returned func
// releases the subscription and closes the channel.
type Subscriber interface {
	Subscribe(jobID string) (<-chan entities.Event, func())
}
