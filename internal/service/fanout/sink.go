package fanout

import (
	"encoding/json"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Producer interface {
	Send(key string, value []byte) error
}

// Sink delivers committed events to in-process subscribers and to the event
// topic. Kafka messages are keyed by job ID so one job always lands on one
// partition. Broker failures are logged and do not fail the operation that
// produced the event.
type Sink struct {
	log      logger.Logger
	hub      *Hub
	producer Producer
}

func NewSink(log logger.Logger, hub *Hub, producer Producer) *Sink {
	return &Sink{
		log:      log,
		hub:      hub,
		producer: producer,
	}
}

func (s *Sink) Publish(event entities.Event) {
	s.hub.Publish(event)

	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.With(
			logger.NewField("job_id", event.JobID),
			logger.NewField("kind", event.Kind),
			logger.NewField("error", err),
		).Error("failed to marshal event")
		return
	}

	if err := s.producer.Send(event.JobID, payload); err != nil {
		s.log.With(
			logger.NewField("job_id", event.JobID),
			logger.NewField("kind", event.Kind),
			logger.NewField("error", err),
		).Error("failed to publish event to broker")
	}
}
