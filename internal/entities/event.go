package entities

import "time"

type EventKind string

const (
	EventJobCreated       EventKind = "job.created"
	EventOfferSubmitted   EventKind = "offer.submitted"
	EventOfferExpired     EventKind = "offer.expired"
	EventJobAssigned      EventKind = "job.assigned"
	EventStatusChanged    EventKind = "job.status_changed"
	EventJobCancelled     EventKind = "job.cancelled"
	EventProviderLocation EventKind = "provider.location"
)

// Event is one committed state change on a job's channel. Delivery is
// at-least-once; ordering is guaranteed within a job, not across jobs.
type Event struct {
	JobID   string                 `json:"job_id"`
	Kind    EventKind              `json:"kind"`
	At      time.Time              `json:"at"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}
