package fanout

import (
	"sync"

	"marketplace/internal/entities"
)

const subscriberBuffer = 16

// Hub fans committed events out to per-job subscribers. Publish holds the
// job's lock while enqueueing, so subscribers observe events in commit order.
// A subscriber that cannot keep up loses events instead of blocking the
// publisher; state never waits for observers.
type Hub struct {
	mu   sync.Mutex
	jobs map[string]*jobStream
}

type jobStream struct {
	mu   sync.Mutex
	subs map[int]chan entities.Event
	next int
}

func NewHub() *Hub {
	return &Hub{
		jobs: make(map[string]*jobStream),
	}
}

func (h *Hub) Publish(event entities.Event) {
	h.mu.Lock()
	stream, ok := h.jobs[event.JobID]
	h.mu.Unlock()
	if !ok {
		EventsPublishedTotal.WithLabelValues(string(event.Kind)).Inc()
		return
	}

	stream.mu.Lock()
	for _, ch := range stream.subs {
		select {
		case ch <- event:
		default:
			EventsDroppedTotal.Inc()
		}
	}
	stream.mu.Unlock()

	EventsPublishedTotal.WithLabelValues(string(event.Kind)).Inc()
}

// Subscribe registers a listener for one job's events. The returned cancel
// func unregisters the listener and closes the channel; it is safe to call
// more than once.
func (h *Hub) Subscribe(jobID string) (<-chan entities.Event, func()) {
	ch := make(chan entities.Event, subscriberBuffer)

	// registration happens under the hub lock so a concurrent cancel cannot
	// gc the stream between lookup and registration
	h.mu.Lock()
	stream, ok := h.jobs[jobID]
	if !ok {
		stream = &jobStream{subs: make(map[int]chan entities.Event)}
		h.jobs[jobID] = stream
	}

	stream.mu.Lock()
	id := stream.next
	stream.next++
	stream.subs[id] = ch
	stream.mu.Unlock()
	h.mu.Unlock()

	SubscribersGauge.Inc()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stream.mu.Lock()
			delete(stream.subs, id)
			stream.mu.Unlock()

			close(ch)
			SubscribersGauge.Dec()

			h.gc(jobID, stream)
		})
	}

	return ch, cancel
}

func (h *Hub) gc(jobID string, stream *jobStream) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stream.mu.Lock()
	empty := len(stream.subs) == 0
	stream.mu.Unlock()

	if empty && h.jobs[jobID] == stream {
		delete(h.jobs, jobID)
	}
}
