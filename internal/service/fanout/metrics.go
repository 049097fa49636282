package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanout_events_published_total",
			Help: "Total number of events delivered to the fanout hub",
		},
		[]string{"kind"},
	)

	EventsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fanout_events_dropped_total",
			Help: "Events dropped because a subscriber buffer was full",
		},
	)

	SubscribersGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fanout_subscribers",
			Help: "Currently connected fanout subscribers",
		},
	)
)
