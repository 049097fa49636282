package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routing_gateway_request_duration_seconds",
			Help:    "Routing gateway request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RequestErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routing_gateway_request_errors_total",
			Help: "Total number of failed routing gateway requests",
		},
	)
)
