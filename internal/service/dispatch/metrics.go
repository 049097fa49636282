package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_jobs_created_total",
			Help: "Total number of jobs created",
		},
		[]string{"kind", "pricing_model"},
	)

	OffersSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_offers_submitted_total",
			Help: "Total number of offers submitted",
		},
	)

	AcceptConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_accept_conflicts_total",
			Help: "Accept attempts that lost the assignment race",
		},
	)

	JobsTerminalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_jobs_terminal_total",
			Help: "Jobs that reached a terminal status",
		},
		[]string{"kind", "status"},
	)

	OffersExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_offers_expired_total",
			Help: "Offers swept into the expired status",
		},
	)
)
