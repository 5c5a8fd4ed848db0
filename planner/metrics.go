package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeRejected    = "rejected"
	outcomeCancelled   = "cancelled"
)

var (
	plansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bestfirst_plans_total",
		Help: "Plan requests by outcome (found, unreachable, rejected, cancelled)",
	}, []string{"outcome"})

	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bestfirst_plan_duration_seconds",
		Help:    "Wall time of grid searches run by the planner",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	planExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bestfirst_plan_expanded_cells",
		Help:    "Cells expanded per grid search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)
