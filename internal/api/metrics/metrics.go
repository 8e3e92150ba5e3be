// Package metrics defines and registers all custom Prometheus metrics for the
// payment tracker API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payment_tracker"

// PaymentsCreatedTotal counts newly recorded payments.
// Labels:
//   - method: "upi", "card", "bank", or "cash"
//   - status: "success", "failed", or "pending"
var PaymentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_created_total",
		Help:      "Total number of payments recorded, by method and status.",
	},
	[]string{"method", "status"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// StatsComputeDuration measures how long one statistics aggregation takes,
// including the ledger read.
var StatsComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stats_compute_duration_seconds",
		Help:      "Duration of statistics aggregation from ledger fetch to reduction.",
		Buckets:   prometheus.DefBuckets,
	},
)
