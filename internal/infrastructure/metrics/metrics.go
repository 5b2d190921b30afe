// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

var (
	QuoteSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_submissions_total",
			Help: "Quote submissions by persistence outcome",
		},
		[]string{"outcome"},
	)

	QuoteSubmissionTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_submission_total_price",
			Help:    "Total price of accepted quote submissions",
			Buckets: prometheus.ExponentialBuckets(10000, 2, 12),
		},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_notifications_total",
			Help: "Messaging hand-offs by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	AdminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin login attempts by outcome",
		},
		[]string{"outcome"},
	)

	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_request_exports_total",
			Help: "Service request exports by format",
		},
		[]string{"format"},
	)
)
