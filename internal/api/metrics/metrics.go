// Package metrics defines and registers all custom Prometheus metrics for the
// back-office API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time and are
// exposed through the echoprometheus handler mounted in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts credential logins.
// Labels:
//   - portal: "public", "admin", or "employee"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by portal and outcome.",
	},
	[]string{"portal", "outcome"},
)

// RegistrationsTotal counts successful customer registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful customer registrations.",
	},
)

// GuestSessionsTotal counts guest sessions started.
var GuestSessionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guest_sessions_total",
		Help:      "Total number of guest sessions created.",
	},
)

// PasswordResetRequestsTotal counts forgot-password submissions. No label
// distinguishes known from unknown emails; the response is uniform and so is
// the metric.
var PasswordResetRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests received.",
	},
)

// PasswordResetsCompletedTotal counts successful password resets.
var PasswordResetsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_completed_total",
		Help:      "Total number of completed password resets.",
	},
)

// RateLimitedTotal counts requests rejected by the abuse rate limiter.
// Label:
//   - endpoint: "login" or "forgot_password"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"endpoint"},
)
