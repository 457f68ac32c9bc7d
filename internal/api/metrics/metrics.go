// Package metrics defines the custom Prometheus metrics for the clinic API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// SignupsTotal counts accounts created successfully.
// Label:
//   - role: the stored role of the new account ("PATIENT", "DOCTOR", "ADMIN")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// SigninsTotal counts successful signins.
// Label:
//   - role: the role of the authenticated account
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of successful signins, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected auth requests.
// Labels:
//   - operation: "signup" or "signin"
//   - reason: "validation", "conflict", "invalid_credentials", or "internal"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected auth requests, by operation and reason.",
	},
	[]string{"operation", "reason"},
)
