// Package metrics defines all custom Prometheus metrics for the myURL
// console client. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "myurl_console"

// RequestsTotal counts backend API calls made by the client.
// Labels:
//   - method: HTTP method of the call (e.g. "GET")
//   - path: the logical route, without IDs (e.g. "/api/v1/urls")
//   - outcome: final HTTP status code, or "transport_error" when no
//     response was received at all
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend API requests, by route and outcome.",
	},
	[]string{"method", "path", "outcome"},
)

// RequestDuration measures the full round trip of a backend API call,
// including body read and JSON decode.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API requests from send to decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// SessionTransitionsTotal counts session state changes.
// Label:
//   - transition: "login", "logout", or "restore" (session recovered from
//     the store at startup)
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session lifecycle transitions.",
	},
	[]string{"transition"},
)
