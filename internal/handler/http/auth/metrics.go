package auth

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons, used as metric labels and in debug logs.
const (
	ReasonMissing   = "missing"
	ReasonMalformed = "malformed"
	ReasonInvalid   = "invalid"
)

var (
	errMissingHeader = errors.New("missing authorization header")
	errNotBearer     = errors.New("authorization header is not a bearer token")
)

var (
	// authzFailuresTotal counts rejected requests by reason.
	authzFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_failures_total",
			Help: "Requests rejected by the bearer token check, by reason",
		},
		[]string{"reason"},
	)

	// authzCheckDuration tracks authorization check duration.
	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Authorization check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
)

// RecordAuthzFailure records a rejected token.
func RecordAuthzFailure(reason string) {
	authzFailuresTotal.WithLabelValues(reason).Inc()
}
