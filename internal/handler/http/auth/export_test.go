package auth

import "github.com/prometheus/client_golang/prometheus"

func AuthzFailures(reason string) prometheus.Counter {
	return authzFailuresTotal.WithLabelValues(reason)
}
