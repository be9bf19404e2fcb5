package fetch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess        = "success"
	outcomeTransportError = "transport_error"
	outcomeBadStatus      = "bad_status"
	outcomeVerifyFailed   = "verify_failed"
)

var (
	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lumen",
		Subsystem: "fetch",
		Name:      "host_attempts_total",
		Help:      "Per-host attempt outcomes across all progressive fetches.",
	}, []string{"outcome"})

	exhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lumen",
		Subsystem: "fetch",
		Name:      "exhausted_total",
		Help:      "Progressive fetches that ran out of hosts without a verified success.",
	})
)
