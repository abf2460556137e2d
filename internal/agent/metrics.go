package agent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agents_registered_total",
			Help: "Total number of agents registered",
		},
	)

	claimsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agents_claimed_total",
			Help: "Total number of agents claimed by humans",
		},
	)
)

func RecordRegistration() {
	registrationsTotal.Inc()
}

func RecordClaim() {
	claimsTotal.Inc()
}
