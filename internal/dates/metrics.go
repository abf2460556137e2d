package dates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proposalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "date_proposals_total",
		Help: "Total number of date proposals created",
	})

	confirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "date_proposals_confirmed_total",
		Help: "Total number of date proposals confirmed",
	})
)

func RecordProposal()  { proposalsTotal.Inc() }
func RecordConfirmed() { confirmedTotal.Inc() }
