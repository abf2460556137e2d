package profile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var profilesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "profiles_created_total",
	Help: "Total number of dating profiles created",
})

func RecordProfileCreated() {
	profilesCreatedTotal.Inc()
}
