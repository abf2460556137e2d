package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matching_likes_total",
		Help: "Total number of recorded likes",
	})

	passesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matching_passes_total",
		Help: "Total number of recorded passes",
	})

	matchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matching_mutual_matches_total",
		Help: "Total number of pairs promoted to a mutual match",
	})

	compatibilityScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matching_compatibility_score",
		Help:    "Distribution of compatibility scores served in discovery batches",
		Buckets: []float64{50, 60, 70, 80, 90, 100, 120, 150, 200},
	})

	discoveryBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matching_discovery_batch_size",
		Help:    "Number of candidates returned per discovery request",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)

func RecordLike()  { likesTotal.Inc() }
func RecordPass()  { passesTotal.Inc() }
func RecordMatch() { matchesTotal.Inc() }

func ObserveCompatibilityScore(score int) { compatibilityScores.Observe(float64(score)) }
func ObserveDiscovery(returned int)       { discoveryBatchSize.Observe(float64(returned)) }
