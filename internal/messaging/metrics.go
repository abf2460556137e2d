package messaging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var messagesSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "messages_sent_total",
	Help: "Total number of messages sent, by message type",
}, []string{"type"})

func RecordMessageSent(msgType string) {
	messagesSentTotal.WithLabelValues(msgType).Inc()
}
