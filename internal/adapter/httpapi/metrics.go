package httpapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "personachat_chat_requests_total",
		Help: "Completion proxy requests by persona and HTTP status.",
	}, []string{"persona", "code"})

	chatRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "personachat_chat_request_seconds",
		Help:    "End-to-end completion proxy latency, including the upstream call.",
		Buckets: prometheus.DefBuckets,
	}, []string{"persona"})
)

type chatTimer struct {
	persona string
	start   time.Time
}

func observeChat(persona string) chatTimer {
	return chatTimer{persona: persona, start: time.Now()}
}

func (t chatTimer) done(code int) {
	chatRequestsTotal.WithLabelValues(t.persona, strconv.Itoa(code)).Inc()
	chatRequestDuration.WithLabelValues(t.persona).Observe(time.Since(t.start).Seconds())
}
