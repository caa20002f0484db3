package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ns  string = "geoid"
	sub string = "api"
)

var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Subsystem: sub,
		Name:      "request_duration_ms",
		Help:      "Duration of HTTP requests from when the middleware receives them until the response is written",
		Buckets:   []float64{0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 50, 100},
	}, []string{"path", "code", "method"})

	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Geographic resolutions by level and outcome (hit or miss)",
	}, []string{"level", "outcome", "source"})

	StreamMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: "worker",
		Name:      "stream_messages_total",
		Help:      "Stream messages handled by workers, by result",
	}, []string{"worker", "result"})
)

// Источники разрешений для метки source
const (
	SourceHTTP   = "http"
	SourceStream = "stream"
	SourceCLI    = "cli"
)

// ObserveResolution учитывает одно разрешение
func ObserveResolution(level, outcome, source string) {
	Resolutions.With(prometheus.Labels{"level": level, "outcome": outcome, "source": source}).Inc()
}
