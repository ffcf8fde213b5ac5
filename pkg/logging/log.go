package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// NewPrometheusHook counts log statements per level into reg.
func NewPrometheusHook(reg prometheus.Registerer) *PrometheusHook {
	counter := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dockerhub_exporter",
			Name:      "log_statements_total",
			Help: "Number of log statements, differentiated by log level.",
		},
		[]string{"level"},
	)

	return &PrometheusHook{
		counter: counter,
	}
}

type PrometheusHook struct {
	counter *prometheus.CounterVec
}

func (h *PrometheusHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *PrometheusHook) Fire(e *log.Entry) error {
	h.counter.WithLabelValues(e.Level.String()).Inc()
	return nil
}
