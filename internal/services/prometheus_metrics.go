package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	llmRequests       *prometheus.CounterVec
	llmDuration       prometheus.Histogram
	tipsGenerated     *prometheus.CounterVec
	healthAssessments *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service collectors on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total number of completion requests sent to the LLM provider",
			},
			[]string{"status"},
		),
		llmDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "LLM completion request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
			},
		),
		tipsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tips_generated_total",
				Help: "Total number of tip generation attempts by outcome and priority level",
			},
			[]string{"status", "priority_level"},
		),
		healthAssessments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "health_assessments_total",
				Help: "Total number of financial health assessments by overall health",
			},
			[]string{"overall_health"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "llm_request":
		if status := tags["status"]; status != "" {
			m.llmRequests.WithLabelValues(status).Inc()
		}
	case "tips_generated":
		if status := tags["status"]; status != "" {
			m.tipsGenerated.WithLabelValues(status, tags["priority_level"]).Inc()
		}
	case "health_assessment":
		if health := tags["overall_health"]; health != "" {
			m.healthAssessments.WithLabelValues(health).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "llm_request":
		m.llmDuration.Observe(duration.Seconds())
	}
}
