package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter("llm_request", map[string]string{"status": "success"})
	metrics.IncrementCounter("llm_request", map[string]string{"status": "success"})
	metrics.IncrementCounter("llm_request", map[string]string{"status": "failed"})
	metrics.IncrementCounter("tips_generated", map[string]string{"status": "success", "priority_level": "High"})
	metrics.IncrementCounter("health_assessment", map[string]string{"overall_health": "good"})

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.llmRequests.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.llmRequests.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.tipsGenerated.WithLabelValues("success", "High")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.healthAssessments.WithLabelValues("good")))
}

func TestPrometheusMetrics_IgnoresUnknownAndUnlabelled(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter("something_else", map[string]string{"status": "success"})
	metrics.IncrementCounter("llm_request", nil)

	assert.Equal(t, 0, testutil.CollectAndCount(metrics.llmRequests))
}

func TestPrometheusMetrics_RecordProcessingTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime("llm_request", 1500*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "llm_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
