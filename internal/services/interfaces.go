package services

import (
	"context"
	"time"

	"finwise-tips/internal/models"
)

// FinancialHealthAssessorInterface derives health metrics from a profile
type FinancialHealthAssessorInterface interface {
	Assess(profile models.FinancialProfile) models.HealthAssessment
}

// PromptComposerInterface builds the model instruction for a tips request
type PromptComposerInterface interface {
	Compose(req models.TipRequest, assessment models.HealthAssessment) (string, error)
}

// LLMClientInterface sends a prompt to the completion provider and returns the raw text
type LLMClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ResponseNormalizerInterface turns a raw completion into a validated TipResponse
type ResponseNormalizerInterface interface {
	Normalize(raw string) (*models.TipResponse, error)
}

// TipAdvisorInterface produces tips for an already assessed profile
type TipAdvisorInterface interface {
	GenerateTips(ctx context.Context, req models.TipRequest, assessment models.HealthAssessment) (*models.TipResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// TipsLoggerInterface records the lifecycle of a tips request
type TipsLoggerInterface interface {
	LogTipsRequested(ctx context.Context, tipType string, overallHealth models.OverallHealth)
	LogTipsGenerated(ctx context.Context, tipType string, tipsCount int, priorityLevel string, durationMs int64)
	LogTipsFailed(ctx context.Context, tipType string, errorMsg string, durationMs int64)
}
