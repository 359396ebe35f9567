package services

import (
	"context"
	"fmt"
	"log/slog"

	"finwise-tips/internal/models"
)

type tipAdvisor struct {
	composer   PromptComposerInterface
	llm        LLMClientInterface
	normalizer ResponseNormalizerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewTipAdvisor wires the prompt composer, the completion client and the response normalizer.
// The advisor holds no per-request state.
func NewTipAdvisor(
	composer PromptComposerInterface,
	llm LLMClientInterface,
	normalizer ResponseNormalizerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TipAdvisorInterface {
	return &tipAdvisor{
		composer:   composer,
		llm:        llm,
		normalizer: normalizer,
		metrics:    metrics,
		logger:     logger,
	}
}

// GenerateTips composes the prompt, performs one completion call and parses the result.
// The first failing stage aborts the request; no partial response is returned.
func (a *tipAdvisor) GenerateTips(ctx context.Context, req models.TipRequest, assessment models.HealthAssessment) (*models.TipResponse, error) {
	prompt, err := a.composer.Compose(req, assessment)
	if err != nil {
		return nil, fmt.Errorf("compose prompt: %w", err)
	}

	completion, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate tips: %w", err)
	}

	tips, err := a.normalizer.Normalize(completion)
	if err != nil {
		a.metrics.IncrementCounter("tips_generated", map[string]string{"status": "invalid_response"})
		a.logger.WarnContext(ctx, "llm completion rejected",
			"tip_type", req.TipType,
			"completion_length", len(completion),
			"error", err,
		)
		a.logger.DebugContext(ctx, "rejected completion", "completion", compactJSON(completion))
		return nil, fmt.Errorf("parse tips: %w", err)
	}

	a.metrics.IncrementCounter("tips_generated", map[string]string{
		"status":         "success",
		"priority_level": tips.PriorityLevel,
	})

	return tips, nil
}
