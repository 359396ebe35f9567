package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"finwise-tips/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var errEmptyCompletion = errors.New("completion contained no choices")

// GeminiClient sends prompts to Gemini through its OpenAI-compatible chat completions API.
// One call per prompt; failures are returned as *UpstreamError and never retried.
type GeminiClient struct {
	config  *config.LLMConfig
	client  *openai.Client
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewGeminiClient creates a completion client from the LLM configuration
func NewGeminiClient(cfg *config.LLMConfig, metrics MetricsRecorderInterface, logger *slog.Logger) LLMClientInterface {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &GeminiClient{
		config:  cfg,
		client:  openai.NewClientWithConfig(clientConfig),
		logger:  logger,
		metrics: metrics,
	}
}

// Complete sends the prompt as a single user message and returns the first choice verbatim.
// The call is bounded by the configured timeout and by the caller's context.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxOutputTokens,
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	g.metrics.RecordProcessingTime("llm_request", time.Since(start))

	if err != nil {
		upstreamErr := &UpstreamError{StatusCode: statusCodeOf(err), Err: err}
		g.metrics.IncrementCounter("llm_request", map[string]string{"status": "failed"})
		g.logger.ErrorContext(ctx, "llm request failed",
			"model", g.config.Model,
			"status", upstreamErr.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return "", upstreamErr
	}

	if len(resp.Choices) == 0 {
		g.metrics.IncrementCounter("llm_request", map[string]string{"status": "empty"})
		return "", &UpstreamError{StatusCode: http.StatusOK, Err: errEmptyCompletion}
	}

	g.metrics.IncrementCounter("llm_request", map[string]string{"status": "success"})
	g.logger.DebugContext(ctx, "llm request completed",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)

	return resp.Choices[0].Message.Content, nil
}

func statusCodeOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
