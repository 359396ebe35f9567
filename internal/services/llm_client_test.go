package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"finwise-tips/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type LLMClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	config   *config.LLMConfig
	metrics  *PrometheusMetrics
	client   LLMClientInterface
	requests chan map[string]interface{}
}

func TestLLMClientSuite(t *testing.T) {
	suite.Run(t, new(LLMClientTestSuite))
}

func (s *LLMClientTestSuite) SetupTest() {
	s.requests = make(chan map[string]interface{}, 1)
	s.server = nil
	s.config = &config.LLMConfig{
		APIKey:          "test-api-key",
		Model:           "gemini-1.5-flash",
		Temperature:     0.7,
		MaxOutputTokens: 1024,
		Timeout:         2 * time.Second,
	}
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
}

func (s *LLMClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

// serve starts the fake provider and points a fresh client at it
func (s *LLMClientTestSuite) serve(handler http.HandlerFunc) {
	s.server = httptest.NewServer(handler)
	s.config.BaseURL = s.server.URL
	s.client = NewGeminiClient(s.config, s.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *LLMClientTestSuite) respondWith(status int, body string) {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/chat/completions", r.URL.Path)
		s.Equal("Bearer test-api-key", r.Header.Get("Authorization"))

		var captured map[string]interface{}
		s.NoError(json.NewDecoder(r.Body).Decode(&captured))
		select {
		case s.requests <- captured:
		default:
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gemini-1.5-flash",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	})
	return string(body)
}

func (s *LLMClientTestSuite) TestComplete_ReturnsContentVerbatim() {
	content := "```json\n{\"tips\": []}\n```"
	s.respondWith(http.StatusOK, completionBody(content))

	result, err := s.client.Complete(context.Background(), "the prompt")

	s.Require().NoError(err)
	s.Equal(content, result)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.llmRequests.WithLabelValues("success")))
}

func (s *LLMClientTestSuite) TestComplete_SendsConfiguredParameters() {
	s.respondWith(http.StatusOK, completionBody("{}"))

	_, err := s.client.Complete(context.Background(), "the prompt")
	s.Require().NoError(err)

	captured := <-s.requests
	s.Equal("gemini-1.5-flash", captured["model"])
	s.InDelta(0.7, captured["temperature"], 0.0001)
	s.EqualValues(1024, captured["max_tokens"])

	messages, ok := captured["messages"].([]interface{})
	s.Require().True(ok)
	s.Require().Len(messages, 1)
	message := messages[0].(map[string]interface{})
	s.Equal("user", message["role"])
	s.Equal("the prompt", message["content"])
}

func (s *LLMClientTestSuite) TestComplete_ProviderError() {
	s.respondWith(http.StatusInternalServerError, `{"error": {"message": "backend exploded", "type": "server_error"}}`)

	result, err := s.client.Complete(context.Background(), "the prompt")

	s.Empty(result)
	s.True(errors.Is(err, ErrUpstream))

	var upstreamErr *UpstreamError
	s.Require().True(errors.As(err, &upstreamErr))
	s.Equal(http.StatusInternalServerError, upstreamErr.StatusCode)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.llmRequests.WithLabelValues("failed")))
}

func (s *LLMClientTestSuite) TestComplete_Unauthorized() {
	s.respondWith(http.StatusUnauthorized, `{"error": {"message": "API key not valid", "type": "invalid_request_error"}}`)

	_, err := s.client.Complete(context.Background(), "the prompt")

	var upstreamErr *UpstreamError
	s.Require().True(errors.As(err, &upstreamErr))
	s.Equal(http.StatusUnauthorized, upstreamErr.StatusCode)
}

func (s *LLMClientTestSuite) TestComplete_NoChoices() {
	s.respondWith(http.StatusOK, `{"id": "x", "object": "chat.completion", "model": "gemini-1.5-flash", "choices": []}`)

	_, err := s.client.Complete(context.Background(), "the prompt")

	s.True(errors.Is(err, ErrUpstream))
	s.True(errors.Is(err, errEmptyCompletion))
}

func (s *LLMClientTestSuite) TestComplete_NoRetryOnFailure() {
	var calls int32
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded"}}`))
	})

	_, err := s.client.Complete(context.Background(), "the prompt")

	s.Error(err)
	s.Equal(int32(1), atomic.LoadInt32(&calls))
}

func (s *LLMClientTestSuite) TestComplete_Timeout() {
	s.config.Timeout = 50 * time.Millisecond
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	start := time.Now()
	_, err := s.client.Complete(context.Background(), "the prompt")

	s.True(errors.Is(err, ErrUpstream))
	s.Less(time.Since(start), 900*time.Millisecond)
}

func (s *LLMClientTestSuite) TestComplete_CallerCancellation() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.Complete(ctx, "the prompt")

	s.True(errors.Is(err, ErrUpstream))
	s.True(errors.Is(err, context.Canceled))
}
