package services

import (
	"context"
	"log/slog"
	"time"

	"finwise-tips/internal/models"
)

type traceIDKey struct{}

// ContextWithTraceID returns a copy of ctx carrying the request trace ID
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by ContextWithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// TipsLogger provides structured logging for tips requests.
// Profile amounts are personal financial data and are never logged.
type TipsLogger struct {
	logger *slog.Logger
}

// NewTipsLogger creates a new tips logger
func NewTipsLogger(logger *slog.Logger) TipsLoggerInterface {
	return &TipsLogger{
		logger: logger,
	}
}

// LogTipsRequested logs an accepted request after its profile was assessed
func (tl *TipsLogger) LogTipsRequested(ctx context.Context, tipType string, overallHealth models.OverallHealth) {
	tl.logger.InfoContext(ctx, "tips requested",
		slog.String("event_type", "tips_requested"),
		slog.String("tip_type", tipType),
		slog.String("overall_health", string(overallHealth)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogTipsGenerated logs a successful response
func (tl *TipsLogger) LogTipsGenerated(ctx context.Context, tipType string, tipsCount int, priorityLevel string, durationMs int64) {
	tl.logger.InfoContext(ctx, "tips generated",
		slog.String("event_type", "tips_generated"),
		slog.String("tip_type", tipType),
		slog.Int("tips_count", tipsCount),
		slog.String("priority_level", priorityLevel),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogTipsFailed logs a request that produced no tips
func (tl *TipsLogger) LogTipsFailed(ctx context.Context, tipType string, errorMsg string, durationMs int64) {
	tl.logger.ErrorContext(ctx, "tips generation failed",
		slog.String("event_type", "tips_failed"),
		slog.String("tip_type", tipType),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
