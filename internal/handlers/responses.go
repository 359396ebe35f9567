package handlers

import (
	"net/http"

	"finwise-tips/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers respond with one of two helpers:
//
// 1. SendError - For client errors and known tips failures
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Provider failures: SendError(c, errors.TipsUpstreamFailed)
//    - Unusable completions: SendError(c, errors.TipsInvalidResponse)
//
// 2. SendSystemError - For anything unexpected (500 responses)
//    The wrapped error never reaches the client; log it before calling.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	status := errorResponse.GetHTTPStatus()
	RecordAPIError(c, errorResponse.Error.Code, status)
	return c.JSON(status, errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	RecordAPIError(c, errorResponse.Error.Code, http.StatusInternalServerError)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
