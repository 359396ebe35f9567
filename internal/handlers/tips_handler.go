package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"finwise-tips/internal/dto"
	apierrors "finwise-tips/internal/errors"
	"finwise-tips/internal/models"
	"finwise-tips/internal/services"
	"finwise-tips/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type TipsHandler struct {
	assessor services.FinancialHealthAssessorInterface
	advisor  services.TipAdvisorInterface
	logger   services.TipsLoggerInterface
	metrics  services.MetricsRecorderInterface
}

func NewTipsHandler(
	assessor services.FinancialHealthAssessorInterface,
	advisor services.TipAdvisorInterface,
	logger services.TipsLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *TipsHandler {
	return &TipsHandler{
		assessor: assessor,
		advisor:  advisor,
		logger:   logger,
		metrics:  metrics,
	}
}

// GenerateTips assesses the submitted profile and returns AI generated tips
//
// Method: POST /generate-tips
//
// Responses:
//   - 200: TipResponse
//   - 413: VALIDATION_003 - body over the size limit, via the central error handler
//   - 422: VALIDATION_* - malformed body or invalid profile
//   - 500: TIPS_001 - provider call failed
//   - 500: TIPS_002 - provider returned unusable content
func (h *TipsHandler) GenerateTips(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.GenerateTipsRequest
	if err := decodeJSONBody(c.Request().Body, &req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FieldErrors(validationErrs)...))
		}
		slog.ErrorContext(ctx, "request validation failed unexpectedly", "trace_id", getTraceID(c), "error", err)
		return SendSystemError(c, err)
	}

	tipReq := models.TipRequest{
		Profile: req.Profile.ToProfile(),
		TipType: req.TipTypeOrDefault(),
		Context: req.ContextOrEmpty(),
	}

	assessment := h.assessor.Assess(tipReq.Profile)
	h.metrics.IncrementCounter("health_assessment", map[string]string{
		"overall_health": string(assessment.OverallHealth),
	})
	h.logger.LogTipsRequested(ctx, tipReq.TipType, assessment.OverallHealth)

	tips, err := h.advisor.GenerateTips(ctx, tipReq, assessment)
	if err != nil {
		h.logger.LogTipsFailed(ctx, tipReq.TipType, err.Error(), time.Since(startTime).Milliseconds())

		switch {
		case errors.Is(err, services.ErrUpstream):
			return SendError(c, apierrors.TipsUpstreamFailed)
		case errors.Is(err, services.ErrResponseFormat):
			return SendError(c, apierrors.TipsInvalidResponse)
		default:
			return SendSystemError(c, err)
		}
	}

	h.logger.LogTipsGenerated(ctx, tipReq.TipType, len(tips.Tips), tips.PriorityLevel, time.Since(startTime).Milliseconds())

	return c.JSON(http.StatusOK, tips)
}
