package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"finwise-tips/internal/models"
	"finwise-tips/internal/validation"

	"github.com/go-playground/validator/v10"
)

const codeFence = "```"

// tipResponseSchema mirrors models.TipResponse with pointer fields so a missing
// field fails validation instead of decoding to a zero value.
type tipResponseSchema struct {
	Tips                *[]string `json:"tips" validate:"required,min=3,max=5,dive,not_blank"`
	PriorityLevel       *string   `json:"priority_level" validate:"required,priority_level"`
	EstimatedImpact     *string   `json:"estimated_impact" validate:"required"`
	ActionItems         *[]string `json:"action_items" validate:"required,min=3,max=5,dive,not_blank"`
	PersonalizedMessage *string   `json:"personalized_message" validate:"required"`
}

type responseNormalizer struct {
	validator *validation.Validator
}

// NewResponseNormalizer creates the parser for raw model completions
func NewResponseNormalizer(v *validation.Validator) ResponseNormalizerInterface {
	return &responseNormalizer{validator: v}
}

// Normalize strips code fences from a raw completion and decodes it into a TipResponse.
// Any syntax, shape or value problem yields a *ResponseFormatError; nothing is defaulted.
func (n *responseNormalizer) Normalize(raw string) (*models.TipResponse, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, &ResponseFormatError{Reason: "empty completion"}
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()

	var schema tipResponseSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, &ResponseFormatError{Reason: "invalid JSON", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ResponseFormatError{Reason: "trailing data after JSON object"}
	}

	if err := n.validator.Struct(&schema); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ResponseFormatError{
				Reason: "schema mismatch: " + strings.Join(validation.FieldErrors(verrs), "; "),
			}
		}
		return nil, &ResponseFormatError{Reason: "schema validation failed", Err: err}
	}

	return &models.TipResponse{
		Tips:                *schema.Tips,
		PriorityLevel:       *schema.PriorityLevel,
		EstimatedImpact:     *schema.EstimatedImpact,
		ActionItems:         *schema.ActionItems,
		PersonalizedMessage: *schema.PersonalizedMessage,
	}, nil
}

// StripCodeFence removes a markdown code fence around a completion in two steps,
// after trimming surrounding whitespace:
//
//  1. a leading "```" optionally tagged "json" (any case) and immediately followed
//     by a newline is removed; a fence without the newline is kept as is;
//  2. a trailing "```" on what remains is removed.
//
// Text without fences is returned trimmed. When only one side is fenced, only that
// side is stripped.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, codeFence) {
		rest := s[len(codeFence):]
		if len(rest) >= 4 && strings.EqualFold(rest[:4], "json") && strings.HasPrefix(rest[4:], "\n") {
			s = rest[5:]
		} else if strings.HasPrefix(rest, "\n") {
			s = rest[1:]
		}
	}

	return strings.TrimSuffix(s, codeFence)
}

// compactJSON is used in logs to keep completions on one line
func compactJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}
	return buf.String()
}
