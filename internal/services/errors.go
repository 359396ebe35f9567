package services

import (
	"errors"
	"fmt"
)

var (
	ErrUpstream       = errors.New("llm provider request failed")
	ErrResponseFormat = errors.New("llm response has an invalid format")
)

// UpstreamError is returned when the completion call fails: transport error,
// provider error, non-2xx status or an empty completion.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %v", ErrUpstream, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrUpstream, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// ResponseFormatError is returned when a completion cannot be parsed into a TipResponse.
// The raw completion is never part of the message.
type ResponseFormatError struct {
	Reason string
	Err    error
}

func (e *ResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrResponseFormat, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrResponseFormat, e.Reason)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

func (e *ResponseFormatError) Is(target error) bool { return target == ErrResponseFormat }
