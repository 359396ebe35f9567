package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
	TipsUpstreamFailed, TipsInvalidResponse,
	SystemInternalError, SystemNotFound, SystemServiceUnavailable, SystemConfigurationError,
	SystemUnexpectedError, SystemRateLimitExceeded, SystemMethodNotAllowed,
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Validation General", ValidationGeneral, "Validation failed"},
		{"Tips Upstream Failed", TipsUpstreamFailed, "Error generating tips: AI provider request failed"},
		{"Tips Invalid Response", TipsInvalidResponse, "Error generating tips: AI provider returned an invalid response"},
		{"Rate Limit", SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}
	s.False(IsValidErrorCode(ErrorCode("")))
	s.False(IsValidErrorCode(ErrorCode("AUTH_001")))
}

// TestErrorCodeConstants_Uniqueness ensures no two constants share a value
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool, len(allCodes))
	for _, code := range allCodes {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures codes follow PREFIX_NNN
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^(VALIDATION|TIPS|SYSTEM)_\d{3}$`)
	for _, code := range allCodes {
		s.Regexp(pattern, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	s.Len(errorMessages, len(allCodes))
	for _, code := range allCodes {
		s.NotEmpty(errorMessages[code])
	}
}
