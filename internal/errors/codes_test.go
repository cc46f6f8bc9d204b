package errors

import (
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

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Auth Missing Token", AuthMissingToken, "Authorization token is required"},
		{"Validation General", ValidationGeneral, "Validation failed"},
		{"Engine Source Unavailable", EngineSourceUnavailable, "Billing data source is unavailable"},
		{"Engine Invariant Violation", EngineInvariantViolation, "Billing data contradicts a reconciliation invariant"},
		{"Report Export Failed", ReportExportFailed, "Report export failed"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	validCodes := []ErrorCode{
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		ValidationGeneral,
		ValidationInvalidDate,
		EngineSourceUnavailable,
		EngineNotFound,
		EngineInvariantViolation,
		EngineDivisionUndefined,
		ReportExportFailed,
		ReportNotifyFailed,
		SystemInternalError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "code %s should be valid", code)
	}

	s.False(IsValidErrorCode("ENGINE_999"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestErrorCodePrefixes() {
	for code := range errorMessages {
		s.Regexp(`^(AUTH|VALIDATION|ENGINE|REPORT|SYSTEM)_\d{3}$`, string(code))
	}
}
