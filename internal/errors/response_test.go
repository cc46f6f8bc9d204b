package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthMissingToken, s.traceID)

	s.NotNil(response)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Authorization token is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		EngineNotFound,
		s.traceID,
		WithMessage("No invoice due in 2024-04"),
		WithDetails(details...),
	)

	s.Equal("ENGINE_002", response.Error.Code)
	s.Equal("No invoice due in 2024-04", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortsFields() {
	fieldErrors := map[string]string{
		"today":   "must be a date in YYYY-MM-DD format",
		"dry_run": "must be a boolean",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"dry_run: must be a boolean",
		"today: must be a date in YYYY-MM-DD format",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internalErr := errors.New("pq: connection refused")

	response, err := WrapSystemError(internalErr, s.traceID)

	s.Equal(internalErr, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pq")
}

func (s *ResponseTestSuite) TestJSONOmitsEmptyDetails() {
	data, err := json.Marshal(NewErrorResponse(EngineSourceUnavailable, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(data), "details")

	data, err = json.Marshal(NewErrorResponse(EngineSourceUnavailable, s.traceID, WithDetails("account 7")))
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("ENGINE_001", decoded.Error.Code)
	s.Equal([]string{"account 7"}, decoded.Error.Details)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"Validation General", ValidationGeneral, http.StatusBadRequest},
		{"Validation Invalid Date", ValidationInvalidDate, http.StatusBadRequest},
		{"Auth Missing Token", AuthMissingToken, http.StatusUnauthorized},
		{"Auth Expired Token", AuthExpiredToken, http.StatusUnauthorized},
		{"Engine Not Found", EngineNotFound, http.StatusNotFound},
		{"Route Not Found", SystemRouteNotFound, http.StatusNotFound},
		{"Engine Invariant Violation", EngineInvariantViolation, http.StatusUnprocessableEntity},
		{"Engine Division Undefined", EngineDivisionUndefined, http.StatusUnprocessableEntity},
		{"Engine Source Unavailable", EngineSourceUnavailable, http.StatusBadGateway},
		{"Report Export Failed", ReportExportFailed, http.StatusBadGateway},
		{"Report Notify Failed", ReportNotifyFailed, http.StatusBadGateway},
		{"Database Error", SystemDatabaseError, http.StatusInternalServerError},
		{"Rate Limit", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"Service Unavailable", SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"System Internal Error", SystemInternalError, http.StatusInternalServerError},
		{"Unknown Code", ErrorCode("UNKNOWN_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
			s.Equal(tc.expected, NewErrorResponse(tc.code, s.traceID).GetHTTPStatus())
		})
	}
}
