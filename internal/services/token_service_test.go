package services

import (
	"testing"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	service *TokenService
	clock   time.Time
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	s.clock = time.Now()
	s.service = NewTokenService(config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "test-issuer",
		TokenTTL:  time.Hour,
	}).(*TokenService)
	s.service.now = func() time.Time { return s.clock }
}

func (s *TokenServiceTestSuite) sign(claims models.CustomClaims, secret string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	s.Require().NoError(err)
	return token
}

func (s *TokenServiceTestSuite) claims() models.CustomClaims {
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "scheduler",
			IssuedAt:  jwt.NewNumericDate(s.clock),
			ExpiresAt: jwt.NewNumericDate(s.clock.Add(time.Hour)),
		},
		Scope:     ScopeReports,
		TokenType: TokenTypeAccess,
	}
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken("scheduler")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(s.clock.Add(time.Hour), expiresAt, time.Second)

	claims, err := s.service.ValidateToken(token)

	s.Require().NoError(err)
	s.Equal("scheduler", claims.Subject)
	s.Equal(ScopeReports, claims.Scope)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestGenerateToken_EmptySubject() {
	_, _, err := s.service.GenerateToken("  ")

	s.ErrorIs(err, ErrEmptySubject)
}

func (s *TokenServiceTestSuite) TestValidateToken_Expired() {
	token, _, err := s.service.GenerateToken("scheduler")
	s.Require().NoError(err)

	s.clock = s.clock.Add(2 * time.Hour)
	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_Rejections() {
	wrongIssuer := s.claims()
	wrongIssuer.Issuer = "someone-else"
	wrongType := s.claims()
	wrongType.TokenType = "refresh"
	wrongScope := s.claims()
	wrongScope.Scope = "admin"

	testCases := []struct {
		name     string
		token    string
		expected error
	}{
		{"empty", "", ErrEmptyToken},
		{"garbage", "not-a-token", ErrInvalidToken},
		{"wrong secret", s.sign(s.claims(), "other-secret"), ErrInvalidToken},
		{"wrong issuer", s.sign(wrongIssuer, "test-secret"), ErrInvalidIssuer},
		{"wrong type", s.sign(wrongType, "test-secret"), ErrInvalidTokenType},
		{"wrong scope", s.sign(wrongScope, "test-secret"), ErrInvalidScope},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.ValidateToken(tc.token)
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *TokenServiceTestSuite) TestValidateToken_RejectsNoneAlgorithm() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, s.claims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase", "bearer abc.def.ghi", "abc.def.ghi", nil},
		{"extra spaces", "Bearer   abc.def.ghi  ", "abc.def.ghi", nil},
		{"empty", "", "", ErrInvalidAuthHeader},
		{"basic", "Basic dXNlcjpwYXNz", "", ErrInvalidAuthHeader},
		{"no token", "Bearer ", "", ErrInvalidAuthHeader},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.err != nil {
				s.ErrorIs(err, tc.err)
				return
			}
			s.NoError(err)
			s.Equal(tc.expected, token)
		})
	}
}
