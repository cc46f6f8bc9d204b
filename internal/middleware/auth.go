package middleware

import (
	stderrors "errors"

	"budget-reconciler/internal/errors"
	"budget-reconciler/internal/handlers"
	"budget-reconciler/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SubjectContextKey holds the token subject of an authenticated request
	SubjectContextKey = "subject"
	// TokenIDContextKey holds the jti of the presented token
	TokenIDContextKey = "token_jti"
)

// RequireAuth creates a middleware that requires a valid bearer token issued
// for the report API
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(SubjectContextKey, claims.Subject)
			c.Set(TokenIDContextKey, claims.ID)

			return next(c)
		}
	}
}

// GetSubject returns the token subject set by RequireAuth
func GetSubject(c echo.Context) string {
	subject, _ := c.Get(SubjectContextKey).(string)
	return subject
}
