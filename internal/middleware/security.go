package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to every response. The API only
// serves JSON and metrics text, so the content policy forbids everything.
// HSTS is sent only when the server sits behind TLS.
func SecurityHeaders(strictTransport bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()

			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			header.Set("Referrer-Policy", "no-referrer")
			if strictTransport {
				header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			// budget reports carry card spending
			header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")

			return next(c)
		}
	}
}
