package handlers

import (
	"net/http"
	"time"

	"budget-reconciler/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// the database exporter is disabled; the check then only reports liveness.
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports service status and, when configured, database connectivity
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable,
				errors.WithDetails("Database connection failed"))
		}
		database = "connected"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
