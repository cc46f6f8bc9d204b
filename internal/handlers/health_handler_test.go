package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-reconciler/internal/database"
	"budget-reconciler/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRequest(t *testing.T, handler *HealthCheckHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HealthCheck(c))
	return rec
}

func TestHealthCheck_WithoutDatabase(t *testing.T) {
	rec := healthRequest(t, NewHealthCheckHandler(nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["database"])
}

func TestHealthCheck_DatabaseConnected(t *testing.T) {
	db := database.SetupTestDB(t)
	defer db.Close()

	rec := healthRequest(t, NewHealthCheckHandler(db.DB))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"connected"`)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())

	rec := healthRequest(t, NewHealthCheckHandler(db.DB))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, string(errors.SystemServiceUnavailable), response.Error.Code)
}
