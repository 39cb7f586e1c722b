package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func ok(context.Context) error { return nil }

func TestLiveness_Healthy(t *testing.T) {
	rec := serve(t, NewHealthHandler(ok).Liveness)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestLiveness_StoreDown(t *testing.T) {
	down := func(context.Context) error { return errors.New("connection refused") }
	rec := serve(t, NewHealthHandler(down).Liveness)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy","error":"connection refused"}`, rec.Body.String())
}

func TestReadiness_AllUp(t *testing.T) {
	rec := serve(t, NewReadinessHandler(map[string]Check{
		"postgres": ok,
		"redis":    ok,
	}).Readiness)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Len(t, body.Dependencies, 2)
}

func TestReadiness_Degraded(t *testing.T) {
	rec := serve(t, NewReadinessHandler(map[string]Check{
		"postgres": ok,
		"mongodb":  func(context.Context) error { return errors.New("no reachable servers") },
	}).Readiness)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", body.Dependencies["mongodb"].Status)
	assert.Equal(t, "no reachable servers", body.Dependencies["mongodb"].Error)
}
