package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/backoffice/analytics/internal/domain/shared"
	"github.com/backoffice/analytics/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/overview", nil)
	return c, w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "error")
	return body["error"]
}

func TestGetTenantID(t *testing.T) {
	t.Run("returns tenant set by middleware", func(t *testing.T) {
		c, _ := newTestContext(t)
		want := uuid.New()
		c.Set(middleware.TenantIDKey, want.String())

		got, err := getTenantID(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("errors when missing", func(t *testing.T) {
		c, _ := newTestContext(t)

		_, err := getTenantID(c)
		assert.Error(t, err)
	})

	t.Run("errors on malformed value", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Set(middleware.TenantIDKey, "not-a-uuid")

		_, err := getTenantID(c)
		assert.Error(t, err)
	})
}

func TestBaseHandler_Success(t *testing.T) {
	c, w := newTestContext(t)

	h := &BaseHandler{}
	h.Success(c, gin.H{"total_revenue": 120.5})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 120.5, body["total_revenue"])
}

func TestBaseHandler_BadRequest(t *testing.T) {
	c, w := newTestContext(t)

	h := &BaseHandler{}
	h.BadRequest(c, "period must be one of: day, week, month, year")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decodeErrorBody(t, w)
	assert.Equal(t, "period must be one of: day, week, month, year", errBody["message"])
	assert.Equal(t, float64(http.StatusBadRequest), errBody["status"])
}

func TestBaseHandler_HandleError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext(t)
		h.HandleError(c, nil)
		assert.Empty(t, w.Body.String())
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		c, w := newTestContext(t)
		h.HandleError(c, shared.NewValidationError("type must be one of: stores, delivery"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errBody := decodeErrorBody(t, w)
		assert.Equal(t, "type must be one of: stores, delivery", errBody["message"])
		assert.Equal(t, float64(http.StatusBadRequest), errBody["status"])
	})

	t.Run("upstream error maps to 500 with generic message", func(t *testing.T) {
		c, w := newTestContext(t)
		h.HandleError(c, shared.NewUpstreamError("failed to load analytics data"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		errBody := decodeErrorBody(t, w)
		assert.Equal(t, "failed to load analytics data", errBody["message"])
		assert.Equal(t, float64(http.StatusInternalServerError), errBody["status"])
	})

	t.Run("unknown error maps to generic 500", func(t *testing.T) {
		c, w := newTestContext(t)
		h.HandleError(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		errBody := decodeErrorBody(t, w)
		assert.Equal(t, "An unexpected error occurred", errBody["message"])
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}
