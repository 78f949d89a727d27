package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/ticket-marketplace/internal/api/shared/errors"
)

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Recovery(), Logger())
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(REQUEST_ID_KEY))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestRequestID(t *testing.T) {
	router := newTestRouter()

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		requestID := w.Header().Get(REQUEST_ID_HEADER)
		assert.Len(t, requestID, 36)
		assert.Equal(t, requestID, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(REQUEST_ID_HEADER, "req-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(REQUEST_ID_HEADER))
		assert.Equal(t, "req-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierrors.ErrCodeInternalError, body.Code)
}

func TestSetupCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		allowed string
	}{
		{name: "all origins", origins: nil, origin: "http://localhost:3000", allowed: "*"},
		{name: "listed origin", origins: []string{"https://tickets.example.com"}, origin: "https://tickets.example.com", allowed: "https://tickets.example.com"},
		{name: "unlisted origin", origins: []string{"https://tickets.example.com"}, origin: "https://evil.example.com", allowed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(SetupCORS(tt.origins))
			router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			req.Header.Set("Origin", tt.origin)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.allowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
