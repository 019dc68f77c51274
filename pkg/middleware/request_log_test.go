package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/id", nil))
	require.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	require.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, "abc-123", w2.Header().Get(RequestIDHeader))
	require.Equal(t, "abc-123", w2.Body.String())
}
