package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := NewHTTPServer(cfg)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	return e
}

func TestNewHTTPServer_Defaults(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{})

	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
}

func TestNewHTTPServer_Middlewares(t *testing.T) {
	e := newTestHTTPServer(HTTPServerConfig{AllowOrigins: []string{"https://shop.example.com"}})

	t.Run("공통 응답 헤더", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("허용되지 않은 Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("없는 경로는 JSON 404", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		var resp response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.ResultCode)
		assert.Equal(t, constants.ErrMsgNotFound, resp.Message)
	})

	t.Run("패닉은 500으로 복구", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("본문 크기 제한", func(t *testing.T) {
		body := strings.Repeat("a", 65*1024)
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestNewHTTPServer_RateLimiting(t *testing.T) {
	e := newTestHTTPServer(HTTPServerConfig{RateLimitPerSecond: 0.01, RateLimitBurst: 2})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:4321"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// 다른 IP는 영향을 받지 않습니다.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.8:4321"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{RequestTimeout: 20 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
		case <-time.After(time.Second):
		}
		return c.NoContent(http.StatusOK)
	})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.ErrMsgServiceUnavailable)
}
