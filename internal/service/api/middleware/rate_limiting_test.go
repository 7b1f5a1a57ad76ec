package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rps     float64
		burst   int
		wantMsg string
	}{
		{"정상 값", 10, 20, ""},
		{"requestsPerSecond 0", 0, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"requestsPerSecond 음수", -1, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"burst 0", 10, 0, "[RateLimiting] burst는 양수여야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.wantMsg == "" {
				assert.NotPanics(t, func() { RateLimiting(tt.rps, tt.burst) })
				return
			}
			assert.PanicsWithValue(t, tt.wantMsg, func() { RateLimiting(tt.rps, tt.burst) })
		})
	}
}

func TestRateLimiting_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	handler := RateLimiting(0.001, 2)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	call := func(ip string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(req, rec))
	}

	for range 2 {
		_, err := call("10.0.0.1")
		require.NoError(t, err)
	}

	rec, err := call("10.0.0.1")
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// IP별로 독립적인 버킷을 사용합니다.
	_, err = call("10.0.0.2")
	assert.NoError(t, err)
}

func TestIPRateLimiter_SweepsIdleLimiters(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(10, 10)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 2, l.size())

	now = now.Add(limiterIdleTTL + time.Second)
	assert.True(t, l.allow("10.0.0.3"))

	assert.Equal(t, 1, l.size())
}
