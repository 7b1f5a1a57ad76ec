package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthFunc func() error

func (f healthFunc) Health() error { return f() }

func serve(t *testing.T, handler echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	require.NoError(t, handler(c))

	return rec
}

func TestHandler_HealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deps       map[string]HealthChecker
		wantStatus string
		wantDeps   map[string]system.DependencyStatus
	}{
		{
			name:       "의존성 정상",
			deps:       map[string]HealthChecker{constants.DependencyCatalog: healthFunc(func() error { return nil })},
			wantStatus: constants.HealthStatusHealthy,
			wantDeps: map[string]system.DependencyStatus{
				constants.DependencyCatalog: {Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy},
			},
		},
		{
			name:       "의존성 비정상",
			deps:       map[string]HealthChecker{constants.DependencyCatalog: healthFunc(func() error { return errors.New("카탈로그가 아직 적재되지 않았습니다") })},
			wantStatus: constants.HealthStatusUnhealthy,
			wantDeps: map[string]system.DependencyStatus{
				constants.DependencyCatalog: {Status: constants.HealthStatusUnhealthy, Message: "카탈로그가 아직 적재되지 않았습니다"},
			},
		},
		{
			name:       "nil 의존성은 무시",
			deps:       map[string]HealthChecker{"nothing": nil},
			wantStatus: constants.HealthStatusHealthy,
			wantDeps:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(tt.deps, version.Info{})
			rec := serve(t, h.HealthCheckHandler, "/health")

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantDeps, resp.Dependencies)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))
		})
	}
}

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, version.Info{Version: "v1.2.0", Commit: "f25b8bf", BuildDate: "2026-01-01", BuildNumber: "100", GoVersion: "go1.24.0"})
	rec := serve(t, h.VersionHandler, "/version")

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "f25b8bf",
		BuildDate:   "2026-01-01",
		BuildNumber: "100",
		GoVersion:   "go1.24.0",
	}, resp)
}
