// Package system 헬스체크와 버전 정보 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 의존성의 상태를 확인합니다. 정상이면 nil을 반환합니다.
type HealthChecker interface {
	Health() error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	dependencies map[string]HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다. dependencies의 키는 응답에 표시되는 의존성 이름입니다.
func NewHandler(dependencies map[string]HealthChecker, buildInfo version.Info) *Handler {
	deps := make(map[string]HealthChecker, len(dependencies))
	for name, checker := range dependencies {
		if checker != nil {
			deps[name] = checker
		}
	}

	return &Handler{
		dependencies:    deps,
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 의존성(카탈로그 등)의 상태를 확인합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	status := constants.HealthStatusHealthy
	deps := make(map[string]system.DependencyStatus, len(h.dependencies))
	for name, checker := range h.dependencies {
		if err := checker.Health(); err != nil {
			status = constants.HealthStatusUnhealthy
			deps[name] = system.DependencyStatus{Status: constants.HealthStatusUnhealthy, Message: err.Error()}
			continue
		}
		deps[name] = system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
