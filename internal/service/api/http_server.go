package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/storefront-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성 설정입니다.
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins CORS 허용 Origin 목록 (예: ["*"], ["https://shop.example.com"])
	AllowOrigins []string

	// RequestTimeout 요청 최대 처리 시간. 0이면 constants.DefaultRequestTimeout을 사용합니다.
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한. 0이면 기본값을 사용합니다.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다. 라우트는 포함하지 않습니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery: 이후 모든 미들웨어의 panic까지 복구
//  2. RequestID: 로그에 request_id를 남기기 위해 로깅보다 먼저
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 제한 미들웨어보다 먼저
//  5. RateLimiting (429)
//  6. BodyLimit (413)
//  7. Timeout (503)
//  8. CORS
//  9. Secure 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	perSecond, burst := cfg.RateLimitPerSecond, cfg.RateLimitBurst
	if perSecond <= 0 {
		perSecond = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(perSecond, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(middleware.Secure())

	return e
}
