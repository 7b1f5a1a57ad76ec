// Package constants API 서비스 전반에서 사용하는 상수(컴포넌트 이름, 기본값, 메시지)를 정의합니다.
package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentErrorHandler = "api.error_handler"

	ComponentMiddlewareHTTPLogger    = "api.middleware.http_logger"
	ComponentMiddlewareRateLimit     = "api.middleware.rate_limit"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
	ComponentMiddlewareContentType   = "api.middleware.content_type"
)
