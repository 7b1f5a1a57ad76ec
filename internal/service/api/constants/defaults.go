package constants

import "time"

// 서버 설정 기본값입니다.
const (
	// DefaultRequestTimeout 설정에 요청 타임아웃이 없을 때 사용합니다.
	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기입니다. 장바구니 요청 본문은 수십 바이트 수준입니다.
	DefaultMaxBodySize = "64K"

	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간입니다.
	ShutdownTimeout = 5 * time.Second
)

// 요청 파라미터 이름입니다.
const (
	ParamProductID   = "id"
	ParamProductType = "type"
	ParamLevel       = "level"
	ParamCartID      = "cartID"
	ParamItemID      = "itemID"
	QueryLimit       = "limit"
	QueryType        = "type"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
