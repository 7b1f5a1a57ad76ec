package constants

// 헬스체크 상태입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog 외부 의존성 ID: 상품 카탈로그
	DependencyCatalog = "catalog"

	MsgDepStatusHealthy = "정상 작동 중"
)
