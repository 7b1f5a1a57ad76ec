// Package system 시스템 엔드포인트 응답 모델을 정의합니다.
package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 외부 의존성별 헬스체크 결과 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
