package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/pkg/validation"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug          bool                 `json:"debug"`
	Catalog        CatalogConfig        `json:"catalog"`
	Recommendation RecommendationConfig `json:"recommendation"`
	Cart           CartConfig           `json:"cart"`
	API            APIConfig            `json:"api"`
}

// Validate 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) Validate() error {
	if err := checkStruct(validate, c, "애플리케이션"); err != nil {
		return err
	}
	if err := c.Cart.Storage.validate(); err != nil {
		return err
	}
	return c.API.CORS.validate()
}

// VerifyRecommendations 강제하지는 않지만 운영 시 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if err := validation.ValidateDir(c.Catalog.DataDir); err != nil {
		warnings = append(warnings, fmt.Sprintf("카탈로그 데이터 디렉토리(data_dir)를 확인할 수 없습니다. 빈 카탈로그로 시작합니다: %v", err))
	}
	warnings = append(warnings, c.Cart.Storage.VerifyRecommendations()...)
	warnings = append(warnings, c.API.VerifyRecommendations()...)

	return warnings
}

// CatalogConfig 카탈로그 데이터셋 적재 설정
type CatalogConfig struct {
	DataDir string `json:"data_dir" validate:"required"`

	// ReloadSchedule 데이터셋을 다시 읽는 주기(초 단위를 포함한 6필드 Cron)입니다. 비어 있으면 시작 시 한 번만 읽습니다.
	ReloadSchedule string `json:"reload_schedule" validate:"omitempty,cron_spec"`

	// Locale 이름 정렬에 사용하는 언어 태그입니다.
	Locale string `json:"locale" validate:"required,bcp47_language_tag"`

	// SkipInvalidRecords true면 유효하지 않은 레코드를 건너뛰고 보고하며, false면 적재 전체를 실패시킵니다.
	SkipInvalidRecords bool `json:"skip_invalid_records"`
}

// RecommendationConfig 추천 상품 설정
type RecommendationConfig struct {
	MaxCount int `json:"max_count" validate:"min=1,max=50"`
}

// CartConfig 장바구니 설정
type CartConfig struct {
	StorageKey string        `json:"storage_key" validate:"required"`
	Storage    StorageConfig `json:"storage"`
}

// StorageConfig 장바구니 저장소 설정
type StorageConfig struct {
	Driver string      `json:"driver" validate:"storage_driver"`
	Dir    string      `json:"dir" validate:"required_if=Driver file|required_if=Driver badger"`
	Redis  RedisConfig `json:"redis"`
}

func (c *StorageConfig) validate() error {
	if c.Driver == "redis" && c.Redis.URL == "" {
		return apperrors.New(apperrors.InvalidInput, "Redis 저장소를 사용하려면 접속 URL(cart.storage.redis.url)이 필요합니다")
	}
	return nil
}

// VerifyRecommendations 저장소 관련 권장 사항 위반 경고를 반환합니다.
func (c *StorageConfig) VerifyRecommendations() []string {
	if c.Driver == "memory" {
		return []string{"장바구니 저장소로 memory 드라이버를 사용합니다. 서버를 재시작하면 모든 장바구니가 사라집니다"}
	}
	return nil
}

// RedisConfig Redis 저장소 접속 설정
type RedisConfig struct {
	URL          string        `json:"url"`
	ReadTimeout  time.Duration `json:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `json:"write_timeout" validate:"gte=0"`
	DialTimeout  time.Duration `json:"dial_timeout" validate:"gte=0"`
}

// APIConfig REST API 서버 설정
type APIConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	RequestTimeout time.Duration   `json:"request_timeout" validate:"gt=0"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

// VerifyRecommendations API 서버 관련 권장 사항 위반 경고를 반환합니다.
func (c *APIConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}
	if len(c.CORS.AllowOrigins) == 1 && c.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되었습니다. 운영 환경에서는 스토어프론트 도메인만 허용하세요")
	}

	return warnings
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// RateLimitConfig IP별 요청 속도 제한 설정
type RateLimitConfig struct {
	PerSecond float64 `json:"per_second" validate:"gt=0"`
	Burst     int     `json:"burst" validate:"min=1"`
}
