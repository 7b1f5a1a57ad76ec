package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "storefront-server"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 읽는 설정 파일입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 계층은 이중 언더스코어로 구분합니다. 예: STOREFRONT_API__LISTEN_PORT -> api.listen_port
	EnvPrefix = "STOREFRONT_"
)

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (가장 높은 우선순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링: 구조체에 없는 키가 있으면 오타로 간주하여 실패합니다.
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			TagName:          "json",
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 정합성 검증
	if err := appConfig.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// Default 모든 항목이 기본값인 설정을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			DataDir:            "data/catalog",
			Locale:             "es",
			SkipInvalidRecords: true,
		},
		Recommendation: RecommendationConfig{
			MaxCount: 4,
		},
		Cart: CartConfig{
			StorageKey: "shoppingCart",
			Storage: StorageConfig{
				Driver: "file",
				Dir:    "data/carts",
				Redis: RedisConfig{
					ReadTimeout:  3 * time.Second,
					WriteTimeout: 3 * time.Second,
					DialTimeout:  5 * time.Second,
				},
			},
		},
		API: APIConfig{
			ListenPort:     2080,
			RequestTimeout: 30 * time.Second,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				PerSecond: 20,
				Burst:     40,
			},
		},
	}
}

var validate = newValidator()

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반을 사용자 친화적인 InvalidInput 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]
	switch firstErr.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://shop.example.com)", firstErr.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("카탈로그 갱신 주기(reload_schedule)가 올바른 Cron 표현식이 아닙니다: '%v' (형식: 초 분 시 일 월 요일)", firstErr.Value()))
	case "storage_driver":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 장바구니 저장소 드라이버입니다: '%v' (memory, file, badger, redis 중 하나)", firstErr.Value()))
	case "bcp47_language_tag":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("카탈로그 로케일(locale)이 올바른 언어 태그가 아닙니다: '%v' (예: es, en-US)", firstErr.Value()))
	}

	switch firstErr.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "API 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "MaxCount":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("추천 상품 최대 개수(max_count)는 1에서 50 사이의 값이어야 합니다: '%v'", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Namespace(), firstErr.Tag()))
}
