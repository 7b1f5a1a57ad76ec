package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/storage"
	"github.com/darkkaiser/storefront-server/pkg/cronx"
	"github.com/darkkaiser/storefront-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 규칙(cors_origin, cron_spec, storage_driver)을 등록한 Validator를 생성합니다.
// 에러 메시지에는 Go 필드명 대신 JSON 이름을 사용합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"cors_origin":    validateCORSOrigin,
		"cron_spec":      validateCronSpec,
		"storage_driver": validateStorageDriver,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

func validateStorageDriver(fl validator.FieldLevel) bool {
	return slices.Contains(storage.Drivers, fl.Field().String())
}
