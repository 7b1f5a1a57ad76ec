// Package handler API 핸들러가 공유하는 요청 검증 도구를 제공합니다.
package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지의 필드명으로 korean 태그, 없으면 JSON 이름을 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
			return fld.Name
		})
	})

	return validate
}

// ValidateRequest 구조체의 validate 태그를 기반으로 요청을 검증합니다.
func ValidateRequest(req any) error {
	return getValidator().Struct(req)
}

// FormatValidationError 검증 에러를 사용자용 한국어 메시지로 변환합니다. 여러 개이면 첫 번째만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	name := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", name)
	case "min":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", name, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", name, fe.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", name, fe.Tag())
	}
}
