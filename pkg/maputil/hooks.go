package maputil

import (
	"reflect"
	"strings"

	"github.com/darkkaiser/storefront-server/pkg/strutil"
	"github.com/mitchellh/mapstructure"
)

// trimStringHookFunc 문자열 -> 문자열 변환 시 앞뒤 공백을 제거합니다.
func trimStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}

		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}

// stringToSliceHookFunc 쉼표로 구분된 문자열을 문자열 슬라이스로 분리합니다.
// 빈 항목은 버리며, []byte 대상은 분리하지 않습니다.
//
//	"pdf, audio" -> ["pdf", "audio"]
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		result := strutil.SplitAndTrim(reflect.ValueOf(data).String(), ",")
		if result == nil {
			result = []string{}
		}

		return result, nil
	}
}
