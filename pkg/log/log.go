// Package log logrus 기반의 애플리케이션 로깅 시스템을 제공합니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent/WithComponentAndFields를 통해 기록합니다.
//
//	applog.WithComponentAndFields("cart.store", applog.Fields{
//	    "key": key,
//	}).Warn("장바구니 복구: 손상된 데이터를 빈 장바구니로 초기화합니다")
package log

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetDebugMode Debug 모드 여부에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: TraceLevel
//   - 운영 모드: InfoLevel
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// WithFields 지정된 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// MaskSensitiveData 민감한 문자열(URL 비밀번호, 토큰 등)을 로그에 남길 수 있도록 마스킹합니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
