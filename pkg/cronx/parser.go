// Package cronx 애플리케이션 전역에서 동일한 Cron 표현식 규칙을 사용하도록 파서와 검증 함수를 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 Cron 파서를 반환합니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일]이며, @hourly, @every 10m 같은 Descriptor도 허용합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
//	"0 */10 * * * *" : 매 10분 0초마다
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한 표현식인지 검증합니다.
func Validate(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return fmt.Errorf("cron 표현식이 비어 있습니다")
	}

	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("잘못된 cron 표현식입니다(%q): %w", spec, err)
	}

	return nil
}
