// Package validation 설정 값 검증에 쓰이는 네트워크/파일 시스템 관련 검증 함수를 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// ValidateCORSOrigin Origin이 "Scheme://Host[:Port]" 형식인지 검증합니다. 와일드카드("*")는 허용합니다.
//
// http/https 스키마만 허용하며 경로, 후행 슬래시, 쿼리, 프래그먼트, 사용자 정보를 포함할 수 없습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin 포맷 오류: '/'로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("CORS Origin 스키마 오류: http 또는 https만 허용됩니다 (input=%q)", origin)
	case u.Path != "" || u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("CORS Origin 포맷 오류: 경로, 쿼리, 프래그먼트를 포함할 수 없습니다 (input=%q)", origin)
	case u.User != nil:
		return fmt.Errorf("CORS Origin 포맷 오류: 사용자 자격 증명을 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: 숫자가 아닙니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w", err)
		}
	}

	if err := ValidateHostname(u.Hostname()); err != nil {
		return fmt.Errorf("CORS Origin 호스트 오류: %w", err)
	}

	return nil
}

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("호스트가 비어 있습니다")
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("레이블 길이는 1-63자여야 합니다 (host=%q)", host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		if strings.ContainsFunc(label, func(r rune) bool {
			return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-')
		}) {
			return fmt.Errorf("호스트명은 영문, 숫자, 하이픈으로만 구성되어야 합니다 (host=%q)", host)
		}
	}

	// 숫자로만 된 TLD는 IP 주소의 오타일 가능성이 높습니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateDir 경로가 존재하는 디렉토리인지 검증합니다.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("디렉토리에 접근할 수 없습니다 (path=%q): %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("디렉토리가 아닙니다 (path=%q)", path)
	}
	return nil
}
