package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// maxReadableNameBytes 파일명 중 사람이 읽을 수 있는 부분의 최대 바이트 수입니다.
const maxReadableNameBytes = 100

// filenameReplacer 경로 구분자와 Windows 예약 문자를 하이픈으로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 키를 사람이 읽을 수 있으면서 충돌하지 않는 파일명으로 변환합니다.
//
// 정제된 이름만으로는 "shoppingCart:a"와 "shopping-cart-a"처럼 서로 다른 키가 같아질 수 있으므로
// 원본 키의 64비트 FNV-1a 해시를 덧붙입니다.
//
//	"shoppingCart:abc" -> "kv-shopping-cart-abc-{16자리해시}.json"
func generateFilename(key string) string {
	name := truncateByBytes(sanitizeName(key), maxReadableNameBytes)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(key))

	return fmt.Sprintf("kv-%s-%016x.json", name, hasher.Sum64())
}

// sanitizeName 문자열을 kebab-case로 바꾸고 제어 문자와 파일 시스템 위험 문자를 제거합니다.
func sanitizeName(s string) string {
	kebab := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, strcase.ToKebab(s))

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes 문자열을 UTF-8 문자 경계를 지키면서 limit 바이트 이하로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	total := 0
	for total < len(s) {
		_, size := utf8.DecodeRuneInString(s[total:])
		if total+size > limit {
			break
		}
		total += size
	}

	return s[:total]
}
