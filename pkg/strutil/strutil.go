// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"
)

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  Gold   Experience  " -> "Gold Experience"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeMultiLineSpaces 각 줄을 NormalizeSpaces로 정리하고 연속된 빈 줄을 하나로 축약합니다.
// 앞뒤의 빈 줄은 제거됩니다.
func NormalizeMultiLineSpaces(s string) string {
	var (
		lines        []string
		pendingBlank bool
	)

	for line := range strings.SplitSeq(s, "\n") {
		line = NormalizeSpaces(line)
		if line == "" {
			pendingBlank = len(lines) > 0
			continue
		}
		if pendingBlank {
			lines = append(lines, "")
			pendingBlank = false
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// SplitAndTrim 구분자로 문자열을 나눈 뒤 각 항목의 공백을 제거하고 빈 항목은 버립니다.
// 예: "book, ,exam" -> ["book", "exam"]
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for part := range strings.SplitSeq(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}

// ContainsFold s가 substr을 대소문자 구분 없이 포함하는지 검사합니다.
// substr이 비어 있으면 항상 true입니다.
//
// 매 호출마다 strings.ToLower 사본을 만들지 않도록 룬 경계마다 strings.EqualFold로 비교합니다.
// 대소문자 변환 시 바이트 길이가 달라지는 문자(예: 터키어 İ)에서는 정확하지 않을 수 있습니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	for i := range s {
		if i+len(substr) > len(s) {
			return false
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}

	return false
}
