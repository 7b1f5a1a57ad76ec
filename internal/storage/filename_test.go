package storage

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		wantPrefix string
	}{
		{"기본 장바구니 키", "shoppingCart", "kv-shopping-cart-"},
		{"장바구니별 키", "shoppingCart:abc", "kv-shopping-cart-abc-"},
		{"경로 구분자 제거", "../a/b", "kv-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := generateFilename(tt.key)

			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), got)
			assert.True(t, strings.HasSuffix(got, ".json"))
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, "..")
		})
	}
}

func TestGenerateFilename_Unique(t *testing.T) {
	t.Parallel()

	// 정제 결과가 같아지는 키도 해시로 구분되어야 합니다.
	assert.NotEqual(t, generateFilename("shoppingCart:a"), generateFilename("shopping-cart-a"))
	assert.NotEqual(t, generateFilename("Cart"), generateFilename("cart"))
	assert.Equal(t, generateFilename("cart"), generateFilename("cart"))
}

func TestTruncateByBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"제한 이하", "abc", 5, "abc"},
		{"ASCII 자르기", "abcdef", 4, "abcd"},
		{"멀티바이트 경계 보존", "가나다", 4, "가"},
		{"0바이트", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncateByBytes(tt.input, tt.limit)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
