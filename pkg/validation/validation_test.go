package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{"와일드카드", "*", false},
		{"HTTPS 도메인", "https://shop.example.com", false},
		{"로컬호스트 포트", "http://localhost:4321", false},
		{"IPv4", "http://192.168.0.10:8080", false},
		{"IPv6", "http://[::1]:3000", false},

		{"빈 문자열", "", true},
		{"후행 슬래시", "https://example.com/", true},
		{"경로 포함", "https://example.com/shop", true},
		{"쿼리 포함", "https://example.com?a=1", true},
		{"지원하지 않는 스키마", "ftp://example.com", true},
		{"스키마 누락", "example.com", true},
		{"포트 범위 초과", "http://localhost:70000", true},
		{"사용자 정보", "https://user@example.com", true},
		{"숫자 TLD", "http://example.123", true},
		{"밑줄 포함 호스트", "http://my_host.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0644))

	assert.NoError(t, ValidateDir(dir))
	assert.Error(t, ValidateDir(file))
	assert.Error(t, ValidateDir(filepath.Join(dir, "missing")))
}
