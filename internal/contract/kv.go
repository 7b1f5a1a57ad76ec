// Package contract 서비스 계층과 인프라 계층 사이의 인터페이스를 정의합니다.
package contract

import (
	"context"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

// ErrKeyNotFound 저장소에 요청한 키가 존재하지 않습니다.
var ErrKeyNotFound = apperrors.New(apperrors.NotFound, "저장소에 키가 존재하지 않습니다")

// KVStore 문자열 키에 바이트 값을 저장하는 영속 저장소입니다.
//
// 구현체는 여러 고루틴에서 동시에 사용할 수 있어야 합니다.
// 키가 없으면 Get은 ErrKeyNotFound를 반환하고, Remove는 nil을 반환합니다.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
