package cart

import (
	"strings"

	"github.com/darkkaiser/storefront-server/internal/contract"
	"github.com/darkkaiser/storefront-server/internal/pkg/observer"
	"github.com/darkkaiser/storefront-server/pkg/concurrency"
	"github.com/google/uuid"
)

// maxCartIDLength 장바구니 ID의 최대 길이입니다.
const maxCartIDLength = 64

// Registry 장바구니 ID별 Store를 만들어 주는 팩토리입니다.
// 각 장바구니는 "{baseKey}:{cartID}" 키에 저장되며, 모든 Store가 같은 키별 락을 공유합니다.
type Registry struct {
	kv      contract.KVStore
	baseKey string
	locks   *concurrency.KeyedMutex[string]

	changed observer.Topic[Event]
}

// NewRegistry 새로운 Registry를 생성합니다. baseKey가 비어 있으면 DefaultKey를 사용합니다.
func NewRegistry(kv contract.KVStore, baseKey string) *Registry {
	if baseKey == "" {
		baseKey = DefaultKey
	}

	return &Registry{
		kv:      kv,
		baseKey: baseKey,
		locks:   concurrency.NewKeyedMutex[string](),
	}
}

// NewCartID 새 장바구니 ID(UUID v4)를 발급합니다.
func (r *Registry) NewCartID() string {
	return uuid.NewString()
}

// Store cartID의 장바구니를 반환합니다. Store.Publish는 Registry 구독자에게도 전달됩니다.
func (r *Registry) Store(cartID string) (*Store, error) {
	if !validCartID(cartID) {
		return nil, ErrInvalidCartID
	}

	return NewStore(r.kv,
		WithKey(r.baseKey+":"+cartID),
		WithLocks(r.locks),
		withRelay(&r.changed),
	), nil
}

// Subscribe 모든 장바구니의 변경 알림을 구독합니다.
func (r *Registry) Subscribe(fn func(Event)) (unsubscribe func()) {
	return r.changed.Subscribe(fn)
}

// validCartID 영문자, 숫자, 하이픈, 밑줄로만 이루어진 64자 이하의 ID를 허용합니다.
func validCartID(id string) bool {
	if id == "" || len(id) > maxCartIDLength {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_')
	}) < 0
}
