package cart

import (
	"context"
	"errors"
	"slices"

	"github.com/darkkaiser/storefront-server/internal/contract"
	"github.com/darkkaiser/storefront-server/internal/pkg/observer"
	"github.com/darkkaiser/storefront-server/pkg/concurrency"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "cart.store"

// DefaultKey 장바구니를 저장하는 기본 저장소 키입니다.
const DefaultKey = "shoppingCart"

// Store 하나의 저장소 키에 보관되는 장바구니입니다.
//
// 같은 프로세스 안에서는 키별 락으로 읽기-수정-쓰기 주기를 직렬화합니다.
// 서로 다른 프로세스가 같은 키를 동시에 수정하면 마지막 쓰기가 남습니다.
type Store struct {
	kv    contract.KVStore
	key   string
	locks *concurrency.KeyedMutex[string]

	changed observer.Topic[Event]
	relay   *observer.Topic[Event]
}

// Option Store 동작을 조정하는 함수형 옵션입니다.
type Option func(*Store)

// WithKey 장바구니 저장소 키를 지정합니다. 빈 값이면 DefaultKey를 사용합니다.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLocks 여러 Store가 공유할 키별 락을 지정합니다.
func WithLocks(locks *concurrency.KeyedMutex[string]) Option {
	return func(s *Store) {
		if locks != nil {
			s.locks = locks
		}
	}
}

func withRelay(relay *observer.Topic[Event]) Option {
	return func(s *Store) {
		s.relay = relay
	}
}

// NewStore 주어진 저장소를 사용하는 장바구니를 생성합니다.
func NewStore(kv contract.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   DefaultKey,
		locks: concurrency.NewKeyedMutex[string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key 장바구니 저장소 키를 반환합니다.
func (s *Store) Key() string {
	return s.key
}

// GetCart 저장된 장바구니를 반환합니다. 아직 저장된 적이 없으면 빈 목록을 반환합니다.
func (s *Store) GetCart(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	err := s.locks.WithLock(s.key, func() error {
		var loadErr error
		items, loadErr = s.load(ctx)
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem 상품을 장바구니에 담습니다.
// 이미 담긴 상품이면 수량만 1 증가하며 가격/제목/이미지는 처음 담은 값이 유지됩니다.
func (s *Store) AddItem(ctx context.Context, ref ProductRef) error {
	if ref.ID == "" || ref.Price < 0 {
		return ErrInvalidProductRef
	}

	return s.mutate(ctx, func(items []CartItem) ([]CartItem, bool) {
		if i := indexOf(items, ref.ID); i >= 0 {
			items[i].Quantity++
			return items, true
		}

		return append(items, CartItem{
			ID:       ref.ID,
			Title:    ref.Title,
			Price:    ref.Price,
			Image:    ref.Image,
			Type:     ref.Type,
			Quantity: 1,
		}), true
	})
}

// UpdateQuantity 항목의 수량을 변경합니다. quantity가 1 미만이거나 항목이 없으면 아무 작업도 하지 않습니다.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	return s.mutate(ctx, func(items []CartItem) ([]CartItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		items[i].Quantity = quantity
		return items, true
	})
}

// RemoveItem 항목을 삭제합니다. 없는 ID를 삭제해도 에러가 아닙니다.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	return s.mutate(ctx, func(items []CartItem) ([]CartItem, bool) {
		return slices.DeleteFunc(items, func(item CartItem) bool {
			return item.ID == id
		}), true
	})
}

// ClearCart 장바구니를 비웁니다.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.locks.WithLock(s.key, func() error {
		return s.save(ctx, nil)
	})
}

// GetItemCount 모든 항목 수량의 합을 반환합니다.
func (s *Store) GetItemCount(ctx context.Context) (int, error) {
	items, err := s.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return ItemCount(items), nil
}

// GetCartTotal 가격 * 수량의 합계를 반환합니다. 할인과 세금은 반영하지 않습니다.
func (s *Store) GetCartTotal(ctx context.Context) (float64, error) {
	items, err := s.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return Total(items), nil
}

// Subscribe 장바구니 변경 알림을 구독합니다. 반환된 함수로 구독을 해제합니다.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	return s.changed.Subscribe(fn)
}

// Publish 구독자에게 장바구니가 변경되었음을 알립니다.
// 변경 연산은 알림을 보내지 않으므로, 변경한 쪽에서 성공 후 반드시 호출해야 합니다.
func (s *Store) Publish() {
	event := Event{Key: s.key}

	s.changed.Publish(event)
	if s.relay != nil {
		s.relay.Publish(event)
	}
}

// mutate 키 락을 잡은 상태에서 읽기 → fn → 쓰기를 수행합니다. fn이 false를 반환하면 쓰지 않습니다.
func (s *Store) mutate(ctx context.Context, fn func([]CartItem) ([]CartItem, bool)) error {
	return s.locks.WithLock(s.key, func() error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}

		items, changed := fn(items)
		if !changed {
			return nil
		}

		return s.save(ctx, items)
	})
}

// load 저장된 장바구니를 읽습니다. 손상된 데이터는 경고를 남기고 빈 장바구니로 초기화합니다.
func (s *Store) load(ctx context.Context) ([]CartItem, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, contract.ErrKeyNotFound) {
			return []CartItem{}, nil
		}
		return nil, NewErrLoadFailed(err, s.key)
	}

	items, err := decodeItems(data)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":   s.key,
			"size":  len(data),
			"error": err,
		}).Warn("장바구니 복구: 손상된 데이터를 빈 장바구니로 초기화합니다")

		if saveErr := s.save(ctx, nil); saveErr != nil {
			return nil, saveErr
		}
		return []CartItem{}, nil
	}

	return items, nil
}

func (s *Store) save(ctx context.Context, items []CartItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return NewErrSaveFailed(err, s.key)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return NewErrSaveFailed(err, s.key)
	}
	return nil
}

func indexOf(items []CartItem, id string) int {
	return slices.IndexFunc(items, func(item CartItem) bool {
		return item.ID == id
	})
}
