// Package observer 프로세스 내부 구독/발행(pub/sub)을 위한 타입 안전한 토픽을 제공합니다.
//
// 발행은 동기적으로 수행되며, 구독자는 구독한 순서대로 호출됩니다.
// 발행 이후에 구독한 구독자는 이전 이벤트를 받지 못하므로, 초기화 시점에 직접 상태를 조회해야 합니다.
package observer

import (
	"sync"
)

// Topic 타입 T의 이벤트를 구독자들에게 전달합니다.
// 제로 값은 바로 사용할 수 있습니다.
type Topic[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription[T]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe fn을 구독자로 등록하고, 구독을 해제하는 함수를 반환합니다.
// 해제 함수는 여러 번 호출해도 안전합니다.
func (t *Topic[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, fn: fn})
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { t.remove(id) })
	}
}

// Publish 현재 등록된 모든 구독자에게 이벤트를 전달합니다.
// 구독자는 락을 보유하지 않은 상태에서 호출되므로, 콜백 안에서 Subscribe/해제를 호출해도 교착되지 않습니다.
func (t *Topic[T]) Publish(event T) {
	t.mu.RLock()
	subs := make([]subscription[T], len(t.subs))
	copy(subs, t.subs)
	t.mu.RUnlock()

	for _, s := range subs {
		s.fn(event)
	}
}

// Len 현재 등록된 구독자 수를 반환합니다.
func (t *Topic[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.subs)
}

func (t *Topic[T]) remove(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, s := range t.subs {
		if s.id == id {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			return
		}
	}
}
