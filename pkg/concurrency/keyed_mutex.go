// Package concurrency 동시성 제어를 위한 공용 유틸리티를 제공합니다.
package concurrency

import (
	"sync"
)

// KeyedMutex 키별로 독립적인 Mutex를 제공합니다.
//
// 서로 다른 키에 대한 작업은 병렬로 진행되고, 같은 키에 대한 작업만 직렬화됩니다.
// 참조 카운트가 0이 된 키의 Mutex는 즉시 맵에서 제거되므로 키 공간이 커져도 메모리가 누적되지 않습니다.
type KeyedMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex 새로운 KeyedMutex 인스턴스를 생성합니다.
func NewKeyedMutex[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{
		locks: make(map[K]*keyedEntry),
	}
}

// Len 현재 락을 보유하고 있거나 대기 중인 키의 개수를 반환합니다.
func (km *KeyedMutex[K]) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}

// Lock 지정된 키에 대한 락을 획득할 때까지 대기합니다.
func (km *KeyedMutex[K]) Lock(key K) {
	km.mu.Lock()
	e := km.acquire(key)
	km.mu.Unlock()

	e.mu.Lock()
}

// TryLock 대기 없이 락 획득을 시도합니다.
// false를 반환한 경우 Unlock을 호출해서는 안 됩니다.
func (km *KeyedMutex[K]) TryLock(key K) bool {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if ok && !e.mu.TryLock() {
		return false
	}
	if !ok {
		e = km.acquire(key)
		e.mu.Lock()
		return true
	}

	e.refs++
	return true
}

// Unlock 지정된 키의 락을 해제합니다.
// 잠겨 있지 않은 키를 해제하면 panic이 발생합니다.
func (km *KeyedMutex[K]) Unlock(key K) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠겨 있지 않은 키에 대한 Unlock 호출")
	}

	e.refs--
	if e.refs <= 0 {
		delete(km.locks, key)
	}
	e.mu.Unlock()
}

// WithLock 지정된 키의 락을 보유한 상태로 fn을 실행합니다.
func (km *KeyedMutex[K]) WithLock(key K, fn func() error) error {
	km.Lock(key)
	defer km.Unlock(key)

	return fn()
}

// acquire km.mu를 보유한 상태에서 호출되어야 합니다.
func (km *KeyedMutex[K]) acquire(key K) *keyedEntry {
	e, ok := km.locks[key]
	if !ok {
		e = &keyedEntry{}
		km.locks[key] = e
	}
	e.refs++

	return e
}
