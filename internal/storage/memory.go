package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/darkkaiser/storefront-server/internal/contract"
)

// MemoryStore 프로세스 메모리에 값을 보관하는 저장소입니다. 재시작하면 모든 값이 사라집니다.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ Backend = (*MemoryStore)(nil)

// NewMemoryStore 빈 MemoryStore를 생성합니다.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get 키에 저장된 값의 사본을 반환합니다.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkRequest(ctx, key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, contract.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

// Set 키에 값의 사본을 저장합니다.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = slices.Clone(value)
	return nil
}

// Remove 키를 삭제합니다.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close 아무 작업도 하지 않습니다.
func (s *MemoryStore) Close() error {
	return nil
}
