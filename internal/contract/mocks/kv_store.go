package mocks

import (
	"context"

	"github.com/darkkaiser/storefront-server/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockKVStore는 contract.KVStore 인터페이스의 Mock 구현체입니다.
type MockKVStore struct {
	mock.Mock
}

var _ contract.KVStore = (*MockKVStore)(nil)

// Get 지정된 Mock 동작에 따라 값을 반환합니다.
func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

// Set 값을 저장하는 Mock 메서드입니다.
func (m *MockKVStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Remove 값을 삭제하는 Mock 메서드입니다.
func (m *MockKVStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
