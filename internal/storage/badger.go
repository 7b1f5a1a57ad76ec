package storage

import (
	"context"
	"errors"

	"github.com/darkkaiser/storefront-server/internal/contract"
	"github.com/dgraph-io/badger/v4"
)

// BadgerStore BadgerDB에 값을 저장하는 임베디드 영속 저장소입니다.
type BadgerStore struct {
	db     *badger.DB
	prefix string
	ownsDB bool
}

var _ Backend = (*BadgerStore)(nil)

// OpenBadgerStore dir에 BadgerDB를 열고 저장소를 생성합니다. BadgerDB 내부 로그는 출력하지 않습니다.
// 반환된 저장소를 닫으면 DB도 함께 닫힙니다.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, NewErrBadgerOpenFailed(err, dir)
	}

	s := NewBadgerStore(db, "")
	s.ownsDB = true

	return s, nil
}

// NewBadgerStore 이미 열린 DB로 저장소를 생성합니다. 모든 키 앞에 prefix가 붙으며, DB는 호출자가 닫아야 합니다.
func NewBadgerStore(db *badger.DB, prefix string) *BadgerStore {
	return &BadgerStore{db: db, prefix: prefix}
}

// Get 키에 저장된 값을 반환합니다.
func (s *BadgerStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkRequest(ctx, key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, s.wrap(NewErrReadFailed(err, key), err)
	}

	return value, nil
}

// Set 키에 값을 저장합니다.
func (s *BadgerStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), value)
	})
	if err != nil {
		return s.wrap(NewErrWriteFailed(err, key), err)
	}

	return nil
}

// Remove 키를 삭제합니다.
func (s *BadgerStore) Remove(ctx context.Context, key string) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key(key))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return s.wrap(NewErrRemoveFailed(err, key), err)
	}

	return nil
}

// Close OpenBadgerStore로 연 경우 DB를 닫습니다.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

func (s *BadgerStore) key(key string) []byte {
	return []byte(s.prefix + key)
}

func (s *BadgerStore) wrap(wrapped, cause error) error {
	if errors.Is(cause, badger.ErrDBClosed) {
		return ErrStoreClosed
	}
	return wrapped
}
