package storage

import (
	"context"
	"errors"
	"time"

	"github.com/darkkaiser/storefront-server/internal/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/redis/go-redis/v9"
)

// RedisConfig Redis 저장소 접속 설정입니다. 0인 타임아웃은 기본값을 사용합니다.
type RedisConfig struct {
	URL          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

const (
	defaultRedisReadTimeout  = 3 * time.Second
	defaultRedisWriteTimeout = 3 * time.Second
	defaultRedisDialTimeout  = 5 * time.Second
)

// RedisStore Redis에 값을 저장하는 원격 저장소입니다. 여러 서버 인스턴스가 장바구니를 공유할 때 사용합니다.
type RedisStore struct {
	client *redis.Client
}

var _ Backend = (*RedisStore)(nil)

// NewRedisStore Redis에 연결하고 Ping으로 접속을 확인한 뒤 저장소를 생성합니다.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, NewErrRedisConfigInvalid(err)
	}

	opts.ReadTimeout = orDuration(cfg.ReadTimeout, defaultRedisReadTimeout)
	opts.WriteTimeout = orDuration(cfg.WriteTimeout, defaultRedisWriteTimeout)
	opts.DialTimeout = orDuration(cfg.DialTimeout, defaultRedisDialTimeout)

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, NewErrRedisUnavailable(err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"addr": opts.Addr,
		"db":   opts.DB,
	}).Info("Redis 저장소 연결 완료")

	return &RedisStore{client: client}, nil
}

// Get 키에 저장된 값을 반환합니다.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkRequest(ctx, key); err != nil {
		return nil, err
	}

	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, NewErrReadFailed(err, key)
	}

	return value, nil
}

// Set 키에 만료 시간 없이 값을 저장합니다.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return NewErrWriteFailed(err, key)
	}
	return nil
}

// Remove 키를 삭제합니다.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := checkRequest(ctx, key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return NewErrRemoveFailed(err, key)
	}
	return nil
}

// Close 연결 풀을 닫습니다.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func orDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}
