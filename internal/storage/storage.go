// Package storage 장바구니 상태를 보관하는 contract.KVStore 구현체들을 제공합니다.
//
// 드라이버별 특성은 다음과 같습니다.
//   - memory: 프로세스 메모리 (테스트, 단일 실행용)
//   - file: 키마다 JSON 파일 하나, 원자적 쓰기 (기본값)
//   - badger: 임베디드 BadgerDB
//   - redis: 여러 인스턴스가 공유하는 원격 Redis
package storage

import (
	"context"
	"io"

	"github.com/darkkaiser/storefront-server/internal/contract"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// 지원하는 저장소 드라이버 이름입니다.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverBadger = "badger"
	DriverRedis  = "redis"
)

// Drivers 지원하는 드라이버 목록입니다.
var Drivers = []string{DriverMemory, DriverFile, DriverBadger, DriverRedis}

// Backend 닫을 수 있는 KVStore입니다.
type Backend interface {
	contract.KVStore
	io.Closer
}

// Config 저장소 생성 설정입니다.
type Config struct {
	Driver string
	Dir    string
	Redis  RedisConfig
}

// Open 드라이버 이름에 맞는 저장소를 생성합니다.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	var (
		backend Backend
		err     error
	)

	switch cfg.Driver {
	case DriverMemory:
		backend = NewMemoryStore()
	case DriverFile, "":
		backend, err = NewFileStore(cfg.Dir)
	case DriverBadger:
		backend, err = OpenBadgerStore(cfg.Dir)
	case DriverRedis:
		backend, err = NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, NewErrUnsupportedDriver(cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"driver": cfg.Driver,
		"dir":    cfg.Dir,
	}).Info("저장소 초기화 완료")

	return backend, nil
}

func checkRequest(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
