package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/storefront-server/internal/contract"
	"github.com/darkkaiser/storefront-server/pkg/concurrency"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "storage"

// defaultDataDirectory 파일 저장소의 기본 디렉토리입니다.
const defaultDataDirectory = "data/carts"

// tempFilePattern 원자적 쓰기 중 생성되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "kv-*.tmp"

// staleTempFileAge 이 시간보다 오래된 임시 파일은 이전 실행의 잔존 파일로 간주합니다.
const staleTempFileAge = time.Hour

// FileStore 키마다 하나의 JSON 파일을 두는 파일 시스템 저장소입니다.
//
// [파일 구조]
//   - kv-{정제된키}-{해시}.json: 키에 저장된 값
//   - kv-*.tmp: 저장 중 생성되는 임시 파일
type FileStore struct {
	baseDir string

	// locks 같은 파일에 대한 동시 읽기/쓰기를 직렬화합니다.
	locks *concurrency.KeyedMutex[string]
}

var _ Backend = (*FileStore)(nil)

// NewFileStore 파일 시스템 저장소를 생성합니다.
// dir이 비어 있으면 기본 디렉토리("data/carts")를 사용하며, 이전 실행에서 남은 임시 파일을 정리합니다.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrPathResolutionFailed(err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex[string](),
	}
	s.cleanupStaleTempFiles()

	return s, nil
}

// Dir 저장소 디렉토리의 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

func (s *FileStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")
		return
	}

	threshold := time.Now().Add(-staleTempFileAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"file": fullPath,
		}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
	}
}

// Get 키에 해당하는 파일을 읽습니다. 쓰기 중인 파일을 읽지 않도록 읽기에도 락을 적용합니다.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	filename, err := s.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.locks.WithLock(lockKey(filename), func() error {
		var readErr error
		if data, readErr = os.ReadFile(filename); readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				return contract.ErrKeyNotFound
			}
			return NewErrReadFailed(readErr, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Set 값을 원자적으로 저장합니다(임시 파일 쓰기 → fsync → rename).
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	filename, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(lockKey(filename), func() error {
		if err := s.writeAtomic(filename, value); err != nil {
			return NewErrWriteFailed(err, key)
		}
		return nil
	})
}

// Remove 키에 해당하는 파일을 삭제합니다. 파일이 없으면 아무 작업도 하지 않습니다.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	filename, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(lockKey(filename), func() error {
		if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return NewErrRemoveFailed(err, key)
		}
		return nil
	})
}

// Close 아무 작업도 하지 않습니다.
func (s *FileStore) Close() error {
	return nil
}

// resolve 키를 저장소 디렉토리 하위의 파일 경로로 변환하고, 디렉토리 이탈 여부를 검증합니다.
func (s *FileStore) resolve(ctx context.Context, key string) (string, error) {
	if err := checkRequest(ctx, key); err != nil {
		return "", err
	}

	cleanPath := filepath.Clean(filepath.Join(s.baseDir, generateFilename(key)))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", NewErrPathResolutionFailed(err)
	}
	if strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":      key,
			"base_dir": s.baseDir,
			"path":     cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 같은 디렉토리의 임시 파일에 쓰고 동기화한 뒤 최종 파일명으로 변경합니다.
// Windows에서는 열린 파일을 지울 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
func (s *FileStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := renameWithRetry(tmpPath, filename); err != nil {
		return err
	}

	// 디렉토리 엔트리 동기화 실패는 치명적이지 않습니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 바이러스 백신이나 인덱서가 파일을 일시적으로 잠근 경우를 위해 이름 변경을 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		if lastErr = os.Rename(oldPath, newPath); lastErr == nil {
			return nil
		}
		time.Sleep(retryDelay)
	}

	return lastErr
}

// lockKey 대소문자를 구분하지 않는 파일 시스템을 위해 락 키를 소문자로 정규화합니다.
func lockKey(filename string) string {
	return strings.ToLower(filename)
}
