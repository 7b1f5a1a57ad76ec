package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 키로부터 만든 파일 경로가 저장소 디렉토리를 벗어났습니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrEmptyKey 빈 문자열 키로 저장소에 접근했습니다.
	ErrEmptyKey = apperrors.New(apperrors.InvalidInput, "저장소 키가 비어 있습니다")

	// ErrStoreClosed 이미 닫힌 저장소에 접근했습니다.
	ErrStoreClosed = apperrors.New(apperrors.Unavailable, "저장소가 이미 닫혔습니다")
)

// NewErrUnsupportedDriver 지원하지 않는 저장소 드라이버가 지정되었을 때 반환하는 에러를 생성합니다.
func NewErrUnsupportedDriver(driver string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 저장소 드라이버입니다: %q (memory, file, badger, redis 중 하나)", driver)
}

// NewErrDirectoryAccessFailed 저장소 초기화 시 디렉토리 생성 또는 접근에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrPathResolutionFailed 파일 경로 해석에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

// NewErrReadFailed 저장된 값을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrReadFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 조회 실패: %q 키 읽기 중 오류가 발생했습니다", key)
}

// NewErrWriteFailed 값을 저장하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrWriteFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 저장 실패: %q 키 쓰기 중 오류가 발생했습니다", key)
}

// NewErrRemoveFailed 값을 삭제하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrRemoveFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 삭제 실패: %q 키 삭제 중 오류가 발생했습니다", key)
}

// NewErrBadgerOpenFailed BadgerDB를 열지 못했을 때 반환하는 에러를 생성합니다.
func NewErrBadgerOpenFailed(err error, dir string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 초기화 실패: BadgerDB를 열 수 없습니다 (%s)", dir)
}

// NewErrRedisConfigInvalid Redis 접속 URL을 해석하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrRedisConfigInvalid(err error) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, "저장소 초기화 실패: Redis 접속 URL이 올바르지 않습니다")
}

// NewErrRedisUnavailable Redis 서버에 연결하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrRedisUnavailable(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "저장소 초기화 실패: Redis 서버에 연결할 수 없습니다")
}
