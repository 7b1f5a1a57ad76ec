package catalog

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrCatalogNotLoaded 아직 카탈로그가 한 번도 적재되지 않았습니다.
	ErrCatalogNotLoaded = apperrors.New(apperrors.Unavailable, "카탈로그가 아직 적재되지 않았습니다")
)

// NewErrInitialLoadFailed 서비스 시작 시 첫 적재에 실패했을 때의 에러를 생성합니다.
func NewErrInitialLoadFailed(err error, dataDir string) error {
	return apperrors.Wrapf(err, apperrors.Unavailable, "카탈로그 초기 적재에 실패했습니다 (data_dir=%s)", dataDir)
}

// NewErrInvalidReloadSchedule 재적재 Cron 표현식을 등록하지 못했을 때의 에러를 생성합니다.
func NewErrInvalidReloadSchedule(err error, spec string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "재적재 스케줄 등록 실패: 잘못된 Cron 표현식입니다 ('%s')", spec)
}
