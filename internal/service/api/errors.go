package api

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

// NewErrHTTPServerFailed HTTP 서버가 Graceful Shutdown 외의 이유로 종료되었을 때의 에러를 생성합니다.
func NewErrHTTPServerFailed(err error, port int) error {
	return apperrors.Wrapf(err, apperrors.System, "HTTP 서버 실행 실패 (port=%d)", port)
}
