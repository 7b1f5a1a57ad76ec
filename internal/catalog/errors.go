package catalog

import (
	"fmt"
	"strings"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrInvalidRecord 원본 레코드가 상품 계약을 만족하지 않을 때 모든 ValidationError가 감싸는 센티넬입니다.
	ErrInvalidRecord = apperrors.New(apperrors.InvalidInput, "상품 레코드가 유효하지 않습니다")

	// ErrProductNotFound 요청한 ID의 상품이 카탈로그에 없습니다.
	ErrProductNotFound = apperrors.New(apperrors.NotFound, "상품을 찾을 수 없습니다")

	// ErrUnknownProductType 지원하지 않는 상품 종류로 정규화를 요청했습니다.
	ErrUnknownProductType = apperrors.New(apperrors.InvalidInput, "지원하지 않는 상품 종류입니다")
)

// ValidationError 정규화 중 원본 레코드가 계약을 위반했음을 나타냅니다.
//
// 필수 필드(id, title, price) 누락, 허용되지 않는 열거형 값, 범위를 벗어난 값, 중복 ID가 여기에 해당합니다.
// errors.Is(err, ErrInvalidRecord) 또는 apperrors.Is(err, apperrors.InvalidInput)로 판별할 수 있습니다.
type ValidationError struct {
	Kind     ProductType // 레코드 종류 (book/exam/pack)
	RecordID string      // 레코드 ID (id 필드 자체가 누락된 경우 빈 값)
	Field    string      // 문제가 된 필드의 JSON 이름
	Value    string      // 거부된 값 (누락인 경우 빈 값)
	Reason   string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder

	sb.WriteString("상품 레코드 검증 실패")
	if e.Kind != "" || e.RecordID != "" {
		fmt.Fprintf(&sb, "(kind=%s, id=%s)", e.Kind, e.RecordID)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ": '%s' 필드", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " 값 %q", e.Value)
	}
	if e.Reason != "" {
		fmt.Fprintf(&sb, " - %s", e.Reason)
	}

	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

const (
	reasonMissing     = "필수 필드가 누락되었습니다"
	reasonUnsupported = "지원하지 않는 값입니다"
	reasonOutOfRange  = "허용 범위를 벗어났습니다"
	reasonMalformed   = "형식이 올바르지 않습니다"
	reasonDuplicateID = "이미 다른 레코드가 사용 중인 ID입니다"
)

// NewErrProductNotFound 지정된 ID의 상품이 없음을 나타내는 에러를 생성합니다.
func NewErrProductNotFound(id string) error {
	return apperrors.Wrapf(ErrProductNotFound, apperrors.NotFound, "상품(ID: %s)을 찾을 수 없습니다", id)
}

// NewErrDatasetReadFailed 데이터셋 파일을 읽지 못했을 때의 에러를 생성합니다.
func NewErrDatasetReadFailed(err error, path string) error {
	return apperrors.Wrapf(err, apperrors.System, "데이터셋 파일(%s)을 읽는 중 오류가 발생했습니다", path)
}

// NewErrDatasetMalformed 데이터셋이 올바른 JSON 배열/객체가 아닐 때의 에러를 생성합니다.
func NewErrDatasetMalformed(path string) error {
	return apperrors.Newf(apperrors.ParsingFailed, "데이터셋 파일(%s)이 올바른 JSON 배열 또는 객체가 아닙니다", path)
}
