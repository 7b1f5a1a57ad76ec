package cart

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrInvalidProductRef 장바구니에 담으려는 상품 스냅샷에 ID가 없거나 가격이 음수입니다.
	ErrInvalidProductRef = apperrors.New(apperrors.InvalidInput, "장바구니에 담을 상품 정보가 올바르지 않습니다")

	// ErrInvalidCartID 장바구니 ID 형식이 올바르지 않습니다.
	ErrInvalidCartID = apperrors.New(apperrors.InvalidInput, "장바구니 ID가 올바르지 않습니다")

	// errCorruptedState 저장된 장바구니가 CartItem 배열로 해석되지 않습니다. 외부로 노출되지 않고 빈 장바구니로 복구됩니다.
	errCorruptedState = apperrors.New(apperrors.ParsingFailed, "저장된 장바구니 데이터가 손상되었습니다")
)

// NewErrLoadFailed 저장소에서 장바구니를 읽지 못했을 때 반환하는 에러를 생성합니다.
func NewErrLoadFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.Unavailable, "장바구니 조회 실패: 저장소에서 %q 키를 읽을 수 없습니다", key)
}

// NewErrSaveFailed 저장소에 장바구니를 쓰지 못했을 때 반환하는 에러를 생성합니다.
func NewErrSaveFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.Unavailable, "장바구니 저장 실패: 저장소에 %q 키를 쓸 수 없습니다", key)
}
