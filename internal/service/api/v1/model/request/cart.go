// Package request v1 API 요청 모델을 정의합니다.
package request

// AddItemRequest 장바구니 상품 추가 요청
type AddItemRequest struct {
	// ProductID 카탈로그 상품 ID. 상품 정보(제목, 가격, 이미지)는 카탈로그에서 가져옵니다.
	ProductID string `json:"product_id" korean:"상품 ID" validate:"required,max=128" example:"b-1"`
}

// UpdateQuantityRequest 장바구니 상품 수량 변경 요청
// 1 미만의 수량은 무시되며 장바구니는 변경되지 않습니다.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
}
