package response

import (
	"github.com/darkkaiser/storefront-server/internal/cart"
)

// CreateCartResponse 장바구니 생성 응답
type CreateCartResponse struct {
	CartID string `json:"cart_id" example:"3f2a8c1e-5b7d-4e0a-9c61-2d8f4b1a7e90"`
}

// CartResponse 장바구니 조회/변경 응답
type CartResponse struct {
	CartID    string          `json:"cart_id" example:"3f2a8c1e-5b7d-4e0a-9c61-2d8f4b1a7e90"`
	Items     []cart.CartItem `json:"items"`
	ItemCount int             `json:"item_count" example:"3"`
	Total     float64         `json:"total" example:"67"`
}

// NewCartResponse 장바구니 항목으로 응답을 생성합니다. items가 nil이면 빈 배열로 직렬화합니다.
func NewCartResponse(cartID string, items []cart.CartItem) CartResponse {
	if items == nil {
		items = []cart.CartItem{}
	}

	return CartResponse{
		CartID:    cartID,
		Items:     items,
		ItemCount: cart.ItemCount(items),
		Total:     cart.Total(items),
	}
}
