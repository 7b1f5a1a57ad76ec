// Package cart 영속 저장소에 보관되는 장바구니와 변경 알림 계약을 제공합니다.
//
// 장바구니는 하나의 저장소 키에 CartItem 배열(JSON)로 저장됩니다.
// 모든 변경은 전체 목록 읽기 → 수정 → 쓰기로 수행되며, 변경 후 알림 발행은 호출자의 책임입니다.
//
//	if err := store.AddItem(ctx, cart.RefFromProduct(p)); err != nil {
//	    return err
//	}
//	store.Publish()
package cart

import (
	"github.com/darkkaiser/storefront-server/internal/catalog"
)

// CartItem 장바구니의 한 항목입니다. 같은 ID의 항목은 장바구니에 최대 하나만 존재합니다.
type CartItem struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Price    float64             `json:"price"`
	Image    string              `json:"image"`
	Type     catalog.ProductType `json:"type"`
	Quantity int                 `json:"quantity"`
}

// Subtotal 항목 가격 * 수량입니다.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ProductRef 장바구니에 담을 상품의 스냅샷입니다. 처음 담을 때의 값이 유지됩니다.
type ProductRef struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Price float64             `json:"price"`
	Image string              `json:"image"`
	Type  catalog.ProductType `json:"type"`
}

// RefFromProduct 카탈로그 상품으로 ProductRef를 만듭니다. 할인은 별도의 가격 정책에서 다루므로 정가를 사용합니다.
func RefFromProduct(p catalog.Product) ProductRef {
	return ProductRef{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.CoverImage,
		Type:  p.ProductType,
	}
}

// Event 장바구니 변경 알림입니다. 구독자는 Key의 장바구니를 다시 조회해야 합니다.
type Event struct {
	Key string `json:"key"`
}

// ItemCount 모든 항목 수량의 합입니다.
func ItemCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Total 모든 항목의 가격 * 수량 합계입니다.
func Total(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
