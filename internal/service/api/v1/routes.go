// Package v1 /api/v1 경로의 상품 조회와 장바구니 엔드포인트를 등록합니다.
//
//   - GET    /api/v1/products
//   - GET    /api/v1/products/counts
//   - GET    /api/v1/products/featured
//   - GET    /api/v1/products/bestsellers
//   - GET    /api/v1/products/types/:type
//   - GET    /api/v1/products/levels/:level
//   - GET    /api/v1/products/:id
//   - GET    /api/v1/products/:id/recommendations
//   - POST   /api/v1/carts
//   - GET    /api/v1/carts/:cartID
//   - DELETE /api/v1/carts/:cartID
//   - POST   /api/v1/carts/:cartID/items
//   - PUT    /api/v1/carts/:cartID/items/:itemID
//   - DELETE /api/v1/carts/:cartID/items/:itemID
package v1

import (
	"github.com/darkkaiser/storefront-server/internal/service/api/middleware"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
// 본문을 받는 엔드포인트에는 JSON Content-Type 검증을 적용합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	products := v1Group.Group("/products")
	products.GET("", h.ListProductsHandler)
	products.GET("/counts", h.GetProductCountsHandler)
	products.GET("/featured", h.GetFeaturedProductsHandler)
	products.GET("/bestsellers", h.GetBestsellersHandler)
	products.GET("/types/:type", h.ListProductsByTypeHandler)
	products.GET("/levels/:level", h.ListProductsByLevelHandler)
	products.GET("/:id", h.GetProductHandler)
	products.GET("/:id/recommendations", h.GetRecommendationsHandler)

	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	carts := v1Group.Group("/carts")
	carts.POST("", h.CreateCartHandler)
	carts.GET("/:cartID", h.GetCartHandler)
	carts.DELETE("/:cartID", h.ClearCartHandler)
	carts.POST("/:cartID/items", h.AddItemHandler, jsonOnly)
	carts.PUT("/:cartID/items/:itemID", h.UpdateQuantityHandler, jsonOnly)
	carts.DELETE("/:cartID/items/:itemID", h.RemoveItemHandler)
}
