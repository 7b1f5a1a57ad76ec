package handler

import (
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	apihandler "github.com/darkkaiser/storefront-server/internal/service/api/handler"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// CreateCartHandler godoc
// @Summary 장바구니 생성
// @Description 새 장바구니 ID를 발급합니다. 장바구니는 첫 상품을 추가할 때 저장소에 기록됩니다.
// @Tags Carts
// @Produce json
// @Success 201 {object} response.CreateCartResponse
// @Router /api/v1/carts [post]
func (h *Handler) CreateCartHandler(c echo.Context) error {
	cartID := h.carts.NewCartID()

	h.log(c).WithField("cart_id", cartID).Debug("장바구니 ID 발급")

	return c.JSON(http.StatusCreated, response.CreateCartResponse{CartID: cartID})
}

// GetCartHandler godoc
// @Summary 장바구니 조회
// @Tags Carts
// @Produce json
// @Param cartID path string true "장바구니 ID"
// @Success 200 {object} response.CartResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 장바구니 ID"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/carts/{cartID} [get]
func (h *Handler) GetCartHandler(c echo.Context) error {
	store, err := h.cartStore(c)
	if err != nil {
		return err
	}

	return h.respondCart(c, store)
}

// AddItemHandler godoc
// @Summary 장바구니에 상품 추가
// @Description 카탈로그의 상품 정보(제목, 가격, 이미지)를 스냅샷으로 저장합니다.
// @Description 이미 담긴 상품이면 수량만 1 증가하며, 기존 스냅샷은 유지됩니다.
// @Tags Carts
// @Accept json
// @Produce json
// @Param cartID path string true "장바구니 ID"
// @Param item body request.AddItemRequest true "추가할 상품"
// @Success 200 {object} response.CartResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/carts/{cartID}/items [post]
func (h *Handler) AddItemHandler(c echo.Context) error {
	store, err := h.cartStore(c)
	if err != nil {
		return err
	}

	req := new(request.AddItemRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	if err := apihandler.ValidateRequest(req); err != nil {
		return httputil.NewBadRequestError(apihandler.FormatValidationError(err))
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}
	p, err := cat.Product(req.ProductID)
	if err != nil {
		return err
	}

	if err := store.AddItem(c.Request().Context(), cart.RefFromProduct(p)); err != nil {
		return err
	}
	store.Publish()

	h.log(c).WithFields(applog.Fields{
		"cart_key":   store.Key(),
		"product_id": p.ID,
	}).Info("장바구니 상품 추가 완료")

	return h.respondCart(c, store)
}

// UpdateQuantityHandler godoc
// @Summary 장바구니 상품 수량 변경
// @Description 1 미만의 수량이나 장바구니에 없는 상품은 무시하고 현재 장바구니를 반환합니다.
// @Tags Carts
// @Accept json
// @Produce json
// @Param cartID path string true "장바구니 ID"
// @Param itemID path string true "상품 ID"
// @Param quantity body request.UpdateQuantityRequest true "변경할 수량"
// @Success 200 {object} response.CartResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/carts/{cartID}/items/{itemID} [put]
func (h *Handler) UpdateQuantityHandler(c echo.Context) error {
	store, err := h.cartStore(c)
	if err != nil {
		return err
	}

	req := new(request.UpdateQuantityRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	if err := store.UpdateQuantity(c.Request().Context(), c.Param(constants.ParamItemID), req.Quantity); err != nil {
		return err
	}
	store.Publish()

	return h.respondCart(c, store)
}

// RemoveItemHandler godoc
// @Summary 장바구니 상품 삭제
// @Tags Carts
// @Produce json
// @Param cartID path string true "장바구니 ID"
// @Param itemID path string true "상품 ID"
// @Success 200 {object} response.CartResponse
// @Router /api/v1/carts/{cartID}/items/{itemID} [delete]
func (h *Handler) RemoveItemHandler(c echo.Context) error {
	store, err := h.cartStore(c)
	if err != nil {
		return err
	}

	if err := store.RemoveItem(c.Request().Context(), c.Param(constants.ParamItemID)); err != nil {
		return err
	}
	store.Publish()

	return h.respondCart(c, store)
}

// ClearCartHandler godoc
// @Summary 장바구니 비우기
// @Tags Carts
// @Produce json
// @Param cartID path string true "장바구니 ID"
// @Success 200 {object} response.CartResponse
// @Router /api/v1/carts/{cartID} [delete]
func (h *Handler) ClearCartHandler(c echo.Context) error {
	store, err := h.cartStore(c)
	if err != nil {
		return err
	}

	if err := store.ClearCart(c.Request().Context()); err != nil {
		return err
	}
	store.Publish()

	h.log(c).WithField("cart_key", store.Key()).Info("장바구니 비우기 완료")

	return h.respondCart(c, store)
}

func (h *Handler) cartStore(c echo.Context) (*cart.Store, error) {
	return h.carts.Store(c.Param(constants.ParamCartID))
}

func (h *Handler) respondCart(c echo.Context, store *cart.Store) error {
	items, err := store.GetCart(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewCartResponse(c.Param(constants.ParamCartID), items))
}
