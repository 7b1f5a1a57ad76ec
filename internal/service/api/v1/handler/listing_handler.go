package handler

import (
	"math/rand/v2"
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetFeaturedProductsHandler godoc
// @Summary 추천(featured) 상품 무작위 선택
// @Description featured 상품 중 무작위로 최대 limit개를 반환합니다. type을 지정하면 해당 종류로 제한합니다.
// @Tags Products
// @Produce json
// @Param type query string false "상품 종류 (book, exam, pack)"
// @Param limit query int false "최대 개수 (기본값: 4, 최대 50)"
// @Success 200 {object} response.ProductSelectionResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 type 또는 limit"
// @Router /api/v1/products/featured [get]
func (h *Handler) GetFeaturedProductsHandler(c echo.Context) error {
	limit, err := parseLimit(c, defaultSelectionLimit)
	if err != nil {
		return err
	}

	var types []catalog.ProductType
	if raw := c.QueryParam(constants.QueryType); raw != "" {
		t, err := parseProductType(raw)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	products := h.withRand(func(rng *rand.Rand) []catalog.Product {
		return catalog.Featured(cat.Products(), limit, rng, types...)
	})

	return c.JSON(http.StatusOK, response.NewProductSelectionResponse(products))
}

// GetBestsellersHandler godoc
// @Summary 베스트셀러 무작위 선택
// @Tags Products
// @Produce json
// @Param limit query int false "최대 개수 (기본값: 4, 최대 50)"
// @Success 200 {object} response.ProductSelectionResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 limit"
// @Router /api/v1/products/bestsellers [get]
func (h *Handler) GetBestsellersHandler(c echo.Context) error {
	limit, err := parseLimit(c, defaultSelectionLimit)
	if err != nil {
		return err
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	products := h.withRand(func(rng *rand.Rand) []catalog.Product {
		return catalog.Bestsellers(cat.Products(), limit, rng)
	})

	return c.JSON(http.StatusOK, response.NewProductSelectionResponse(products))
}

// ListProductsByTypeHandler godoc
// @Summary 종류별 상품 목록
// @Description 지정된 종류의 상품을 카탈로그 순서대로 반환합니다. limit이 없으면 전부 반환합니다.
// @Tags Products
// @Produce json
// @Param type path string true "상품 종류 (book, exam, pack)"
// @Param limit query int false "최대 개수 (최대 50)"
// @Success 200 {object} response.ProductSelectionResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 type 또는 limit"
// @Router /api/v1/products/types/{type} [get]
func (h *Handler) ListProductsByTypeHandler(c echo.Context) error {
	t, err := parseProductType(c.Param(constants.ParamProductType))
	if err != nil {
		return err
	}

	limit, err := parseLimit(c, 0)
	if err != nil {
		return err
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewProductSelectionResponse(catalog.ByType(cat.Products(), t, limit)))
}

// ListProductsByLevelHandler godoc
// @Summary 레벨별 상품 목록
// @Description 지정된 레벨의 상품을 카탈로그 순서대로 반환합니다. limit이 없으면 전부 반환합니다.
// @Tags Products
// @Produce json
// @Param level path string true "레벨 (beginner, intermediate, advanced, international-exam ...)"
// @Param limit query int false "최대 개수 (최대 50)"
// @Success 200 {object} response.ProductSelectionResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 level 또는 limit"
// @Router /api/v1/products/levels/{level} [get]
func (h *Handler) ListProductsByLevelHandler(c echo.Context) error {
	raw := c.Param(constants.ParamLevel)
	level, ok := catalog.ParseLevel(raw)
	if !ok || level == catalog.LevelNone {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidLevel + ": " + raw)
	}

	limit, err := parseLimit(c, 0)
	if err != nil {
		return err
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.NewProductSelectionResponse(catalog.ByLevel(cat.Products(), level, limit)))
}

func parseProductType(raw string) (catalog.ProductType, error) {
	t, ok := catalog.ParseProductType(raw)
	if !ok {
		return "", httputil.NewBadRequestError(constants.ErrMsgInvalidProductType + ": " + raw)
	}
	return t, nil
}
