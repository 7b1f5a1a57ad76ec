package handler

import (
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 필터(종류, 레벨, 형식, 검색어)를 적용한 뒤 정렬한 상품 목록을 반환합니다.
// @Description 생략된 파라미터는 기본값(type=any, level=all, format=all, sort=featured)을 사용합니다.
// @Tags Products
// @Produce json
// @Param type query string false "상품 종류 (any, book, exam, pack)"
// @Param level query string false "레벨 (all, beginner, intermediate, advanced, international-exam ...)"
// @Param format query string false "형식 태그 (all, pdf, workbook, audio, video, software, exams)"
// @Param sort query string false "정렬 (featured, bestseller, price-low, price-high, name-asc, name-desc, newest, book-count)"
// @Param q query string false "검색어 (제목, 설명, 도서의 출판사 이름)"
// @Success 200 {object} response.ProductListResponse
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 필터 값"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	state := catalog.ParseFilterState(c.QueryParams())
	if err := state.Validate(); err != nil {
		return err
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	all := cat.Products()
	products := h.catalogs.Sorter().Process(all, state, cat.Editorials())

	return c.JSON(http.StatusOK, response.ProductListResponse{
		Products: products,
		Count:    len(products),
		Counts:   catalog.Counts(all),
		Filter:   state,
		Query:    state.Encode().Encode(),
	})
}

// GetProductCountsHandler godoc
// @Summary 종류별 상품 개수
// @Tags Products
// @Produce json
// @Success 200 {object} catalog.ProductCounts
// @Router /api/v1/products/counts [get]
func (h *Handler) GetProductCountsHandler(c echo.Context) error {
	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, catalog.Counts(cat.Products()))
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Tags Products
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	p, err := cat.Product(c.Param(constants.ParamProductID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, p)
}

// GetRecommendationsHandler godoc
// @Summary 관련 상품 추천
// @Description 같은 레벨의 상품을 우선하고, 형식 태그를 공유하는 상품, 나머지 상품 순으로 채워 최대 limit개를 반환합니다.
// @Description 후보가 limit개 이하이면 후보 전체를 카탈로그 순서대로 반환합니다.
// @Tags Products
// @Produce json
// @Param id path string true "상품 ID"
// @Param limit query int false "최대 추천 개수 (기본값: 설정의 recommendation.max_count, 최대 50)"
// @Success 200 {object} response.RecommendationResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 limit"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id}/recommendations [get]
func (h *Handler) GetRecommendationsHandler(c echo.Context) error {
	limit, err := parseLimit(c, h.defaultRecommendations)
	if err != nil {
		return err
	}

	cat, err := h.catalogs.Catalog()
	if err != nil {
		return err
	}

	subject, err := cat.Product(c.Param(constants.ParamProductID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.RecommendationResponse{
		ProductID:       subject.ID,
		Recommendations: catalog.Recommend(subject, cat.Products(), limit),
	})
}
