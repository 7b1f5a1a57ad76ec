// Package response v1 API 응답 모델을 정의합니다.
package response

import (
	"github.com/darkkaiser/storefront-server/internal/catalog"
	apiresponse "github.com/darkkaiser/storefront-server/internal/service/api/model/response"
)

// ErrorResponse API 오류 응답 (문서화용 별칭)
type ErrorResponse = apiresponse.ErrorResponse

// ProductListResponse 상품 목록 조회 응답
type ProductListResponse struct {
	Products []catalog.Product `json:"products"`
	// Count 필터를 적용한 결과 개수
	Count int `json:"count" example:"12"`
	// Counts 전체 카탈로그의 종류별 상품 개수
	Counts catalog.ProductCounts `json:"counts"`
	// Filter 기본값으로 채워진 현재 필터 상태
	Filter catalog.FilterState `json:"filter"`
	// Query 현재 필터 상태를 표현하는 정규화된 쿼리 문자열 (기본값은 생략)
	Query string `json:"query" example:"level=advanced&sort=price-low"`
}

// RecommendationResponse 관련 상품 추천 응답
type RecommendationResponse struct {
	ProductID       string            `json:"product_id" example:"b-1"`
	Recommendations []catalog.Product `json:"recommendations"`
}

// ProductSelectionResponse 추천/베스트셀러/종류별/레벨별 상품 선택 응답
type ProductSelectionResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count" example:"4"`
}

// NewProductSelectionResponse 상품 목록으로 ProductSelectionResponse를 생성합니다.
func NewProductSelectionResponse(products []catalog.Product) ProductSelectionResponse {
	if products == nil {
		products = []catalog.Product{}
	}
	return ProductSelectionResponse{Products: products, Count: len(products)}
}
