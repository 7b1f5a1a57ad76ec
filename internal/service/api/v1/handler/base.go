// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩/검증한 뒤 카탈로그 조회와 장바구니 저장소를 호출하고,
// 도메인 에러는 그대로 반환하여 전역 에러 핸들러가 상태 코드를 결정하도록 합니다.
package handler

import (
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// maxLimit limit 쿼리 파라미터의 상한입니다.
	maxLimit = 50

	// defaultSelectionLimit 추천/베스트셀러 무작위 선택의 기본 개수입니다.
	defaultSelectionLimit = 4
)

// CatalogProvider 현재 카탈로그와 정렬 엔진을 제공합니다.
type CatalogProvider interface {
	Catalog() (*catalog.Catalog, error)
	Sorter() *catalog.Sorter
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	catalogs CatalogProvider
	carts    *cart.Registry

	// defaultRecommendations limit 파라미터가 없을 때의 추천 개수
	defaultRecommendations int

	// rng 무작위 선택에 사용할 난수 생성기 (nil이면 전역 난수 소스)
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(catalogs CatalogProvider, carts *cart.Registry, defaultRecommendations int) *Handler {
	if catalogs == nil {
		panic(constants.PanicMsgCatalogProviderRequired)
	}
	if carts == nil {
		panic(constants.PanicMsgCartRegistryRequired)
	}
	if defaultRecommendations <= 0 {
		defaultRecommendations = catalog.DefaultRecommendationCount
	}

	return &Handler{
		catalogs:               catalogs,
		carts:                  carts,
		defaultRecommendations: defaultRecommendations,
	}
}

// WithRand 무작위 선택(추천 상품, 베스트셀러)에 사용할 난수 생성기를 지정합니다.
func (h *Handler) WithRand(rng *rand.Rand) *Handler {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()

	h.rng = rng
	return h
}

// withRand 지정된 난수 생성기로 fn을 실행합니다. *rand.Rand는 동시 사용이 안전하지 않으므로 잠금을 잡습니다.
func (h *Handler) withRand(fn func(rng *rand.Rand) []catalog.Product) []catalog.Product {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()

	return fn(h.rng)
}

// parseLimit limit 쿼리 파라미터를 해석합니다. 없으면 def를, 1 미만이거나 숫자가 아니면 400 에러를 반환합니다.
// 결과는 maxLimit으로 제한됩니다.
func parseLimit(c echo.Context, def int) (int, error) {
	raw := c.QueryParam(constants.QueryLimit)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, httputil.NewBadRequestError(constants.ErrMsgInvalidLimit)
	}
	return min(n, maxLimit), nil
}

// log 공통 로깅 필드가 설정된 로그 Entry를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
