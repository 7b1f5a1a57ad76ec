package catalog

import (
	"github.com/darkkaiser/storefront-server/pkg/strutil"
)

const (
	// ResourceTypeAny 상품 종류 패싯을 제한하지 않습니다.
	ResourceTypeAny = "any"

	// FacetAll 레벨/형식 패싯을 제한하지 않습니다.
	FacetAll = "all"
)

// Criteria 필터 조건입니다. 빈 값은 각각의 기본값(any/all/all/"")과 동일하게 취급됩니다.
type Criteria struct {
	ResourceType string // "any" 또는 ProductType 값
	Level        string // "all" 또는 Level 값
	Format       string // "all" 또는 FormatTag 값
	SearchTerm   string
}

// DefaultCriteria 아무 상품도 제외하지 않는 기본 필터 조건을 반환합니다.
func DefaultCriteria() Criteria {
	return Criteria{
		ResourceType: ResourceTypeAny,
		Level:        FacetAll,
		Format:       FacetAll,
	}
}

// EditorialLookup 출판사 ID로 표시 이름을 조회합니다.
// 알 수 없는 ID이면 ok=false를 반환합니다.
type EditorialLookup interface {
	EditorialName(id string) (name string, ok bool)
}

// EditorialLookupFunc 함수를 EditorialLookup으로 사용하기 위한 어댑터입니다.
type EditorialLookupFunc func(id string) (string, bool)

func (f EditorialLookupFunc) EditorialName(id string) (string, bool) {
	return f(id)
}

// EditorialMap ID -> 이름 맵 기반의 EditorialLookup 구현입니다.
type EditorialMap map[string]string

func (m EditorialMap) EditorialName(id string) (string, bool) {
	name, ok := m[id]
	return name, ok
}

// Filter 네 가지 조건(종류, 레벨, 형식, 검색어)을 모두 만족하는 상품만 입력 순서대로 반환합니다.
//
//   - 종류: ResourceType이 "any"이거나 ProductType과 일치
//   - 레벨: Level이 "all"이거나 정확히 일치 (계층 관계 없음)
//   - 형식: Format이 "all"이거나 FormatTags에 포함
//   - 검색어: 제목, 설명, (도서만) 출판사 이름 중 하나에 대소문자 구분 없이 포함
//
// editorials는 nil일 수 있으며, 이 경우 출판사 이름 검색은 수행하지 않습니다.
func Filter(products []Product, criteria Criteria, editorials EditorialLookup) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if criteria.Matches(p, editorials) {
			result = append(result, p)
		}
	}
	return result
}

// Matches 단일 상품이 조건을 만족하는지 검사합니다.
func (c Criteria) Matches(p Product, editorials EditorialLookup) bool {
	return c.matchesType(p) &&
		c.matchesLevel(p) &&
		c.matchesFormat(p) &&
		c.matchesSearch(p, editorials)
}

func (c Criteria) matchesType(p Product) bool {
	return isUnrestricted(c.ResourceType, ResourceTypeAny) || string(p.ProductType) == c.ResourceType
}

func (c Criteria) matchesLevel(p Product) bool {
	return isUnrestricted(c.Level, FacetAll) || string(p.Level) == c.Level
}

func (c Criteria) matchesFormat(p Product) bool {
	return isUnrestricted(c.Format, FacetAll) || p.HasFormat(FormatTag(c.Format))
}

func (c Criteria) matchesSearch(p Product, editorials EditorialLookup) bool {
	term := c.SearchTerm
	if term == "" {
		return true
	}

	if strutil.ContainsFold(p.Title, term) || strutil.ContainsFold(p.Description, term) {
		return true
	}

	if p.ProductType != ProductTypeBook || p.EditorialID == "" || editorials == nil {
		return false
	}
	name, ok := editorials.EditorialName(p.EditorialID)

	return ok && strutil.ContainsFold(name, term)
}

func isUnrestricted(value, wildcard string) bool {
	return value == "" || value == wildcard
}
