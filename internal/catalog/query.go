package catalog

import (
	"net/url"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/pkg/observer"
)

// ErrInvalidFilter 필터 패싯에 지원하지 않는 값이 지정되었습니다.
var ErrInvalidFilter = apperrors.New(apperrors.InvalidInput, "필터 조건이 올바르지 않습니다")

// URL 쿼리 파라미터 이름입니다.
const (
	ParamType   = "type"
	ParamLevel  = "level"
	ParamFormat = "format"
	ParamSort   = "sort"
	ParamSearch = "q"
)

// FilterState 카탈로그 화면의 현재 필터/정렬 상태이며, filter-change 이벤트의 페이로드입니다.
type FilterState struct {
	Level        string  `json:"level"`
	Format       string  `json:"format"`
	Sort         SortKey `json:"sort"`
	ResourceType string  `json:"resourceType"`
	Search       string  `json:"search"`
}

// DefaultFilterState 모든 패싯이 기본값(level=all, format=all, sort=featured, resourceType=any, search='')인 상태입니다.
func DefaultFilterState() FilterState {
	return FilterState{
		Level:        FacetAll,
		Format:       FacetAll,
		Sort:         DefaultSortKey,
		ResourceType: ResourceTypeAny,
	}
}

// WithDefaults 비어 있는 패싯을 기본값으로 채우고, 알 수 없는 정렬 기준을 기본값으로 바꾼 상태를 반환합니다.
// 검색어는 입력된 그대로 유지합니다.
func (s FilterState) WithDefaults() FilterState {
	d := DefaultFilterState()
	if s.Level == "" {
		s.Level = d.Level
	}
	if s.Format == "" {
		s.Format = d.Format
	}
	if s.ResourceType == "" {
		s.ResourceType = d.ResourceType
	}
	s.Sort, _ = ParseSortKey(string(s.Sort))

	return s
}

// Validate 각 패싯 값이 지원하는 값인지 검증합니다. 빈 값은 기본값으로 간주합니다.
func (s FilterState) Validate() error {
	s = s.WithDefaults()

	if s.ResourceType != ResourceTypeAny && !ProductType(s.ResourceType).IsValid() {
		return apperrors.Wrapf(ErrInvalidFilter, apperrors.InvalidInput, "지원하지 않는 상품 종류입니다: %q", s.ResourceType)
	}
	if s.Level != FacetAll && !slices.Contains(Levels, Level(s.Level)) {
		return apperrors.Wrapf(ErrInvalidFilter, apperrors.InvalidInput, "지원하지 않는 레벨입니다: %q", s.Level)
	}
	if s.Format != FacetAll && !slices.Contains(FormatTags, FormatTag(s.Format)) {
		return apperrors.Wrapf(ErrInvalidFilter, apperrors.InvalidInput, "지원하지 않는 형식입니다: %q", s.Format)
	}

	return nil
}

// Criteria 필터 엔진에 전달할 조건으로 변환합니다.
func (s FilterState) Criteria() Criteria {
	return Criteria{
		ResourceType: s.ResourceType,
		Level:        s.Level,
		Format:       s.Format,
		SearchTerm:   s.Search,
	}
}

// Encode URL 쿼리 파라미터로 변환합니다. 기본값인 패싯은 생략하고, 검색어는 앞뒤 공백을 제거해 기록합니다.
func (s FilterState) Encode() url.Values {
	s = s.WithDefaults()
	d := DefaultFilterState()

	values := url.Values{}
	if s.ResourceType != d.ResourceType {
		values.Set(ParamType, s.ResourceType)
	}
	if s.Level != d.Level {
		values.Set(ParamLevel, s.Level)
	}
	if s.Format != d.Format {
		values.Set(ParamFormat, s.Format)
	}
	if s.Sort != d.Sort {
		values.Set(ParamSort, string(s.Sort))
	}
	if q := strings.TrimSpace(s.Search); q != "" {
		values.Set(ParamSearch, q)
	}

	return values
}

// ParseFilterState URL 쿼리 파라미터에서 필터 상태를 복원합니다.
// 누락된 파라미터는 기본값으로 채워지며, 레벨/형식은 정규 표기(kebab-case)로 변환됩니다.
func ParseFilterState(values url.Values) FilterState {
	s := FilterState{
		ResourceType: canonicalFacet(values.Get(ParamType)),
		Level:        canonicalFacet(values.Get(ParamLevel)),
		Format:       canonicalFacet(values.Get(ParamFormat)),
		Sort:         SortKey(strings.TrimSpace(values.Get(ParamSort))),
		Search:       values.Get(ParamSearch),
	}

	return s.WithDefaults()
}

func canonicalFacet(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return canonicalEnumKey(v)
}

// ResultCount result-count 이벤트의 페이로드입니다.
type ResultCount struct {
	Count int `json:"count"`
}

// Process 필터를 적용한 뒤 정렬합니다(filter-then-sort).
func (s *Sorter) Process(products []Product, state FilterState, editorials EditorialLookup) []Product {
	state = state.WithDefaults()
	return s.Sort(Filter(products, state.Criteria(), editorials), state.Sort)
}

// Query 현재 필터 상태를 보유하고 filter-then-sort 파이프라인을 실행하는 조회 파사드입니다.
//
// 상태 변경 시 filter-change(또는 filter-reset)와 result-count 이벤트를 순서대로 발행합니다.
// 이벤트는 호출한 고루틴에서 동기적으로 전달됩니다.
type Query struct {
	sorter     *Sorter
	editorials EditorialLookup

	mu    sync.RWMutex
	state FilterState

	filterChanged observer.Topic[FilterState]
	filterReset   observer.Topic[struct{}]
	resultCount   observer.Topic[ResultCount]
}

// NewQuery 새로운 Query를 생성합니다. sorter가 nil이면 기본 로케일 Sorter를 사용합니다.
func NewQuery(sorter *Sorter, editorials EditorialLookup) *Query {
	if sorter == nil {
		sorter = defaultSorter
	}

	return &Query{
		sorter:     sorter,
		editorials: editorials,
		state:      DefaultFilterState(),
	}
}

// State 현재 필터 상태를 반환합니다.
func (q *Query) State() FilterState {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.state
}

// Process 현재 상태를 변경하지 않고 지정된 상태로 파이프라인을 실행합니다.
func (q *Query) Process(products []Product, state FilterState) []Product {
	return q.sorter.Process(products, state, q.editorials)
}

// Apply 현재 필터 상태로 파이프라인을 실행합니다.
func (q *Query) Apply(products []Product) []Product {
	return q.Process(products, q.State())
}

// SetFilter 필터 상태를 변경하고 결과를 계산합니다.
// filter-change 이벤트 발행 후 result-count 이벤트를 발행합니다.
func (q *Query) SetFilter(products []Product, state FilterState) []Product {
	state = state.WithDefaults()

	q.mu.Lock()
	q.state = state
	q.mu.Unlock()

	q.filterChanged.Publish(state)

	result := q.Process(products, state)
	q.resultCount.Publish(ResultCount{Count: len(result)})

	return result
}

// Reset 필터 상태를 기본값으로 되돌립니다.
// filter-reset 이벤트 발행 후 result-count 이벤트를 발행합니다.
func (q *Query) Reset(products []Product) []Product {
	state := DefaultFilterState()

	q.mu.Lock()
	q.state = state
	q.mu.Unlock()

	q.filterReset.Publish(struct{}{})

	result := q.Process(products, state)
	q.resultCount.Publish(ResultCount{Count: len(result)})

	return result
}

// OnFilterChange filter-change 이벤트를 구독합니다. 반환된 함수로 구독을 해제합니다.
func (q *Query) OnFilterChange(fn func(FilterState)) (unsubscribe func()) {
	return q.filterChanged.Subscribe(fn)
}

// OnFilterReset filter-reset 이벤트를 구독합니다.
func (q *Query) OnFilterReset(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return q.filterReset.Subscribe(func(struct{}) { fn() })
}

// OnResultCount result-count 이벤트를 구독합니다.
func (q *Query) OnResultCount(fn func(ResultCount)) (unsubscribe func()) {
	return q.resultCount.Subscribe(fn)
}
