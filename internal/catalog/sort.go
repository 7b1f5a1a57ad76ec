package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey 정렬 기준입니다.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortBestseller SortKey = "bestseller"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"

	// SortNewest 허용되지만 순서를 바꾸지 않습니다. 상품 모델에 출시일 정보가 없기 때문입니다.
	SortNewest SortKey = "newest"

	// SortBookCount 패키지에 포함된 도서 수 내림차순입니다.
	SortBookCount SortKey = "book-count"
)

// DefaultSortKey 정렬 기준이 없거나 알 수 없을 때 사용하는 기준입니다.
const DefaultSortKey = SortFeatured

// DefaultLocale 이름 정렬에 사용하는 기본 로케일입니다.
const DefaultLocale = "es"

var sortKeys = []SortKey{
	SortFeatured,
	SortPriceLow,
	SortPriceHigh,
	SortBestseller,
	SortNameAsc,
	SortNameDesc,
	SortNewest,
	SortBookCount,
}

// ParseSortKey 문자열을 SortKey로 변환합니다. 알 수 없는 값이면 DefaultSortKey와 false를 반환합니다.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(s)
	if slices.Contains(sortKeys, key) {
		return key, true
	}
	return DefaultSortKey, false
}

// Sorter 로케일 기반 이름 비교를 포함한 정렬 엔진입니다.
type Sorter struct {
	tag language.Tag
}

// NewSorter 지정된 로케일(BCP 47, 예: "es", "en-US")로 Sorter를 생성합니다.
// 해석할 수 없는 로케일이면 DefaultLocale을 사용합니다.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Sorter{tag: tag}
}

var defaultSorter = NewSorter(DefaultLocale)

// Sort 기본 로케일로 정렬합니다. Sorter.Sort를 참고하십시오.
func Sort(products []Product, key SortKey) []Product {
	return defaultSorter.Sort(products, key)
}

// Sort 정렬된 새 슬라이스를 반환하며 입력은 변경하지 않습니다.
// 모든 정렬은 안정 정렬이므로 같은 입력과 기준에 대해 결과가 항상 같습니다.
//
//   - price-low / price-high: 가격 오름차순 / 내림차순
//   - bestseller: 베스트셀러 우선, 그다음 평점 내림차순 (평점 없음 = 0)
//   - featured: 추천(featured) 우선, 그다음 베스트셀러 우선
//   - name-asc / name-desc: 대소문자와 악센트를 구분하지 않는 로케일 기반 제목 비교
//   - newest: 순서 변경 없음
//   - book-count: 포함 도서 수 내림차순
//
// 알 수 없는 기준은 featured로 처리합니다.
func (s *Sorter) Sort(products []Product, key SortKey) []Product {
	sorted := append(make([]Product, 0, len(products)), products...)
	if len(sorted) < 2 {
		return sorted
	}

	switch key {
	case SortPriceLow:
		slices.SortStableFunc(sorted, func(a, b Product) int {
			return cmp.Compare(a.Price, b.Price)
		})

	case SortPriceHigh:
		slices.SortStableFunc(sorted, func(a, b Product) int {
			return cmp.Compare(b.Price, a.Price)
		})

	case SortBestseller:
		slices.SortStableFunc(sorted, func(a, b Product) int {
			if c := compareFlagFirst(a.IsBestseller(), b.IsBestseller()); c != 0 {
				return c
			}
			return cmp.Compare(b.RatingScore(), a.RatingScore())
		})

	case SortNameAsc, SortNameDesc:
		// collate.Collator는 내부 버퍼를 가지므로 호출마다 새로 생성합니다.
		coll := collate.New(s.tag, collate.IgnoreCase, collate.IgnoreDiacritics)
		desc := key == SortNameDesc
		slices.SortStableFunc(sorted, func(a, b Product) int {
			if desc {
				return coll.CompareString(b.Title, a.Title)
			}
			return coll.CompareString(a.Title, b.Title)
		})

	case SortNewest:
		// 출시일 필드가 추가되기 전까지는 입력 순서를 유지합니다.

	case SortBookCount:
		slices.SortStableFunc(sorted, func(a, b Product) int {
			return cmp.Compare(b.BookCount, a.BookCount)
		})

	default:
		slices.SortStableFunc(sorted, func(a, b Product) int {
			if c := compareFlagFirst(a.Featured, b.Featured); c != 0 {
				return c
			}
			return compareFlagFirst(a.IsBestseller(), b.IsBestseller())
		})
	}

	return sorted
}

// compareFlagFirst true인 쪽이 앞에 오도록 비교합니다.
func compareFlagFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
