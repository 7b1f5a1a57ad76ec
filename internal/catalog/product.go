// Package catalog 상품 카탈로그의 정규화, 필터링, 정렬, 추천 로직을 제공합니다.
//
// 이 패키지의 엔진(Filter, Sort, Recommend)은 입력을 변경하지 않는 순수 함수이므로
// 별도의 동기화 없이 여러 고루틴에서 동시에 호출할 수 있습니다.
package catalog

import (
	"slices"
)

// Rating 상품의 평점 정보입니다.
type Rating struct {
	Score       float64 `json:"score"`
	ReviewCount int     `json:"reviewCount"`
}

// Product 도서, 시험, 패키지를 하나로 통합한 상품 모델입니다.
//
// Normalizer가 한 번 생성한 뒤에는 불변 값 객체로 취급되며, 어떤 컴포넌트도 제자리에서 수정하지 않습니다.
// FormatTags와 PopularityTags는 nil이 아닌 빈 슬라이스로 초기화됩니다.
type Product struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Discount    float64     `json:"discount"`
	Level       Level       `json:"level,omitempty"`
	ProductType ProductType `json:"productType"`

	FormatTags     []FormatTag     `json:"formatTags"`
	PopularityTags []PopularityTag `json:"popularityTags"`

	EditorialID string  `json:"editorialId,omitempty"`
	Rating      *Rating `json:"rating,omitempty"`
	Featured    bool    `json:"featured"`

	CoverImage  string `json:"coverImage,omitempty"`
	AltText     string `json:"altText,omitempty"`
	DetailsLink string `json:"detailsLink,omitempty"`
	BuyLink     string `json:"buyLink,omitempty"`

	ExamType  string `json:"examType,omitempty"`
	BookCount int    `json:"bookCount,omitempty"`
}

// HasFormat 상품이 지정된 형식 태그를 가지고 있는지 확인합니다.
func (p Product) HasFormat(tag FormatTag) bool {
	return slices.Contains(p.FormatTags, tag)
}

// HasPopularity 상품이 지정된 인기 태그를 가지고 있는지 확인합니다.
func (p Product) HasPopularity(tag PopularityTag) bool {
	return slices.Contains(p.PopularityTags, tag)
}

// IsBestseller 베스트셀러 태그 보유 여부를 반환합니다.
func (p Product) IsBestseller() bool {
	return p.HasPopularity(PopularityBestseller)
}

// RatingScore 평점을 반환합니다. 평점이 없으면 0입니다.
func (p Product) RatingScore() float64 {
	if p.Rating == nil {
		return 0
	}
	return p.Rating.Score
}

// DiscountedPrice 할인율을 적용한 가격을 반환합니다. 할인이 없으면 원래 가격입니다.
func (p Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// SharesFormatWith 두 상품이 하나 이상의 형식 태그를 공유하는지 확인합니다.
func (p Product) SharesFormatWith(other Product) bool {
	for _, tag := range p.FormatTags {
		if other.HasFormat(tag) {
			return true
		}
	}
	return false
}

// ProductCounts 상품 종류별 개수입니다.
type ProductCounts struct {
	Total int `json:"total"`
	Books int `json:"books"`
	Packs int `json:"packs"`
	Exams int `json:"exams"`
}

// Counts 상품 목록을 한 번 순회하며 종류별 개수를 집계합니다.
func Counts(products []Product) ProductCounts {
	var c ProductCounts
	for _, p := range products {
		c.Total++
		switch p.ProductType {
		case ProductTypeBook:
			c.Books++
		case ProductTypePack:
			c.Packs++
		case ProductTypeExam:
			c.Exams++
		}
	}
	return c
}
