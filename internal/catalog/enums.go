package catalog

import (
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
)

// ProductType 상품의 종류입니다. 정규화 시점에 한 번 결정되며 이후 변경되지 않습니다.
type ProductType string

const (
	ProductTypeBook ProductType = "book"
	ProductTypeExam ProductType = "exam"
	ProductTypePack ProductType = "pack"
)

// ProductTypes 지원하는 모든 상품 종류입니다.
var ProductTypes = []ProductType{ProductTypeBook, ProductTypeExam, ProductTypePack}

// Level 상품의 난이도(레벨) 패싯입니다.
// 시험(exam)은 고유한 레벨 필드가 없으므로 difficulty 값이 이 타입으로 매핑됩니다.
type Level string

const (
	// LevelNone 레벨 정보가 없는 상품입니다.
	LevelNone Level = ""

	LevelBasic             Level = "basic"
	LevelIntermediate      Level = "intermediate"
	LevelAdvanced          Level = "advanced"
	LevelAllLevels         Level = "all-levels"
	LevelProfessional      Level = "professional"
	LevelInternationalExam Level = "international-exam"
	LevelBeginner          Level = "beginner"
)

// Levels 지원하는 모든 레벨입니다.
var Levels = []Level{
	LevelBasic,
	LevelIntermediate,
	LevelAdvanced,
	LevelAllLevels,
	LevelProfessional,
	LevelInternationalExam,
	LevelBeginner,
}

// FormatTag 상품이 제공하는 자료 형식 태그입니다.
type FormatTag string

const (
	FormatPDF      FormatTag = "pdf"
	FormatWorkbook FormatTag = "workbook"
	FormatAudio    FormatTag = "audio"
	FormatVideo    FormatTag = "video"
	FormatSoftware FormatTag = "software"
	FormatExams    FormatTag = "exams"
)

// FormatTags 지원하는 모든 형식 태그입니다.
var FormatTags = []FormatTag{FormatPDF, FormatWorkbook, FormatAudio, FormatVideo, FormatSoftware, FormatExams}

// PopularityTag 상품의 인기/프로모션 태그입니다.
type PopularityTag string

const (
	PopularityBestseller   PopularityTag = "bestseller"
	PopularityNew          PopularityTag = "new"
	PopularitySpecialOffer PopularityTag = "special-offer"
	PopularityCompletePack PopularityTag = "complete-pack"
	PopularityRecommended  PopularityTag = "recommended"
)

// PopularityTags 지원하는 모든 인기 태그입니다.
var PopularityTags = []PopularityTag{
	PopularityBestseller,
	PopularityNew,
	PopularitySpecialOffer,
	PopularityCompletePack,
	PopularityRecommended,
}

// 원본 데이터에서 관찰되는 표기 변형을 정규 값으로 매핑합니다.
// 키는 canonicalEnumKey()를 거친 kebab-case 문자열입니다.
var popularityAliases = map[string]PopularityTag{
	"best-seller": PopularityBestseller,
}

// canonicalEnumKey "International Exam", "bestSeller", " PDF " 같은 표기를 kebab-case로 통일합니다.
func canonicalEnumKey(s string) string {
	return strcase.ToKebab(strings.TrimSpace(s))
}

// ParseProductType 문자열을 ProductType으로 변환합니다.
func ParseProductType(s string) (ProductType, bool) {
	return parseEnum(s, ProductTypes, nil)
}

// ParseLevel 문자열을 Level로 변환합니다. 빈 문자열은 LevelNone입니다.
func ParseLevel(s string) (Level, bool) {
	if strings.TrimSpace(s) == "" {
		return LevelNone, true
	}
	return parseEnum(s, Levels, nil)
}

// ParseFormatTag 문자열을 FormatTag로 변환합니다.
func ParseFormatTag(s string) (FormatTag, bool) {
	return parseEnum(s, FormatTags, nil)
}

// ParsePopularityTag 문자열을 PopularityTag로 변환합니다.
func ParsePopularityTag(s string) (PopularityTag, bool) {
	return parseEnum(s, PopularityTags, popularityAliases)
}

func parseEnum[T ~string](s string, values []T, aliases map[string]T) (T, bool) {
	key := canonicalEnumKey(s)
	for _, v := range values {
		if string(v) == key {
			return v, true
		}
	}
	if v, ok := aliases[key]; ok {
		return v, true
	}

	var zero T
	return zero, false
}

// IsValid 지원하는 상품 종류인지 확인합니다.
func (t ProductType) IsValid() bool {
	return slices.Contains(ProductTypes, t)
}

func (t ProductType) String() string { return string(t) }

func (l Level) String() string { return string(l) }

func (f FormatTag) String() string { return string(f) }

func (p PopularityTag) String() string { return string(p) }
