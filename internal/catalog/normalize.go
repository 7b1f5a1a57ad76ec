package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/storefront-server/pkg/maputil"
	"github.com/darkkaiser/storefront-server/pkg/strutil"
	"github.com/go-playground/validator/v10"
)

// RawCommon 모든 원본 레코드가 공유하는 필드입니다.
// 필수 필드(id, title, price)는 검증 순서가 곧 보고 순서가 되도록 가장 앞에 둡니다.
type RawCommon struct {
	ID    string   `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`

	Description string  `json:"description"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`

	FormatTags     []string `json:"formatTags"`
	PopularityTags []string `json:"popularityTags"`

	Rating   *Rating `json:"rating"`
	Featured bool    `json:"featured"`

	CoverImage  string `json:"coverImage"`
	AltText     string `json:"altText"`
	DetailsLink string `json:"detailsLink"`
	BuyLink     string `json:"buyLink"`
}

// trimmed 필수 식별 필드(id, title)의 앞뒤 공백을 제거한 사본을 반환합니다.
// 공백뿐인 값은 빈 값이 되어 required 검증에서 걸러집니다.
func (c RawCommon) trimmed() RawCommon {
	c.ID = strings.TrimSpace(c.ID)
	c.Title = strings.TrimSpace(c.Title)
	return c
}

// RawBook books.json의 원본 레코드입니다.
type RawBook struct {
	RawCommon

	Level       string `json:"level"`
	EditorialID string `json:"editorialId"`
}

// RawExam exams.json의 원본 레코드입니다. 고유한 level 필드 대신 difficulty를 가집니다.
type RawExam struct {
	RawCommon

	Difficulty string `json:"difficulty"`
	ExamType   string `json:"examType"`
}

// RawPack packs.json의 원본 레코드입니다.
type RawPack struct {
	RawCommon

	Level    string   `json:"level"`
	BooksIDs []string `json:"booksIds"`
	Books    []any    `json:"books"`
}

// Normalizer 원본 레코드를 Product로 변환합니다.
// 상태를 가지지 않으며 여러 고루틴에서 동시에 사용할 수 있습니다.
type Normalizer struct {
	validate *validator.Validate
}

// NewNormalizer 새로운 Normalizer를 생성합니다.
func NewNormalizer() *Normalizer {
	v := validator.New()

	// 에러 보고 시 Go 필드명 대신 원본 데이터의 JSON 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Normalizer{validate: v}
}

// Normalize 느슨한 타입의 원본 레코드(JSON 객체)를 kind에 맞게 디코딩한 뒤 Product로 변환합니다.
func (n *Normalizer) Normalize(kind ProductType, record map[string]any) (Product, error) {
	switch kind {
	case ProductTypeBook:
		raw, err := decodeRecord[RawBook](kind, record)
		if err != nil {
			return Product{}, err
		}
		return n.NormalizeBook(*raw)

	case ProductTypeExam:
		raw, err := decodeRecord[RawExam](kind, record)
		if err != nil {
			return Product{}, err
		}
		return n.NormalizeExam(*raw)

	case ProductTypePack:
		raw, err := decodeRecord[RawPack](kind, record)
		if err != nil {
			return Product{}, err
		}
		return n.NormalizePack(*raw)

	default:
		return Product{}, fmt.Errorf("%w: %q", ErrUnknownProductType, kind)
	}
}

// NormalizeBook 도서 레코드를 Product로 변환합니다.
func (n *Normalizer) NormalizeBook(raw RawBook) (Product, error) {
	raw.RawCommon = raw.RawCommon.trimmed()

	p, err := n.normalizeCommon(ProductTypeBook, raw, raw.RawCommon)
	if err != nil {
		return Product{}, err
	}

	if p.Level, err = parseLevelField(ProductTypeBook, raw.ID, "level", raw.Level); err != nil {
		return Product{}, err
	}
	p.EditorialID = strings.TrimSpace(raw.EditorialID)

	return p, nil
}

// NormalizeExam 시험 레코드를 Product로 변환합니다. Level은 difficulty에서 가져옵니다.
func (n *Normalizer) NormalizeExam(raw RawExam) (Product, error) {
	raw.RawCommon = raw.RawCommon.trimmed()

	p, err := n.normalizeCommon(ProductTypeExam, raw, raw.RawCommon)
	if err != nil {
		return Product{}, err
	}

	if p.Level, err = parseLevelField(ProductTypeExam, raw.ID, "difficulty", raw.Difficulty); err != nil {
		return Product{}, err
	}
	p.ExamType = strings.TrimSpace(raw.ExamType)

	return p, nil
}

// NormalizePack 패키지 레코드를 Product로 변환합니다.
// BookCount는 booksIds가 있으면 그 개수를, 없으면 포함된 books 개수를 사용합니다.
func (n *Normalizer) NormalizePack(raw RawPack) (Product, error) {
	raw.RawCommon = raw.RawCommon.trimmed()

	p, err := n.normalizeCommon(ProductTypePack, raw, raw.RawCommon)
	if err != nil {
		return Product{}, err
	}

	if p.Level, err = parseLevelField(ProductTypePack, raw.ID, "level", raw.Level); err != nil {
		return Product{}, err
	}

	p.BookCount = len(raw.BooksIDs)
	if p.BookCount == 0 {
		p.BookCount = len(raw.Books)
	}

	return p, nil
}

// normalizeCommon 구조체 검증 후 공통 필드를 변환합니다.
// full은 검증 대상이 되는 전체 레코드(RawBook 등)입니다.
func (n *Normalizer) normalizeCommon(kind ProductType, full any, c RawCommon) (Product, error) {
	if err := n.checkRecord(kind, c.ID, full); err != nil {
		return Product{}, err
	}

	formats, err := parseTagsField(kind, c.ID, "formatTags", c.FormatTags, ParseFormatTag)
	if err != nil {
		return Product{}, err
	}
	popularity, err := parseTagsField(kind, c.ID, "popularityTags", c.PopularityTags, ParsePopularityTag)
	if err != nil {
		return Product{}, err
	}

	var rating *Rating
	if c.Rating != nil {
		r := *c.Rating
		rating = &r
	}

	return Product{
		ID:             c.ID,
		Title:          strutil.NormalizeSpaces(c.Title),
		Description:    htmlToText(c.Description),
		Price:          *c.Price,
		Discount:       c.Discount,
		ProductType:    kind,
		FormatTags:     formats,
		PopularityTags: popularity,
		Rating:         rating,
		Featured:       c.Featured,
		CoverImage:     c.CoverImage,
		AltText:        c.AltText,
		DetailsLink:    c.DetailsLink,
		BuyLink:        c.BuyLink,
	}, nil
}

// checkRecord 구조체 태그 기반 검증을 수행하고 첫 번째 위반을 ValidationError로 변환합니다.
func (n *Normalizer) checkRecord(kind ProductType, id string, record any) error {
	err := n.validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &ValidationError{Kind: kind, RecordID: id, Reason: err.Error()}
	}

	first := validationErrors[0]
	ve := &ValidationError{Kind: kind, RecordID: id, Field: first.Field()}
	switch first.Tag() {
	case "required":
		ve.Reason = reasonMissing
	default:
		ve.Value = fmt.Sprint(reflect.Indirect(reflect.ValueOf(first.Value())))
		ve.Reason = fmt.Sprintf("%s (조건: %s=%s)", reasonOutOfRange, first.Tag(), first.Param())
	}

	return ve
}

// decodeRecord 원본 JSON 객체를 Raw 구조체로 디코딩합니다.
// 타입 변환에 실패한 레코드(예: price가 숫자가 아닌 문자열)는 ValidationError로 보고합니다.
func decodeRecord[T any](kind ProductType, record map[string]any) (*T, error) {
	raw, err := maputil.Decode[T](record)
	if err != nil {
		id, _ := record["id"].(string)
		return nil, &ValidationError{Kind: kind, RecordID: id, Reason: fmt.Sprintf("%s: %v", reasonMalformed, err)}
	}
	return raw, nil
}

func parseLevelField(kind ProductType, id, field, value string) (Level, error) {
	level, ok := ParseLevel(value)
	if !ok {
		return LevelNone, &ValidationError{Kind: kind, RecordID: id, Field: field, Value: value, Reason: reasonUnsupported}
	}
	return level, nil
}

// parseTagsField 태그 목록을 열거형 집합으로 변환합니다.
// 결과는 nil이 아닌 슬라이스이며, 중복 태그는 첫 번째 항목만 유지합니다.
func parseTagsField[T comparable](kind ProductType, id, field string, values []string, parse func(string) (T, bool)) ([]T, error) {
	tags := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}

		tag, ok := parse(v)
		if !ok {
			return nil, &ValidationError{Kind: kind, RecordID: id, Field: field, Value: v, Reason: reasonUnsupported}
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags, nil
}

// htmlToText 설명 필드에 포함된 HTML 마크업을 제거하고 텍스트만 남깁니다.
// 마크업이 없으면 공백만 정리합니다.
func htmlToText(s string) string {
	if !strings.Contains(s, "<") {
		return strutil.NormalizeMultiLineSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strutil.NormalizeMultiLineSpaces(s)
	}

	return strutil.NormalizeMultiLineSpaces(doc.Text())
}
