package catalog

import (
	"errors"
	"testing"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

// =============================================================================
// Typed records
// =============================================================================

func TestNormalizer_NormalizeBook(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	p, err := n.NormalizeBook(RawBook{
		RawCommon: RawCommon{
			ID:             "b-1",
			Title:          "  Gold   Experience ",
			Price:          price(24.5),
			Description:    "<p>Curso <b>completo</b></p>",
			FormatTags:     []string{"pdf", "audio", "pdf"},
			PopularityTags: []string{"bestSeller"},
			Rating:         &Rating{Score: 4.5, ReviewCount: 12},
		},
		Level:       "International Exam",
		EditorialID: "pearson",
	})

	require.NoError(t, err)
	assert.Equal(t, "b-1", p.ID)
	assert.Equal(t, "Gold Experience", p.Title)
	assert.Equal(t, "Curso completo", p.Description)
	assert.Equal(t, 24.5, p.Price)
	assert.Equal(t, ProductTypeBook, p.ProductType)
	assert.Equal(t, LevelInternationalExam, p.Level)
	assert.Equal(t, "pearson", p.EditorialID)
	assert.Equal(t, []FormatTag{FormatPDF, FormatAudio}, p.FormatTags, "중복 태그는 제거되어야 합니다")
	assert.Equal(t, []PopularityTag{PopularityBestseller}, p.PopularityTags)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.5, p.Rating.Score)
}

func TestNormalizer_NormalizeExam(t *testing.T) {
	t.Parallel()

	p, err := NewNormalizer().NormalizeExam(RawExam{
		RawCommon:  RawCommon{ID: "e-1", Title: "IELTS Practice", Price: price(30)},
		Difficulty: "advanced",
		ExamType:   "IELTS",
	})

	require.NoError(t, err)
	assert.Equal(t, ProductTypeExam, p.ProductType)
	assert.Equal(t, LevelAdvanced, p.Level, "시험의 레벨은 difficulty에서 가져와야 합니다")
	assert.Equal(t, "IELTS", p.ExamType)
	assert.Empty(t, p.EditorialID)
	assert.NotNil(t, p.FormatTags)
	assert.NotNil(t, p.PopularityTags)
}

func TestNormalizer_NormalizePack(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	t.Run("booksIds 개수", func(t *testing.T) {
		p, err := n.NormalizePack(RawPack{
			RawCommon: RawCommon{ID: "p-1", Title: "Pack", Price: price(50)},
			BooksIDs:  []string{"b-1", "b-2", "b-3"},
		})

		require.NoError(t, err)
		assert.Equal(t, ProductTypePack, p.ProductType)
		assert.Equal(t, 3, p.BookCount)
		assert.Empty(t, p.EditorialID)
	})

	t.Run("books 개수로 대체", func(t *testing.T) {
		p, err := n.NormalizePack(RawPack{
			RawCommon: RawCommon{ID: "p-2", Title: "Pack", Price: price(50)},
			Books:     []any{map[string]any{"id": "b-1"}, map[string]any{"id": "b-2"}},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, p.BookCount)
	})
}

// =============================================================================
// Validation
// =============================================================================

func TestNormalizer_ValidationErrors(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	tests := []struct {
		name      string
		raw       RawBook
		wantField string
		wantValue string
	}{
		{
			name:      "id 누락",
			raw:       RawBook{RawCommon: RawCommon{Title: "T", Price: price(1)}},
			wantField: "id",
		},
		{
			name:      "title 누락",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Price: price(1)}},
			wantField: "title",
		},
		{
			name:      "공백뿐인 id",
			raw:       RawBook{RawCommon: RawCommon{ID: "   ", Title: "T", Price: price(1)}},
			wantField: "id",
		},
		{
			name:      "공백뿐인 title",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: " \t ", Price: price(1)}},
			wantField: "title",
		},
		{
			name:      "price 누락",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T"}},
			wantField: "price",
		},
		{
			name:      "음수 price",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T", Price: price(-1)}},
			wantField: "price",
		},
		{
			name:      "할인율 범위 초과",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T", Price: price(1), Discount: 120}},
			wantField: "discount",
		},
		{
			name:      "알 수 없는 레벨",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T", Price: price(1)}, Level: "expert"},
			wantField: "level",
			wantValue: "expert",
		},
		{
			name:      "알 수 없는 형식 태그",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T", Price: price(1), FormatTags: []string{"cd-rom"}}},
			wantField: "formatTags",
			wantValue: "cd-rom",
		},
		{
			name:      "알 수 없는 인기 태그",
			raw:       RawBook{RawCommon: RawCommon{ID: "b-1", Title: "T", Price: price(1), PopularityTags: []string{"hot"}}},
			wantField: "popularityTags",
			wantValue: "hot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.NormalizeBook(tt.raw)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
			if tt.wantValue != "" {
				assert.Equal(t, tt.wantValue, ve.Value)
			}

			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

func TestNormalizer_BlankIdentityRejectedForEveryKind(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	blank := RawCommon{ID: "   ", Title: "T", Price: price(1)}

	tests := []struct {
		name      string
		normalize func() (Product, error)
	}{
		{"도서", func() (Product, error) { return n.NormalizeBook(RawBook{RawCommon: blank}) }},
		{"시험", func() (Product, error) { return n.NormalizeExam(RawExam{RawCommon: blank}) }},
		{"패키지", func() (Product, error) { return n.NormalizePack(RawPack{RawCommon: blank}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.normalize()

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "공백 ID는 ValidationError여야 합니다")
			assert.Equal(t, "id", ve.Field)
			assert.Empty(t, p.ID)
		})
	}
}

func TestNormalizer_TrimsIdentity(t *testing.T) {
	t.Parallel()

	p, err := NewNormalizer().NormalizeExam(RawExam{RawCommon: RawCommon{ID: "  e-9 ", Title: " Mock ", Price: price(5)}})

	require.NoError(t, err)
	assert.Equal(t, "e-9", p.ID)
	assert.Equal(t, "Mock", p.Title)
}

func TestNormalizer_ZeroPriceIsValid(t *testing.T) {
	t.Parallel()

	p, err := NewNormalizer().NormalizeBook(RawBook{RawCommon: RawCommon{ID: "free", Title: "Free", Price: price(0)}})

	require.NoError(t, err)
	assert.Zero(t, p.Price)
}

// =============================================================================
// Loosely-typed records
// =============================================================================

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()

	t.Run("맵 레코드 디코딩", func(t *testing.T) {
		p, err := n.Normalize(ProductTypeExam, map[string]any{
			"id":             "e-1",
			"title":          "TOEFL",
			"price":          "19.99",
			"difficulty":     "intermediate",
			"formatTags":     []any{"pdf"},
			"popularityTags": "new, bestSeller",
			"rating":         map[string]any{"score": 4.0, "reviewCount": 3.0},
			"unknownField":   true,
		})

		require.NoError(t, err)
		assert.Equal(t, 19.99, p.Price)
		assert.Equal(t, LevelIntermediate, p.Level)
		assert.Equal(t, []FormatTag{FormatPDF}, p.FormatTags)
		assert.Equal(t, []PopularityTag{PopularityNew, PopularityBestseller}, p.PopularityTags)
		require.NotNil(t, p.Rating)
		assert.Equal(t, 3, p.Rating.ReviewCount)
	})

	t.Run("price null", func(t *testing.T) {
		_, err := n.Normalize(ProductTypeBook, map[string]any{"id": "b-1", "title": "T", "price": nil})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "price", ve.Field)
	})

	t.Run("변환 불가능한 price", func(t *testing.T) {
		_, err := n.Normalize(ProductTypeBook, map[string]any{"id": "b-1", "title": "T", "price": "free"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "b-1", ve.RecordID)
	})

	t.Run("알 수 없는 종류", func(t *testing.T) {
		_, err := n.Normalize(ProductType("ebook"), map[string]any{})

		assert.ErrorIs(t, err, ErrUnknownProductType)
	})
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain text", htmlToText("  plain   text "))
	assert.Equal(t, "3 < 5", htmlToText("3 < 5"))
	assert.Equal(t, "Título\nLínea", htmlToText("<h1>Título</h1>\n<p>Línea</p>"))
}

func TestProduct_DiscountedPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, newProduct("a", withPrice(100)).DiscountedPrice())

	p := newProduct("b", withPrice(100))
	p.Discount = 25
	assert.InDelta(t, 75.0, p.DiscountedPrice(), 1e-9)
}
