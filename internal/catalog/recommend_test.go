package catalog

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario D
func TestRecommend_SameLevelFirstUntilCap(t *testing.T) {
	t.Parallel()

	subject := newProduct("5", withLevel(LevelAdvanced), withFormats(FormatPDF))
	pool := []Product{
		newProduct("1", withLevel(LevelAdvanced)),
		newProduct("2", withLevel(LevelBasic)),
		newProduct("3", withLevel(LevelAdvanced)),
		newProduct("4", withLevel(LevelBasic), withFormats(FormatPDF)),
	}

	assert.Equal(t, []string{"1", "3"}, ids(Recommend(subject, pool, 2)))
}

func TestRecommend_Priority(t *testing.T) {
	t.Parallel()

	subject := newProduct("s", withLevel(LevelAdvanced), withFormats(FormatPDF, FormatAudio))
	pool := []Product{
		newProduct("x1", withLevel(LevelBasic)),
		newProduct("f1", withLevel(LevelBasic), withFormats(FormatAudio)),
		newProduct("s", withLevel(LevelAdvanced)),
		newProduct("l1", withLevel(LevelAdvanced)),
		newProduct("x2", withLevel(LevelIntermediate), withFormats(FormatVideo)),
		newProduct("f2", withLevel(LevelIntermediate), withFormats(FormatPDF)),
		newProduct("l2", withLevel(LevelAdvanced), withFormats(FormatPDF)),
	}

	tests := []struct {
		name     string
		maxCount int
		want     []string
	}{
		{"같은 레벨만", 2, []string{"l1", "l2"}},
		{"같은 레벨 다음 형식 공유", 4, []string{"l1", "l2", "f1", "f2"}},
		{"나머지로 채움", 5, []string{"l1", "l2", "f1", "f2", "x1"}},
		{"후보 수와 같으면 원래 순서", 6, []string{"x1", "f1", "l1", "x2", "f2", "l2"}},
		{"후보 부족 시 원래 순서 그대로", 10, []string{"x1", "f1", "l1", "x2", "f2", "l2"}},
		{"0 이하이면 기본값 4", 0, []string{"l1", "l2", "f1", "f2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ids(Recommend(subject, pool, tt.maxCount)))
		})
	}
}

func TestRecommend_SmallPoolKeepsOriginalOrder(t *testing.T) {
	t.Parallel()

	subject := newProduct("s", withLevel(LevelAdvanced))
	pool := []Product{
		newProduct("x", withLevel(LevelBasic)),
		newProduct("y", withLevel(LevelAdvanced)),
	}

	assert.Equal(t, []string{"x", "y"}, ids(Recommend(subject, pool, 4)))
	assert.Equal(t, []string{"y"}, ids(Recommend(subject, pool, 1)), "후보가 더 많으면 우선순위를 적용해야 합니다")
}

func TestRecommend_EmptyPool(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Recommend(newProduct("s"), nil, 4))
	assert.Empty(t, Recommend(newProduct("s"), []Product{newProduct("s")}, 4))
}

func TestRecommend_DeduplicatesByID(t *testing.T) {
	t.Parallel()

	subject := newProduct("s", withLevel(LevelBasic))
	pool := []Product{
		newProduct("a", withLevel(LevelBasic)),
		newProduct("a", withLevel(LevelBasic)),
		newProduct("b"),
	}

	assert.Equal(t, []string{"a", "b"}, ids(Recommend(subject, pool, 4)))
}

func TestRecommend_Properties(t *testing.T) {
	t.Parallel()

	levels := []Level{LevelBasic, LevelIntermediate, LevelAdvanced, LevelNone}
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 200; round++ {
		size := rng.IntN(12)
		pool := make([]Product, 0, size)
		for i := 0; i < size; i++ {
			pool = append(pool, newProduct(fmt.Sprintf("p%d", i),
				withLevel(levels[rng.IntN(len(levels))]),
				withFormats(FormatTags[rng.IntN(len(FormatTags))]),
			))
		}

		subjectID := fmt.Sprintf("p%d", rng.IntN(size+3))
		subject := newProduct(subjectID, withLevel(levels[rng.IntN(len(levels))]), withFormats(FormatPDF))
		n := 1 + rng.IntN(6)

		got := Recommend(subject, pool, n)

		inPool := 0
		for _, p := range pool {
			if p.ID == subjectID {
				inPool = 1
			}
		}
		assert.LessOrEqual(t, len(got), min(n, len(pool)-inPool))
		assert.NotContains(t, ids(got), subjectID)
	}
}
