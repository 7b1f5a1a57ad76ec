package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listingFixture() []Product {
	return []Product{
		newProduct("b-1", withLevel(LevelBasic), withFeatured()),
		newProduct("b-2", withLevel(LevelAdvanced), withPopularity(PopularityBestseller)),
		newProduct("e-1", withType(ProductTypeExam), withLevel(LevelAdvanced), withFeatured()),
		newProduct("p-1", withType(ProductTypePack), withPopularity(PopularityBestseller), withFeatured()),
		newProduct("b-3", withLevel(LevelBasic)),
	}
}

func TestByType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"b-1", "b-2", "b-3"}, ids(ByType(listingFixture(), ProductTypeBook, 0)))
	assert.Equal(t, []string{"b-1", "b-2"}, ids(ByType(listingFixture(), ProductTypeBook, 2)))
	assert.Empty(t, ByType(nil, ProductTypeBook, 3))
}

func TestByLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"b-2", "e-1"}, ids(ByLevel(listingFixture(), LevelAdvanced, 0)))
	assert.Equal(t, []string{"b-1"}, ids(ByLevel(listingFixture(), LevelBasic, 1)))
}

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a := Random(listingFixture(), 3, nil, rand.New(rand.NewPCG(1, 2)))
	b := Random(listingFixture(), 3, nil, rand.New(rand.NewPCG(1, 2)))

	assert.Len(t, a, 3)
	assert.Equal(t, ids(a), ids(b), "같은 시드는 같은 결과를 만들어야 합니다")
}

func TestRandom_LimitExceedsPool(t *testing.T) {
	t.Parallel()

	got := Random(listingFixture(), 100, nil, rand.New(rand.NewPCG(3, 4)))

	assert.ElementsMatch(t, ids(listingFixture()), ids(got))
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))

	assert.ElementsMatch(t, []string{"b-1", "e-1", "p-1"}, ids(Featured(listingFixture(), 0, rng)))
	assert.ElementsMatch(t, []string{"e-1", "p-1"}, ids(Featured(listingFixture(), 0, rng, ProductTypeExam, ProductTypePack)))
	assert.Len(t, Featured(listingFixture(), 2, rng), 2)
}

func TestBestsellers(t *testing.T) {
	t.Parallel()

	got := Bestsellers(listingFixture(), 5, nil)

	assert.ElementsMatch(t, []string{"b-2", "p-1"}, ids(got))
}
