package catalog

import (
	"math/rand/v2"
)

// ByType 지정된 종류의 상품을 원래 순서대로 최대 limit개 반환합니다. limit이 0 이하이면 전부 반환합니다.
func ByType(products []Product, t ProductType, limit int) []Product {
	return take(products, limit, func(p Product) bool {
		return p.ProductType == t
	})
}

// ByLevel 지정된 레벨의 상품을 원래 순서대로 최대 limit개 반환합니다. limit이 0 이하이면 전부 반환합니다.
func ByLevel(products []Product, level Level, limit int) []Product {
	return take(products, limit, func(p Product) bool {
		return p.Level == level
	})
}

// Random 조건(pred)을 만족하는 상품을 무작위로 섞어 최대 limit개 반환합니다.
// pred가 nil이면 모든 상품이 대상이며, rng가 nil이면 전역 난수 소스를 사용합니다.
func Random(products []Product, limit int, pred func(Product) bool, rng *rand.Rand) []Product {
	pool := take(products, 0, pred)

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if limit > 0 && limit < len(pool) {
		pool = pool[:limit]
	}
	return pool
}

// Featured 추천(featured) 상품을 무작위로 최대 limit개 반환합니다.
// types가 지정되면 해당 종류로 제한합니다.
func Featured(products []Product, limit int, rng *rand.Rand, types ...ProductType) []Product {
	return Random(products, limit, func(p Product) bool {
		return p.Featured && matchesAnyType(p, types)
	}, rng)
}

// Bestsellers 베스트셀러 상품을 무작위로 최대 limit개 반환합니다.
func Bestsellers(products []Product, limit int, rng *rand.Rand) []Product {
	return Random(products, limit, Product.IsBestseller, rng)
}

func matchesAnyType(p Product, types []ProductType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if p.ProductType == t {
			return true
		}
	}
	return false
}

func take(products []Product, limit int, pred func(Product) bool) []Product {
	result := make([]Product, 0)
	for _, p := range products {
		if limit > 0 && len(result) >= limit {
			break
		}
		if pred == nil || pred(p) {
			result = append(result, p)
		}
	}
	return result
}
