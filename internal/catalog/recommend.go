package catalog

// DefaultRecommendationCount 추천 개수가 지정되지 않았을 때의 기본값입니다.
const DefaultRecommendationCount = 4

// Recommend subject와 관련된 상품을 후보군(pool)에서 최대 maxCount개 골라 우선순위대로 반환합니다.
//
// 우선순위:
//  1. subject와 같은 ID의 후보는 제외합니다.
//  2. subject와 레벨이 같은 후보 (원래 순서 유지)
//  3. 레벨은 다르지만 형식 태그를 하나 이상 공유하는 후보 (원래 순서 유지)
//  4. 결과가 maxCount보다 적으면 나머지 후보를 원래 순서대로 채웁니다.
//
// 결과는 ID 기준으로 중복이 제거됩니다. 후보가 maxCount개 이하이면 우선순위를 적용하지 않고
// 후보 전체를 원래 순서대로 반환합니다.
// maxCount가 0 이하이면 DefaultRecommendationCount를 사용합니다.
func Recommend(subject Product, pool []Product, maxCount int) []Product {
	if maxCount <= 0 {
		maxCount = DefaultRecommendationCount
	}

	var (
		sameLevel     []Product
		formatOverlap []Product
		candidates    = make([]Product, 0, len(pool))
	)
	for _, p := range pool {
		if p.ID == subject.ID {
			continue
		}
		candidates = append(candidates, p)

		switch {
		case p.Level == subject.Level:
			sameLevel = append(sameLevel, p)
		case p.SharesFormatWith(subject):
			formatOverlap = append(formatOverlap, p)
		}
	}

	result := make([]Product, 0, min(maxCount, len(candidates)))
	seen := make(map[string]struct{}, cap(result))

	if len(candidates) <= maxCount {
		for _, p := range candidates {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
		}
		return result
	}

	appendUnique := func(group []Product) {
		for _, p := range group {
			if len(result) >= maxCount {
				return
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
		}
	}

	appendUnique(sameLevel)
	appendUnique(formatOverlap)
	appendUnique(candidates)

	return result
}
