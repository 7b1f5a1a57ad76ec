package cart

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

func encodeItems(items []CartItem) ([]byte, error) {
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}

// decodeItems 저장된 값을 CartItem 목록으로 해석합니다.
// JSON 배열이 아니거나, ID가 없거나 수량이 1 미만인 항목이 있거나, 같은 ID가 두 번 나오면 손상된 것으로 봅니다.
func decodeItems(data []byte) ([]CartItem, error) {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptedState, err)
	}
	if items == nil {
		// "null"
		return nil, fmt.Errorf("%w: 배열이 아닙니다", errCorruptedState)
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		switch {
		case strings.TrimSpace(item.ID) == "":
			return nil, fmt.Errorf("%w: [%d] id 누락", errCorruptedState, i)
		case item.Quantity < 1:
			return nil, fmt.Errorf("%w: [%d] quantity=%d", errCorruptedState, i, item.Quantity)
		case item.Price < 0:
			return nil, fmt.Errorf("%w: [%d] price=%v", errCorruptedState, i, item.Price)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%w: [%d] 중복 id=%s", errCorruptedState, i, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return items, nil
}
