// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 생명주기를 가지는 서비스입니다.
//
// 호출자는 Start 전에 wg.Add(1)을 호출해야 하며, 서비스는 ctx가 취소되어 종료 처리를 마쳤을 때
// (또는 시작에 실패했을 때) wg.Done()을 정확히 한 번 호출합니다.
type Service interface {
	Start(ctx context.Context, wg *sync.WaitGroup) error
}
