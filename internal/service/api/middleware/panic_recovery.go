package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 스택 트레이스 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 panic을 복구하여 스택 트레이스와 함께 기록하고,
// 전역 에러 핸들러로 500 응답을 위임하는 미들웨어를 반환합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// 연결 중단 신호는 net/http 서버가 처리하도록 그대로 전파합니다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				recovered, ok := r.(error)
				if !ok {
					recovered = NewErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  recovered,
					"stack":  string(stack[:length]),
					"method": c.Request().Method,
					"path":   c.Request().URL.Path,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(recovered)
				err = nil
			}()

			return next(c)
		}
	}
}
